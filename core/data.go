package core

import (
	"iter"
	"strings"
)

// IconData is the render record of a single SVG drawing.
//
// Every field except Data is an optional attribute of the root <svg>
// element. Data is the body markup: one or more <path>, <g> or other
// fragments placed between the opening and closing tags.
//
// Field order and names are part of the stable interface; renderers read
// them directly. Records are immutable values and compare structurally
// with ==.
type IconData struct {
	Style          Attr   `json:"style" msgpack:"style"`
	X              Attr   `json:"x" msgpack:"x"`
	Y              Attr   `json:"y" msgpack:"y"`
	Width          Attr   `json:"width" msgpack:"width"`
	Height         Attr   `json:"height" msgpack:"height"`
	ViewBox        Attr   `json:"view_box" msgpack:"view_box"`
	StrokeLinecap  Attr   `json:"stroke_linecap" msgpack:"stroke_linecap"`
	StrokeLinejoin Attr   `json:"stroke_linejoin" msgpack:"stroke_linejoin"`
	StrokeWidth    Attr   `json:"stroke_width" msgpack:"stroke_width"`
	Stroke         Attr   `json:"stroke" msgpack:"stroke"`
	Fill           Attr   `json:"fill" msgpack:"fill"`
	Data           string `json:"data" msgpack:"data"`
}

// svgNames are the SVG attribute names of the optional fields, in field order.
var svgNames = [...]string{
	"style",
	"x",
	"y",
	"width",
	"height",
	"viewBox",
	"stroke-linecap",
	"stroke-linejoin",
	"stroke-width",
	"stroke",
	"fill",
}

// attrs returns the optional fields in declaration order.
func (d *IconData) attrs() [len(svgNames)]Attr {
	return [...]Attr{
		d.Style,
		d.X,
		d.Y,
		d.Width,
		d.Height,
		d.ViewBox,
		d.StrokeLinecap,
		d.StrokeLinejoin,
		d.StrokeWidth,
		d.Stroke,
		d.Fill,
	}
}

// Attributes yields the present attributes as (SVG name, value) pairs in
// field order. Absent attributes are skipped.
//
//	for name, value := range data.Attributes() {
//	    fmt.Fprintf(w, ` %s="%s"`, name, html.EscapeString(value))
//	}
func (d IconData) Attributes() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i, a := range d.attrs() {
			if !a.set {
				continue
			}
			if !yield(svgNames[i], a.value) {
				return
			}
		}
	}
}

// Attr returns the attribute with the given SVG name. Unknown names are
// reported as absent.
func (d IconData) Attr(name string) Attr {
	for i, n := range svgNames {
		if n == name {
			return d.attrs()[i]
		}
	}
	return Attr{}
}

// Compare orders records field by field in declaration order.
func Compare(a, b IconData) int {
	aa, ba := a.attrs(), b.attrs()
	for i := range aa {
		if c := aa[i].Compare(ba[i]); c != 0 {
			return c
		}
	}
	return strings.Compare(a.Data, b.Data)
}
