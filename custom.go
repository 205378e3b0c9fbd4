package icondata

import "github.com/pthm/icondata/core"

// CustomIcon is a user-authored icon. It has the same fields as IconData
// but belongs to no curated set, so consumers can pass hand-written SVG
// through the selector.
type CustomIcon struct {
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

// Set returns Custom.
func (CustomIcon) Set() Set {
	return Custom
}

// IconData copies the icon field for field into a render record.
func (c CustomIcon) IconData() IconData {
	return IconData{
		Style:          c.Style,
		X:              c.X,
		Y:              c.Y,
		Width:          c.Width,
		Height:         c.Height,
		ViewBox:        c.ViewBox,
		StrokeLinecap:  c.StrokeLinecap,
		StrokeLinejoin: c.StrokeLinejoin,
		StrokeWidth:    c.StrokeWidth,
		Stroke:         c.Stroke,
		Fill:           c.Fill,
		Data:           c.Data,
	}
}

// Compare orders custom icons field by field in declaration order.
func (c CustomIcon) Compare(o CustomIcon) int {
	return core.Compare(c.IconData(), o.IconData())
}

// NewCustomIcon copies a render record into a custom icon, for instance to
// restyle a curated icon and pass it on through the selector.
func NewCustomIcon(d IconData) CustomIcon {
	return CustomIcon{
		Style:          d.Style,
		X:              d.X,
		Y:              d.Y,
		Width:          d.Width,
		Height:         d.Height,
		ViewBox:        d.ViewBox,
		StrokeLinecap:  d.StrokeLinecap,
		StrokeLinejoin: d.StrokeLinejoin,
		StrokeWidth:    d.StrokeWidth,
		Stroke:         d.Stroke,
		Fill:           d.Fill,
		Data:           d.Data,
	}
}

// FromCustom widens a custom icon into the selector.
func FromCustom(c CustomIcon) Icon {
	return c
}
