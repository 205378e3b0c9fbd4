package generator

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pthm/icondata/core"
)

// ErrEmptyBody is returned for SVG documents without any drawing markup.
var ErrEmptyBody = errors.New("svg has an empty body")

// attrFields maps root SVG attribute names to IconData fields, in field order.
var attrFields = []struct {
	svg   string
	field string
	set   func(*core.IconData, core.Attr)
}{
	{"style", "Style", func(d *core.IconData, a core.Attr) { d.Style = a }},
	{"x", "X", func(d *core.IconData, a core.Attr) { d.X = a }},
	{"y", "Y", func(d *core.IconData, a core.Attr) { d.Y = a }},
	{"width", "Width", func(d *core.IconData, a core.Attr) { d.Width = a }},
	{"height", "Height", func(d *core.IconData, a core.Attr) { d.Height = a }},
	{"viewBox", "ViewBox", func(d *core.IconData, a core.Attr) { d.ViewBox = a }},
	{"stroke-linecap", "StrokeLinecap", func(d *core.IconData, a core.Attr) { d.StrokeLinecap = a }},
	{"stroke-linejoin", "StrokeLinejoin", func(d *core.IconData, a core.Attr) { d.StrokeLinejoin = a }},
	{"stroke-width", "StrokeWidth", func(d *core.IconData, a core.Attr) { d.StrokeWidth = a }},
	{"stroke", "Stroke", func(d *core.IconData, a core.Attr) { d.Stroke = a }},
	{"fill", "Fill", func(d *core.IconData, a core.Attr) { d.Fill = a }},
}

// attrFieldNames indexes attrFields by SVG name.
var attrFieldNames = func() map[string]int {
	m := make(map[string]int, len(attrFields))
	for i, f := range attrFields {
		m[f.svg] = i
	}
	return m
}()

var interTagSpace = regexp.MustCompile(`>\s+<`)

// ParseSVG reads an SVG document into a render record. The root element's
// recognised attributes become the optional fields; everything between the
// root's tags becomes Data, with whitespace between tags removed. Defaults
// fill attributes the document does not set.
func ParseSVG(r io.Reader, defaults map[string]string) (core.IconData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return core.IconData{}, err
	}

	dec := xml.NewDecoder(bytes.NewReader(raw))

	var (
		data  core.IconData
		root  *xml.StartElement
		start int64
	)
	for root == nil {
		tok, err := dec.Token()
		if err == io.EOF {
			return core.IconData{}, errors.New("no root element")
		}
		if err != nil {
			return core.IconData{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Local != "svg" {
				return core.IconData{}, fmt.Errorf("root element is <%s>, want <svg>", se.Name.Local)
			}
			root = &se
			start = dec.InputOffset()
		}
	}

	for name, value := range defaults {
		if i, ok := attrFieldNames[name]; ok {
			attrFields[i].set(&data, core.Value(value))
		}
	}
	for _, attr := range root.Attr {
		if attr.Name.Space != "" {
			continue
		}
		if i, ok := attrFieldNames[attr.Name.Local]; ok {
			attrFields[i].set(&data, core.Value(attr.Value))
		}
	}

	depth := 0
	for {
		end := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			return core.IconData{}, errors.New("unterminated <svg> element")
		}
		if err != nil {
			return core.IconData{}, err
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				data.Data = normalizeBody(string(raw[start:end]))
				if data.Data == "" {
					return core.IconData{}, ErrEmptyBody
				}
				return data, nil
			}
			depth--
		}
	}
}

// normalizeBody trims the body and removes whitespace between tags.
func normalizeBody(body string) string {
	body = strings.TrimSpace(body)
	return interTagSpace.ReplaceAllString(body, "><")
}
