// Package render turns icon selectors into templ components.
//
// The output is an inline <svg> element carrying every present attribute of
// the icon's render record, followed by the record's markup:
//
//	@render.SVG(icondata.FromLu(icondata.LuHouse), render.Class("h-4 w-4"))
//
// renders
//
//	<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" ... class="h-4 w-4" aria-hidden="true"><path .../></svg>
//
// Absent attributes are elided. The markup is trusted: it comes from the
// generated sets or from the author of a CustomIcon and is written as is.
// Server hands icons to browsers by authenticated reference, so clients
// cannot submit markup of their own.
package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/icondata"
)

const xmlns = "http://www.w3.org/2000/svg"

// Option customizes a rendered icon.
type Option func(*options)

type options struct {
	class string
	size  string
	title string
	attrs templ.Attributes
}

// Class sets the class attribute.
func Class(class string) Option {
	return func(o *options) { o.class = class }
}

// Size overrides width and height with the same value, e.g. "1em" or "24".
func Size(size string) Option {
	return func(o *options) { o.size = size }
}

// Title adds a <title> child and role="img". Icons without a title are
// marked aria-hidden.
func Title(title string) Option {
	return func(o *options) { o.title = title }
}

// Attrs adds extra attributes. A record attribute with the same name is
// replaced. Boolean true renders the bare name, false omits it.
func Attrs(attrs templ.Attributes) Option {
	return func(o *options) {
		if o.attrs == nil {
			o.attrs = templ.Attributes{}
		}
		for k, v := range attrs {
			o.attrs[k] = v
		}
	}
}

// SVG renders icon as an inline <svg> element. A nil icon renders nothing.
func SVG(icon icondata.Icon, opts ...Option) templ.Component {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if icon == nil {
			return nil
		}
		return write(w, icondata.Data(icon), &o)
	})
}

func write(w io.Writer, data icondata.IconData, o *options) error {
	var b strings.Builder

	b.WriteString(`<svg xmlns="` + xmlns + `"`)
	for name, value := range data.Attributes() {
		if o.size != "" && (name == "width" || name == "height") {
			continue
		}
		if _, ok := o.attrs[name]; ok {
			continue
		}
		writeAttr(&b, name, value)
	}
	if o.size != "" {
		writeAttr(&b, "width", o.size)
		writeAttr(&b, "height", o.size)
	}
	if o.class != "" {
		writeAttr(&b, "class", o.class)
	}
	if o.title != "" {
		writeAttr(&b, "role", "img")
	} else {
		writeAttr(&b, "aria-hidden", "true")
	}

	names := make([]string, 0, len(o.attrs))
	for name := range o.attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		switch v := o.attrs[name].(type) {
		case bool:
			if v {
				b.WriteString(" " + templ.EscapeString(name))
			}
		case string:
			writeAttr(&b, name, v)
		default:
			writeAttr(&b, name, fmt.Sprint(v))
		}
	}
	b.WriteString(">")

	if o.title != "" {
		b.WriteString("<title>" + templ.EscapeString(o.title) + "</title>")
	}
	b.WriteString(data.Data)
	b.WriteString("</svg>")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" " + templ.EscapeString(name) + `="` + templ.EscapeString(value) + `"`)
}

// Handler serves icon as a standalone SVG document, for favicons and
// <img src> references.
func Handler(icon icondata.Icon, opts ...Option) http.Handler {
	component := SVG(icon, opts...)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if icon == nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		if err := component.Render(r.Context(), w); err != nil {
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
	})
}
