package render

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/pthm/icondata"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

var square = icondata.CustomIcon{
	ViewBox: icondata.Value("0 0 16 16"),
	Width:   icondata.Value("16"),
	Height:  icondata.Value("16"),
	Fill:    icondata.Value("currentColor"),
	Data:    `<path d="M0 0h1v1H0z"/>`,
}

func TestSVG(t *testing.T) {
	got := renderString(t, SVG(square))
	want := `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16" fill="currentColor" aria-hidden="true"><path d="M0 0h1v1H0z"/></svg>`
	if got != want {
		t.Errorf("SVG() =\n%s\nwant\n%s", got, want)
	}
}

func TestSVGElidesAbsentAttributes(t *testing.T) {
	got := renderString(t, SVG(icondata.CustomIcon{Data: "<g/>"}))
	want := `<svg xmlns="http://www.w3.org/2000/svg" aria-hidden="true"><g/></svg>`
	if got != want {
		t.Errorf("SVG() = %s, want %s", got, want)
	}
}

func TestSVGOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		want    []string
		notWant []string
	}{
		{
			name: "class",
			opts: []Option{Class("h-4 w-4")},
			want: []string{` class="h-4 w-4"`},
		},
		{
			name:    "size replaces width and height",
			opts:    []Option{Size("1em")},
			want:    []string{` width="1em"`, ` height="1em"`},
			notWant: []string{`width="16"`},
		},
		{
			name:    "title",
			opts:    []Option{Title("Close <dialog>")},
			want:    []string{` role="img"`, `<title>Close &lt;dialog&gt;</title><path`},
			notWant: []string{`aria-hidden`},
		},
		{
			name:    "attrs override record",
			opts:    []Option{Attrs(templ.Attributes{"fill": "red", "data-id": 7, "focusable": false, "hidden": true})},
			want:    []string{` data-id="7" fill="red" hidden>`},
			notWant: []string{`currentColor`, `focusable`},
		},
		{
			name: "attribute values are escaped",
			opts: []Option{Class(`"><script>`)},
			want: []string{` class="&#34;&gt;&lt;script&gt;"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderString(t, SVG(square, tt.opts...))
			for _, s := range tt.want {
				if !strings.Contains(got, s) {
					t.Errorf("output missing %q:\n%s", s, got)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(got, s) {
					t.Errorf("output contains %q:\n%s", s, got)
				}
			}
		})
	}
}

func TestSVGNil(t *testing.T) {
	if got := renderString(t, SVG(nil)); got != "" {
		t.Errorf("SVG(nil) = %q, want empty", got)
	}
}

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler(square).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/icon.svg", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg ") {
		t.Errorf("body = %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	Handler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/icon.svg", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("nil icon status = %d, want 404", rec.Code)
	}
}
