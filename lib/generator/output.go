package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/pthm/icondata/core"
)

// writeSet renders and writes the generated files of a set.
func (g *Generator) writeSet(info *SetInfo) error {
	outputs := []struct {
		path string
		tmpl *template.Template
	}{
		{g.setFile(info.Set), setTemplate},
		{g.testFile(info.Set), testTemplate},
		{g.armFile(info.Set), armTemplate},
	}

	for _, out := range outputs {
		Logger().Info("generating", "path", out.path, "icons", len(info.Icons))
		if g.opts.DryRun {
			continue
		}

		code, err := render(out.tmpl, info)
		if err != nil {
			return fmt.Errorf("render %s: %w", out.path, err)
		}
		if err := writeFormatted(out.path, code); err != nil {
			return err
		}
	}
	return nil
}

// render executes tmpl for info.
func render(tmpl *template.Template, info *SetInfo) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, info); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFormatted gofmts code and writes it to path. Unformattable code is
// written next to path with an .unformatted suffix for debugging.
func writeFormatted(path string, code []byte) error {
	formatted, err := format.Source(code)
	if err != nil {
		if writeErr := os.WriteFile(path+".unformatted", code, 0644); writeErr == nil {
			Logger().Warn("wrote unformatted code for debugging", "path", path+".unformatted")
		}
		return fmt.Errorf("format source: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, formatted, 0644)
}

// goString returns s as a Go string literal, raw when possible.
func goString(s string) string {
	if strings.ContainsAny(s, "`\r") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}

// recordLiteral renders d as a single-line core.IconData literal body.
func recordLiteral(d core.IconData) string {
	var parts []string
	for _, f := range attrFields {
		if v, ok := d.Attr(f.svg).Get(); ok {
			parts = append(parts, f.field+": core.Value("+strconv.Quote(v)+")")
		}
	}
	parts = append(parts, "Data: "+goString(d.Data))
	return "{" + strings.Join(parts, ", ") + "}"
}

// source describes the upstream of a set for file headers.
func source(spec SetSpec) string {
	return spec.Upstream().String()
}

var funcs = template.FuncMap{
	"record": recordLiteral,
	"source": source,
}

var setTemplate = template.Must(template.New("set").Funcs(funcs).Parse(`// Code generated by icondata. DO NOT EDIT.
// Source: {{source .Spec}}

// Package {{.Package}} contains the {{.Spec.Name}} icon set.
package {{.Package}}

import (
	"iter"

	"{{.Module}}/core"
)

// {{.Enum}} enumerates the icons of the {{.Spec.Name}} set.
type {{.Enum}} uint16

const (
{{- range $i, $icon := .Icons}}
	{{$icon.Ident}}{{if eq $i 0}} {{$.Enum}} = iota{{end}}
{{- end}}
)

var names = [...]string{
{{- range .Icons}}
	{{printf "%q" .Ident}},
{{- end}}
}

var data = [...]core.IconData{
{{- range .Icons}}
	{{record .Data}},
{{- end}}
}

var table = core.NewTable[{{.Enum}}](core.{{.Set}}, names[:], data[:])

// Source describes the upstream project of the set.
var Source = core.Source{
{{- with .Spec.Upstream}}
	Name: {{printf "%q" .Name}},
	Version: {{printf "%q" .Version}},
	License: {{printf "%q" .License}},
	URL: {{printf "%q" .URL}},
{{- end}}
}

// Set returns core.{{.Set}}.
func ({{.Enum}}) Set() core.Set { return core.{{.Set}} }

// Ordinal returns the icon's position in declaration order.
func (i {{.Enum}}) Ordinal() int { return int(i) }

// IconData returns the icon's render record.
func (i {{.Enum}}) IconData() core.IconData { return table.Data(i) }

// String returns the icon's canonical identifier.
func (i {{.Enum}}) String() string { return table.Name(i) }

// MarshalText encodes the icon as its canonical identifier.
func (i {{.Enum}}) MarshalText() ([]byte, error) { return table.MarshalText(i) }

// UnmarshalText decodes a canonical identifier.
func (i *{{.Enum}}) UnmarshalText(b []byte) error { return table.UnmarshalText(i, b) }

// Parse returns the icon with the given canonical identifier.
func Parse(name string) ({{.Enum}}, error) { return table.Parse(name) }

// All yields every icon of the set in declaration order.
func All() iter.Seq[{{.Enum}}] { return table.All() }

// Len returns the number of icons in the set.
func Len() int { return table.Len() }
`))

var armTemplate = template.Must(template.New("arm").Funcs(funcs).Parse(`// Code generated by icondata. DO NOT EDIT.
// Source: {{source .Spec}}

//go:build {{.Set}} || icondata_all

package icondata

import "{{.Module}}/sets/{{.Package}}"

// {{.Enum}} enumerates the {{.Spec.Name}} icons. Enabled by the {{.Set}} build tag.
type {{.Enum}} = {{.Package}}.{{.Enum}}

// {{.Spec.Name}} icons.
const (
{{- range .Icons}}
	{{.Ident}} = {{$.Package}}.{{.Ident}}
{{- end}}
)

func init() {
	registerEnum({{.Package}}.Source, {{.Package}}.Parse, {{.Package}}.All)
}

// From{{.Set}} widens an icon of the {{.Spec.Name}} set into the selector.
func From{{.Set}}(icon {{.Enum}}) Icon {
	return icon
}
`))

var testTemplate = template.Must(template.New("test").Funcs(funcs).Parse(`// Code generated by icondata. DO NOT EDIT.
// Source: {{source .Spec}}

package {{.Package}}

import (
	"slices"
	"testing"

	"{{.Module}}/core"
)

func TestTable(t *testing.T) {
	if Len() == 0 || Len() != len(names) {
		t.Fatalf("Len() = %d, want %d", Len(), len(names))
	}
	if !slices.IsSorted(names[:]) {
		t.Error("identifiers are not in declaration order")
	}

	n := 0
	for icon := range All() {
		if icon.Ordinal() != n {
			t.Errorf("%s: Ordinal() = %d, want %d", icon, icon.Ordinal(), n)
		}
		n++
		if icon.Set() != core.{{.Set}} {
			t.Errorf("%s: Set() = %v", icon, icon.Set())
		}
		if icon.IconData().Data == "" {
			t.Errorf("%s: empty drawing", icon)
		}
		got, err := Parse(icon.String())
		if err != nil || got != icon {
			t.Errorf("Parse(%q) = %v, %v", icon.String(), got, err)
		}
	}
	if n != Len() {
		t.Errorf("All() yielded %d icons, want %d", n, Len())
	}
}

func TestSource(t *testing.T) {
	if Source.Name != {{printf "%q" .Spec.Name}} || Source.License == "" {
		t.Errorf("Source = %+v", Source)
	}
}
`))
