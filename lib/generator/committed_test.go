package generator

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// moduleRoot is the module root holding the checked-in manifest and its output.
var moduleRoot = filepath.Join("..", "..")

func loadRootManifest(t *testing.T) *Manifest {
	t.Helper()
	m, err := LoadManifest(filepath.Join(moduleRoot, "icondata.yaml"))
	require.NoError(t, err)
	return m
}

// varLiterals returns the composite literals assigned to package-level vars.
func varLiterals(f *ast.File) map[string]*ast.CompositeLit {
	lits := make(map[string]*ast.CompositeLit)
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			for i, name := range vs.Names {
				if i < len(vs.Values) {
					if lit, ok := vs.Values[i].(*ast.CompositeLit); ok {
						lits[name.Name] = lit
					}
				}
			}
		}
	}
	return lits
}

func stringLit(t *testing.T, e ast.Expr) string {
	t.Helper()
	lit, ok := e.(*ast.BasicLit)
	require.True(t, ok, "expected a string literal, got %T", e)
	s, err := strconv.Unquote(lit.Value)
	require.NoError(t, err)
	return s
}

// The checked-in set packages must declare what the manifest and corpus
// produce: the same identifiers in the same order, and the same upstream.
func TestCheckedInSetsMatchManifest(t *testing.T) {
	m := loadRootManifest(t)
	g := New(Options{Root: moduleRoot})

	for _, spec := range m.Sets {
		t.Run(spec.Prefix, func(t *testing.T) {
			info, err := g.LoadSet(m, spec)
			require.NoError(t, err)

			f, err := parser.ParseFile(token.NewFileSet(), g.setFile(info.Set), nil, 0)
			require.NoError(t, err)
			lits := varLiterals(f)

			require.Contains(t, lits, "names")
			var names, want []string
			for _, elt := range lits["names"].Elts {
				names = append(names, stringLit(t, elt))
			}
			for _, icon := range info.Icons {
				want = append(want, icon.Ident)
			}
			assert.Equal(t, want, names)

			require.Contains(t, lits, "Source")
			fields := make(map[string]string)
			for _, elt := range lits["Source"].Elts {
				kv := elt.(*ast.KeyValueExpr)
				fields[kv.Key.(*ast.Ident).Name] = stringLit(t, kv.Value)
			}
			up := spec.Upstream()
			assert.Equal(t, map[string]string{
				"Name":    up.Name,
				"Version": up.Version,
				"License": up.License,
				"URL":     up.URL,
			}, fields)

			for _, path := range []string{g.testFile(info.Set), g.armFile(info.Set)} {
				_, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.PackageClauseOnly)
				assert.NoError(t, err, "%s must be checked in", path)
			}
		})
	}
}

// The set constants carry the manifest name of their set as line comment.
func TestSetCommentsMatchManifest(t *testing.T) {
	m := loadRootManifest(t)

	f, err := parser.ParseFile(token.NewFileSet(), filepath.Join(moduleRoot, "core", "set.go"), nil, parser.ParseComments)
	require.NoError(t, err)

	comments := make(map[string]string)
	ast.Inspect(f, func(n ast.Node) bool {
		if vs, ok := n.(*ast.ValueSpec); ok && vs.Comment != nil {
			for _, name := range vs.Names {
				comments[name.Name] = strings.TrimSpace(vs.Comment.Text())
			}
		}
		return true
	})

	require.Len(t, m.Sets, 18)
	for _, spec := range m.Sets {
		assert.Equal(t, spec.Name, comments[spec.Prefix], "comment on core.%s", spec.Prefix)
	}
}
