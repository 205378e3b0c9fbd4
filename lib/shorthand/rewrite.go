package shorthand

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// Tag is the build constraint marking directive files.
const Tag = "icondata_shorthand"

// Header starts every generated file.
const Header = "// Code generated by icondata. DO NOT EDIT."

// callName is the function name of the shorthand in directive files.
const callName = "icon"

// Options configures a Rewriter.
type Options struct {
	DryRun bool

	// Logger receives progress messages. Nil discards them.
	Logger *slog.Logger
}

// Rewriter expands shorthands in directive files.
type Rewriter struct {
	opts Options
	log  *slog.Logger
}

// NewRewriter creates a rewriter.
func NewRewriter(opts Options) *Rewriter {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Rewriter{opts: opts, log: log}
}

// Result is the output of rewriting one directive file.
type Result struct {
	Source string // directive file
	Output string // generated sibling
	Calls  int    // expanded icon(...) calls
	Code   []byte // formatted generated source
}

// Rewrite expands every directive file in the packages matched by patterns
// ("./..." or directories) and writes the generated siblings. It stops
// between files when ctx is cancelled.
func (r *Rewriter) Rewrite(ctx context.Context, patterns ...string) ([]Result, error) {
	dirs, err := findPackages(patterns)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, dir := range dirs {
		files, err := directiveFiles(dir)
		if err != nil {
			return results, fmt.Errorf("package %s: %w", dir, err)
		}
		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return results, err
			}

			res, err := r.RewriteFile(path)
			if err != nil {
				return results, err
			}
			if res == nil {
				continue
			}

			r.log.Info("expanding", "source", res.Source, "output", res.Output, "calls", res.Calls)
			if !r.opts.DryRun {
				if err := os.WriteFile(res.Output, res.Code, 0644); err != nil {
					return results, err
				}
			}
			results = append(results, *res)
		}
	}
	return results, nil
}

// RewriteFile expands the directive file at path without writing anything.
// It returns nil for files that do not carry the directive constraint.
func (r *Rewriter) RewriteFile(path string) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !bytes.Contains(src, []byte(Tag)) {
		return nil, nil
	}
	code, calls, err := rewriteSource(path, src)
	if err != nil || code == nil {
		return nil, err
	}
	return &Result{Source: path, Output: OutputPath(path), Calls: calls, Code: code}, nil
}

// OutputPath returns the generated sibling of a directive file:
// toolbar.go becomes toolbar_icons.go, toolbar_test.go becomes
// toolbar_icons_test.go.
func OutputPath(path string) string {
	base := strings.TrimSuffix(path, ".go")
	if strings.HasSuffix(base, "_test") {
		return strings.TrimSuffix(base, "_test") + "_icons_test.go"
	}
	return base + "_icons.go"
}

// edit replaces src[start:end].
type edit struct {
	start, end int
	text       string
}

// rewriteSource returns the generated source for a directive file, or nil
// if src is not one.
func rewriteSource(filename string, src []byte) ([]byte, int, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, 0, err
	}

	var edits []edit

	directive := false
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}
		for _, c := range group.List {
			if !constraint.IsGoBuild(c.Text) {
				continue
			}
			expr, err := constraint.Parse(c.Text)
			if err != nil {
				return nil, 0, fmt.Errorf("%s: %w", fset.Position(c.Pos()), err)
			}
			flipped, ok := flip(expr)
			if !ok {
				continue
			}
			directive = true
			edits = append(edits, edit{
				start: fset.Position(c.Pos()).Offset,
				end:   fset.Position(c.End()).Offset,
				text:  "//go:build " + flipped.String(),
			})
		}
	}
	if !directive {
		return nil, 0, nil
	}

	var errs []error
	calls := 0
	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if fn, ok := call.Fun.(*ast.Ident); !ok || fn.Name != callName {
			return true
		}

		argStart := fset.Position(call.Lparen).Offset + 1
		argEnd := fset.Position(call.Rparen).Offset
		expansion, err := Expand(string(src[argStart:argEnd]))
		if err != nil {
			errs = append(errs, relocate(err, fset.Position(call.Lparen+1)))
			return false
		}

		calls++
		edits = append(edits, edit{
			start: fset.Position(call.Pos()).Offset,
			end:   fset.Position(call.End()).Offset,
			text:  expansion,
		})
		return false
	})
	if len(errs) > 0 {
		return nil, 0, errors.Join(errs...)
	}

	out := applyEdits(src, edits)
	out = append([]byte(Header+"\n\n"), out...)

	if calls > 0 {
		out, err = addImport(filename, out)
		if err != nil {
			return nil, 0, err
		}
	}

	formatted, err := format.Source(out)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: format generated code: %w", filename, err)
	}
	return formatted, calls, nil
}

// flip negates every positive occurrence of Tag in expr. It reports false
// when there is none.
func flip(expr constraint.Expr) (constraint.Expr, bool) {
	switch e := expr.(type) {
	case *constraint.TagExpr:
		if e.Tag == Tag {
			return &constraint.NotExpr{X: e}, true
		}
		return e, false
	case *constraint.NotExpr:
		// Negated occurrences select the generated side already.
		return e, false
	case *constraint.AndExpr:
		x, okX := flip(e.X)
		y, okY := flip(e.Y)
		return &constraint.AndExpr{X: x, Y: y}, okX || okY
	case *constraint.OrExpr:
		x, okX := flip(e.X)
		y, okY := flip(e.Y)
		return &constraint.OrExpr{X: x, Y: y}, okX || okY
	}
	return expr, false
}

// relocate moves the position of an expansion error from the argument text
// into the file, given the position where the argument starts.
func relocate(err error, base token.Position) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	pos := base
	if e.Pos.Line > 1 {
		pos.Line += e.Pos.Line - 1
		pos.Column = e.Pos.Column
	} else {
		pos.Column += e.Pos.Column - 1
	}
	pos.Offset += e.Pos.Offset
	return &Error{Pos: pos, Rule: e.Rule}
}

func applyEdits(src []byte, edits []edit) []byte {
	slices.SortFunc(edits, func(a, b edit) int { return b.start - a.start })
	out := slices.Clone(src)
	for _, e := range edits {
		out = slices.Concat(out[:e.start], []byte(e.text), out[e.end:])
	}
	return out
}

// addImport adds the icondata import unless the file already refers to the
// package as icondata.
func addImport(filename string, src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("%s: parse expanded code: %w", filename, err)
	}
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err == nil && path == Import && (spec.Name == nil || spec.Name.Name == "icondata") {
			return src, nil
		}
	}
	if !astutil.AddImport(fset, file, Import) {
		return src, nil
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Clean removes generated siblings from the packages matched by patterns.
// Only files starting with Header are removed.
func (r *Rewriter) Clean(patterns ...string) error {
	dirs, err := findPackages(patterns)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !(strings.HasSuffix(name, "_icons.go") || strings.HasSuffix(name, "_icons_test.go")) {
				continue
			}
			path := filepath.Join(dir, name)
			generated, err := isGenerated(path)
			if err != nil {
				return err
			}
			if !generated {
				r.log.Warn("skipping hand-written file", "path", path)
				continue
			}

			r.log.Info("removing", "path", path)
			if !r.opts.DryRun {
				if err := os.Remove(path); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func isGenerated(path string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return bytes.HasPrefix(src, []byte(Header+"\n")), nil
}
