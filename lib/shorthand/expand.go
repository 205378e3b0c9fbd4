// Package shorthand expands icon shorthands into selector expressions.
//
// The shorthand names an icon by its identifier alone:
//
//	icon(AiFileImageTwotone)
//
// and stands for the widening of that icon into the selector:
//
//	icondata.Icon(icondata.AiFileImageTwotone)
//
// [Expand] performs the expansion of a single argument. [Rewriter] applies it
// to Go source: files carrying the icondata_shorthand build constraint are
// directive files, excluded from normal builds, and each one produces a
// generated sibling in which every icon(...) call has been expanded.
//
//	//go:build icondata_shorthand
//
//	package toolbar
//
//	var Save = icon(LuSave)
//
// The expander only checks syntax. Whether the set is enabled and the icon
// exists is left to the compiler when the generated file is built.
package shorthand

import (
	"errors"
	"go/scanner"
	"go/token"
	"unicode/utf8"
)

// PrefixLen is the length of a set prefix in characters.
const PrefixLen = 2

// Import is the import path expansions refer to.
const Import = "github.com/pthm/icondata"

// Rules violated by malformed shorthands.
var (
	ErrEmpty    = errors.New("expected an identifier, but received an empty token stream")
	ErrNotIdent = errors.New("expected an identifier, but received a different token type")
	ErrTrailing = errors.New("expected only one identifier, but received multiple tokens")
	ErrTooShort = errors.New("identifier must have an icon name after the two-character set prefix")
)

// Error reports a malformed shorthand.
type Error struct {
	// Pos locates the offending token. Filename is empty for input given
	// directly to Expand.
	Pos token.Position

	// Rule is one of ErrEmpty, ErrNotIdent, ErrTrailing or ErrTooShort.
	Rule error
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Rule.Error()
	}
	return e.Rule.Error()
}

func (e *Error) Unwrap() error {
	return e.Rule
}

// Expand returns the selector expression for the shorthand input, which
// must be exactly one identifier of at least three characters.
//
//	Expand("AiFileImageTwotone") // icondata.Icon(icondata.AiFileImageTwotone)
func Expand(input string) (string, error) {
	ident, err := scanIdent(input)
	if err != nil {
		return "", err
	}
	prefix, name := Split(ident)
	return "icondata.Icon(icondata." + prefix + name + ")", nil
}

// Split splits an identifier into its set prefix and icon name. The name is
// empty when ident is shorter than three characters.
func Split(ident string) (prefix, name string) {
	i := 0
	for n := 0; n < PrefixLen && i < len(ident); n++ {
		_, size := utf8.DecodeRuneInString(ident[i:])
		i += size
	}
	return ident[:i], ident[i:]
}

// scanIdent tokenizes input with the Go scanner and returns its only
// identifier.
func scanIdent(input string) (string, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(input))

	var s scanner.Scanner
	s.Init(file, []byte(input), nil, 0)

	next := func() (token.Pos, token.Token, string) {
		for {
			pos, tok, lit := s.Scan()
			// Skip semicolons inserted at newlines and EOF.
			if tok == token.SEMICOLON && lit == "\n" {
				continue
			}
			return pos, tok, lit
		}
	}

	pos, tok, lit := next()
	switch tok {
	case token.EOF:
		return "", &Error{Pos: fset.Position(pos), Rule: ErrEmpty}
	case token.IDENT:
	default:
		return "", &Error{Pos: fset.Position(pos), Rule: ErrNotIdent}
	}
	ident, identPos := lit, pos

	if pos, tok, _ := next(); tok != token.EOF {
		return "", &Error{Pos: fset.Position(pos), Rule: ErrTrailing}
	}

	if _, name := Split(ident); name == "" {
		return "", &Error{Pos: fset.Position(identPos), Rule: ErrTooShort}
	}
	return ident, nil
}
