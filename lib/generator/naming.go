package generator

import (
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// namer turns SVG file names into icon identifiers.
// A cases.Caser keeps state, so a namer must not be shared between goroutines.
type namer struct {
	caser cases.Caser
}

func newNamer() *namer {
	return &namer{caser: cases.Title(language.Und, cases.NoLower)}
}

// identifier returns prefix + CamelCase(base name of file):
// "file-image-twotone.svg" becomes "AiFileImageTwotone" for prefix "Ai".
func (n *namer) identifier(prefix, file string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})

	var b strings.Builder
	b.WriteString(prefix)
	for _, w := range words {
		b.WriteString(n.caser.String(w))
	}
	ident := b.String()

	if len(ident) <= len(prefix) {
		return "", fmt.Errorf("%s: no icon name after prefix %s", file, prefix)
	}
	if !token.IsIdentifier(ident) || !token.IsExported(ident) {
		return "", fmt.Errorf("%s: %q is not a valid exported Go identifier", file, ident)
	}
	return ident, nil
}
