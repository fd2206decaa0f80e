package gen

import (
	"go/token"
	"strings"
	"unicode"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// call renders a call of a runtime package function.
func (b *builder) call(fn string, args ...string) string {
	return b.runtime + "." + fn + "(" + strings.Join(args, ", ") + ")"
}

// goIdent turns a model name into a Go identifier. Characters that cannot
// appear in an identifier become underscores, and names that would still be
// invalid get a leading underscore.
func goIdent(name string) string {
	if token.IsIdentifier(name) {
		return name
	}

	var sb strings.Builder

	for _, r := range name {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}

	ident := sb.String()
	if !token.IsIdentifier(ident) {
		ident = "_" + ident
	}

	return ident
}
