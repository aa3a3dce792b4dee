package field

import (
	"strings"
	"unicode"
)

// NormalizeKey collapses every run of whitespace into a single underscore.
// Leading and trailing runs are kept as underscores too.
func NormalizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))

	inSpace := false
	for _, r := range key {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
