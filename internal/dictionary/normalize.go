package dictionary

import (
	"strings"
	"unicode"
)

// fold cleans a word or prefix: surrounding space is dropped and, with
// Lowercase set, letters are folded.
func (d *Dictionary) fold(s string) string {
	s = strings.TrimSpace(s)
	if d.opts.Lowercase {
		s = strings.ToLower(s)
	}
	return s
}

// foldPattern is fold for wildcard patterns. The wildcard rune is never trimmed
// or case-folded, so a space or an upper-case wildcard keeps its meaning.
func (d *Dictionary) foldPattern(s string) string {
	w := d.opts.Wildcard
	s = strings.TrimFunc(s, func(r rune) bool {
		return r != w && unicode.IsSpace(r)
	})
	if d.opts.Lowercase {
		s = strings.Map(func(r rune) rune {
			if r == w {
				return r
			}
			return unicode.ToLower(r)
		}, s)
	}
	return s
}
