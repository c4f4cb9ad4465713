// Package textproc provides the canonical whitespace normalization every
// pipeline stage operates on.
package textproc

import (
	"strings"
	"unicode"
)

type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize collapses every maximal run of whitespace into a single space
// and trims both ends. Total and idempotent.
func (Normalizer) Normalize(s string) string {
	return Normalize(s)
}

func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inRun = true
			continue
		}
		if inRun && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}
