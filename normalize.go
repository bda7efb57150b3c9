package gkverb

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes accents, breathings and iota subscripts from
// polytonic Greek text: decompose, drop the combining marks, recompose.
// Conjugation itself never normalizes; this exists for the lexicon's
// accent-insensitive search column and the lookup endpoints built on it.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Bare returns the lowercased, diacritic-free search key for a form.
// Final sigma is folded to medial so "παυεις" and "ΠΑΥΕΙΣ" key alike.
func Bare(s string) string {
	s = strings.ToLower(StripDiacritics(s))
	return strings.ReplaceAll(s, "ς", "σ")
}
