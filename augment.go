package gkverb

import "strings"

// augmentRule maps a leading vowel or diphthong, with any breathing or
// accent it carries, to its lengthened (augmented) replacement.
type augmentRule struct {
	prefix  string
	augment string
}

// augmentRules is checked in order. The two-rune diphthongs come first:
// a diphthong's opening alpha must not fall through to a bare-vowel rule
// or to the default syllabic augment.
var augmentRules = []augmentRule{
	{"αἰ", "ᾐ"},
	{"αἴ", "ᾐ"},
	{"αἶ", "ᾐ"},
	{"αἱ", "ᾑ"},
	{"αἵ", "ᾑ"},
	{"αἷ", "ᾑ"},
	{"ἀ", "ἠ"},
	{"ἂ", "ἠ"},
	{"ἆ", "ἠ"},
	{"ἁ", "ἡ"},
	{"ἅ", "ἡ"},
	{"ἇ", "ἡ"},
}

// defaultAugment is the syllabic augment prepended to consonant-initial
// stems.
const defaultAugment = "ἐ"

// ResolveAugment returns the temporal augment for stem together with the
// remainder of the stem after the matched vowel is removed. A stem that
// starts with no listed vowel keeps its full text and takes the default
// syllabic augment ἐ.
func ResolveAugment(stem string) (augment, rest string) {
	for _, r := range augmentRules {
		if strings.HasPrefix(stem, r.prefix) {
			return r.augment, strings.TrimPrefix(stem, r.prefix)
		}
	}
	return defaultAugment, stem
}
