package gkverb

import "strings"

// Tense identifies the tense family a stem belongs to.
type Tense int

const (
	TensePresent Tense = iota
	TenseFuture
	TenseAorist
	TensePerfect
)

// String returns the tag spelling used in tagged stem strings.
func (t Tense) String() string {
	switch t {
	case TensePresent:
		return "pres"
	case TenseFuture:
		return "fut"
	case TenseAorist:
		return "aor"
	case TensePerfect:
		return "perf"
	default:
		return "unknown"
	}
}

// Stem is a verb stem tagged with its tense family. Text is kept exactly
// as supplied: case-preserving, no normalization.
type Stem struct {
	Tense Tense
	Text  string
}

// ParseStem parses a tagged stem string of the form "tag:stem" where tag
// is one of pres, fut, aor, perf. An unrecognized or absent tag falls
// back silently to a present stem carrying the original string unmodified,
// colon and all. No further validation is done: empty stems and
// non-letter content pass through as-is.
func ParseStem(s string) Stem {
	tag, body, ok := strings.Cut(s, ":")
	if !ok {
		return Stem{Tense: TensePresent, Text: s}
	}
	switch tag {
	case "pres":
		return Stem{Tense: TensePresent, Text: body}
	case "fut":
		return Stem{Tense: TenseFuture, Text: body}
	case "aor":
		return Stem{Tense: TenseAorist, Text: body}
	case "perf":
		return Stem{Tense: TensePerfect, Text: body}
	default:
		return Stem{Tense: TensePresent, Text: s}
	}
}
