package gkverb

import "strings"

// Conjugated holds the six forms of one TVM code in person/number order:
// 1sg, 2sg, 3sg, 1pl, 2pl, 3pl. A nil Conjugated means the code has not
// been (or cannot be) computed.
type Conjugated []string

// Join renders the forms as a single display line.
func (c Conjugated) Join() string {
	return strings.Join(c, ", ")
}

// Conjugate builds the six forms of code for the given stem text.
// It returns nil for any code outside the supported set; callers in
// batch loops skip nil results silently. For the imperfect codes the
// base is augment + trimmed stem; every other code uses the stem text
// literally, with no augment. Endings attach by plain concatenation,
// with no contraction at the boundary.
func Conjugate(stem string, code Code) Conjugated {
	endings, ok := Endings(code)
	if !ok {
		return nil
	}
	base := stem
	if code.augmented() {
		aug, rest := ResolveAugment(stem)
		base = aug + rest
	}
	forms := make(Conjugated, 0, NumForms)
	for _, ending := range endings {
		forms = append(forms, base+ending)
	}
	return forms
}

// Verb is one conjugation request: a tagged stem plus a result slot for
// each supported code. Slots fill on demand and are never overwritten.
// A Verb is built per request and not shared.
type Verb struct {
	Stem  Stem
	slots map[Code]Conjugated
}

// NewVerb parses the tagged stem string s and returns a Verb with all
// slots empty.
func NewVerb(s string) *Verb {
	return &Verb{
		Stem:  ParseStem(s),
		slots: make(map[Code]Conjugated, len(Codes)),
	}
}

// Conjugate fills the slot for code if it is known and not yet filled,
// and returns the slot's forms. Unknown codes leave no slot and return
// nil. Conjugating the same code twice returns the identical result.
func (v *Verb) Conjugate(code Code) Conjugated {
	if forms, ok := v.slots[code]; ok {
		return forms
	}
	forms := Conjugate(v.Stem.Text, code)
	if forms == nil {
		return nil
	}
	v.slots[code] = forms
	return forms
}

// ConjugateAll fills the slots for every known code in codes. A nil or
// empty list means the default codes for the stem's tense family.
// It returns the list actually walked, in order, so callers can render
// results in request order.
func (v *Verb) ConjugateAll(codes []Code) []Code {
	if len(codes) == 0 {
		codes = DefaultCodes(v.Stem.Tense)
	}
	for _, code := range codes {
		v.Conjugate(code)
	}
	return codes
}

// Forms returns the computed forms for code, or (nil, false) when the
// slot is empty.
func (v *Verb) Forms(code Code) (Conjugated, bool) {
	forms, ok := v.slots[code]
	return forms, ok
}
