package gkverb

import (
	"strings"
	"testing"
)

func TestConjugateAlwaysSixForms(t *testing.T) {
	for _, code := range Codes {
		forms := Conjugate("παυ", code)
		if len(forms) != NumForms {
			t.Errorf("Conjugate(%q, %s) returned %d forms, want %d",
				"παυ", code, len(forms), NumForms)
		}
	}
}

func TestConjugateNonAugmentedStartsWithStem(t *testing.T) {
	// every code outside the imperfects uses the stem text untouched
	for _, code := range []Code{PAI, PPI, FAI, FMI, FPI, AAI, AMI, API} {
		for _, form := range Conjugate("ἀκου", code) {
			if !strings.HasPrefix(form, "ἀκου") {
				t.Errorf("Conjugate(%q, %s) form %q does not start with the stem",
					"ἀκου", code, form)
			}
		}
	}
}

func TestConjugateImperfect(t *testing.T) {
	tests := []struct {
		stem  string
		code  Code
		forms []string
	}{
		{"ἀκου", IAI, []string{"ἠκουον", "ἠκουες", "ἠκουε", "ἠκουομεν", "ἠκουετε", "ἠκουον"}},
		{"παυ", IAI, []string{"ἐπαυον", "ἐπαυες", "ἐπαυε", "ἐπαυομεν", "ἐπαυετε", "ἐπαυον"}},
		{"παυ", IPI, []string{"ἐπαυομην", "ἐπαυου", "ἐπαυετο", "ἐπαυομεθα", "ἐπαυεσθε", "ἐπαυοντο"}},
	}
	for _, tt := range tests {
		got := Conjugate(tt.stem, tt.code)
		if len(got) != len(tt.forms) {
			t.Errorf("Conjugate(%q, %s) = %v, want %v", tt.stem, tt.code, got, tt.forms)
			continue
		}
		for i := range got {
			if got[i] != tt.forms[i] {
				t.Errorf("Conjugate(%q, %s)[%d] = %q, want %q",
					tt.stem, tt.code, i, got[i], tt.forms[i])
			}
		}
	}
}

func TestConjugatePresent(t *testing.T) {
	got := Conjugate("παυ", PAI)
	want := []string{"παυω", "παυεις", "παυει", "παυομεν", "παυετε", "παυουσι"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Conjugate(%q, pai)[%d] = %q, want %q", "παυ", i, got[i], want[i])
		}
	}
}

func TestConjugateIdempotent(t *testing.T) {
	a := Conjugate("ἀκου", IAI)
	b := Conjugate("ἀκου", IAI)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("repeated Conjugate differs at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestConjugateUnknownCode(t *testing.T) {
	for _, code := range []Code{"pfai", "pfpi", "plai", "plpi", "xxx", ""} {
		if forms := Conjugate("παυ", code); forms != nil {
			t.Errorf("Conjugate(%q, %s) = %v, want nil", "παυ", code, forms)
		}
	}
}

func TestVerbSlots(t *testing.T) {
	vb := NewVerb("pres:παυ")

	if _, ok := vb.Forms(PAI); ok {
		t.Error("Forms(pai) set before Conjugate")
	}
	first := vb.Conjugate(PAI)
	if len(first) != NumForms {
		t.Fatalf("Conjugate(pai) returned %d forms", len(first))
	}
	// slot never changes once filled
	second := vb.Conjugate(PAI)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot changed on refill at %d: %q vs %q", i, first[i], second[i])
		}
	}

	// unknown codes leave no slot and no error
	if forms := vb.Conjugate("pfai"); forms != nil {
		t.Errorf("Conjugate(pfai) = %v, want nil", forms)
	}
	if _, ok := vb.Forms("pfai"); ok {
		t.Error("unknown code left a filled slot")
	}
}

func TestVerbDefaultCodes(t *testing.T) {
	tests := []struct {
		stem     string
		codes    []Code
		computed int
	}{
		{"pres:παυ", []Code{PAI, PPI, IAI, IPI}, 4},
		{"fut:παυσ", []Code{FAI, FMI, FPI}, 3},
		{"aor:παυσ", []Code{AAI, AMI, API}, 3},
		// the perfect defaults name codes with no ending rows: nothing computes
		{"perf:πεπαυκ", []Code{"pfai", "pfpi", "plai", "plpi"}, 0},
	}
	for _, tt := range tests {
		vb := NewVerb(tt.stem)
		requested := vb.ConjugateAll(nil)
		if len(requested) != len(tt.codes) {
			t.Errorf("%s: ConjugateAll(nil) walked %v, want %v", tt.stem, requested, tt.codes)
			continue
		}
		computed := 0
		for i, code := range requested {
			if code != tt.codes[i] {
				t.Errorf("%s: default code %d = %s, want %s", tt.stem, i, code, tt.codes[i])
			}
			if _, ok := vb.Forms(code); ok {
				computed++
			}
		}
		if computed != tt.computed {
			t.Errorf("%s: %d codes computed, want %d", tt.stem, computed, tt.computed)
		}
	}
}

func TestConjugatedJoin(t *testing.T) {
	vb := NewVerb("pres:παυ")
	vb.Conjugate(PAI)
	forms, _ := vb.Forms(PAI)
	want := "παυω, παυεις, παυει, παυομεν, παυετε, παυουσι"
	if got := forms.Join(); got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestEndings(t *testing.T) {
	if _, ok := Endings(PAI); !ok {
		t.Error("Endings(pai) not found")
	}
	if _, ok := Endings("pfai"); ok {
		t.Error("Endings(pfai) found, want absent")
	}
	// shared rows
	pai, _ := Endings(PAI)
	fai, _ := Endings(FAI)
	if pai != fai {
		t.Errorf("pai and fai ending rows differ: %v vs %v", pai, fai)
	}
	ppi, _ := Endings(PPI)
	fmi, _ := Endings(FMI)
	if ppi != fmi {
		t.Errorf("ppi and fmi ending rows differ: %v vs %v", ppi, fmi)
	}
}
