package gkverb

// Code names one tense-voice-mood combination, e.g. "pai" for present
// active indicative. The supported set is closed.
type Code string

const (
	PAI Code = "pai" // present active indicative
	PPI Code = "ppi" // present passive indicative
	IAI Code = "iai" // imperfect active indicative
	IPI Code = "ipi" // imperfect passive indicative
	FAI Code = "fai" // future active indicative
	FMI Code = "fmi" // future middle indicative
	FPI Code = "fpi" // future passive indicative
	AAI Code = "aai" // aorist active indicative
	AMI Code = "ami" // aorist middle indicative
	API Code = "api" // aorist passive indicative
)

// Codes lists the supported TVM codes in canonical order.
var Codes = []Code{PAI, PPI, IAI, IPI, FAI, FMI, FPI, AAI, AMI, API}

var descriptions = map[Code]string{
	PAI: "present active indicative",
	PPI: "present passive indicative",
	IAI: "imperfect active indicative",
	IPI: "imperfect passive indicative",
	FAI: "future active indicative",
	FMI: "future middle indicative",
	FPI: "future passive indicative",
	AAI: "aorist active indicative",
	AMI: "aorist middle indicative",
	API: "aorist passive indicative",
}

// Known reports whether c is one of the ten supported codes.
func (c Code) Known() bool {
	_, ok := endingTable[c]
	return ok
}

// Description returns the long name of the code, or "" for an
// unsupported code.
func (c Code) Description() string {
	return descriptions[c]
}

// augmented reports whether forms for c carry a temporal augment.
// Only the imperfect tenses do; the aorist indicative is built on the
// bare stem here even though historical grammar would augment it.
func (c Code) augmented() bool {
	return c == IAI || c == IPI
}

// DefaultCodes returns the TVM codes conjugated for a stem of tense t
// when the caller requests no explicit list. The perfect family's
// defaults name perfect and pluperfect codes that have no ending rows,
// so a perfect stem yields no forms by default.
func DefaultCodes(t Tense) []Code {
	switch t {
	case TensePresent:
		return []Code{PAI, PPI, IAI, IPI}
	case TenseFuture:
		return []Code{FAI, FMI, FPI}
	case TenseAorist:
		return []Code{AAI, AMI, API}
	case TensePerfect:
		return []Code{"pfai", "pfpi", "plai", "plpi"}
	default:
		return nil
	}
}
