package gkverb

// NumForms is the number of person/number slots per conjugation:
// 1sg, 2sg, 3sg, 1pl, 2pl, 3pl.
const NumForms = 6

// endingTable maps each supported code to its ending row. Built once,
// read-only thereafter. The present and future active share a row, as do
// the present passive and future middle.
var endingTable = map[Code][NumForms]string{
	PAI: {"ω", "εις", "ει", "ομεν", "ετε", "ουσι"},
	PPI: {"ομαι", "ῃ", "εται", "ομεθα", "εσθε", "ονται"},
	IAI: {"ον", "ες", "ε", "ομεν", "ετε", "ον"},
	IPI: {"ομην", "ου", "ετο", "ομεθα", "εσθε", "οντο"},
	FAI: {"ω", "εις", "ει", "ομεν", "ετε", "ουσι"},
	FMI: {"ομαι", "ῃ", "εται", "ομεθα", "εσθε", "ονται"},
	FPI: {"θησομαι", "θησῃ", "θησεται", "θησομεθα", "θησεσθε", "θησονται"},
	AAI: {"α", "ας", "ε", "αμεν", "ατε", "αν"},
	AMI: {"αμην", "ω", "ατο", "αμεθα", "ασθε", "αντο"},
	API: {"θην", "θης", "θη", "θημεν", "θητε", "θησαν"},
}

// Endings returns the ending row for code c. ok is false for any code
// outside the supported ten, including the perfect-family codes the
// default lists mention.
func Endings(c Code) (endings [NumForms]string, ok bool) {
	endings, ok = endingTable[c]
	return endings, ok
}
