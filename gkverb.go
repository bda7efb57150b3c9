// Package gkverb conjugates classical Greek verbs. Given a tense-tagged
// stem such as "pres:παυ" and a set of tense-voice-mood codes it produces
// the six indicative person/number forms for each code by attaching the
// ending row for that code, applying the temporal augment where the tense
// requires one.
//
// The conjugator is deliberately regular: it knows nothing about real
// verbs, irregular paradigms or phonological contraction. Forms are built
// by literal concatenation of base and ending.
package gkverb
