package tqsm

import (
	"regexp"
	"strings"
)

// globalTerminators are the characters that may end a sentence in any
// language unless a variant substitutes its own set. The list covers the
// Latin stops plus the sentence-final marks of the scripts the supported
// languages are written in (Arabic, Urdu, Syriac, Devanagari, Myanmar,
// Ethiopic, Canadian syllabics, Mongolian) and a few typographic doubles.
var globalTerminators = []rune{
	'.', '!', '?',
	'。', '．', '！', '？', // fullwidth / ideographic
	'؟', '۔', // Arabic question mark, Urdu full stop
	'܀', '܁', '܂', // Syriac
	'।', '॥', // Devanagari danda, double danda
	'၊', '။', // Myanmar little section, section
	'።', '፧', '፨', // Ethiopic full stop, question mark, paragraph separator
	'᙮',      // Canadian syllabics full stop
	'᠃', '᠉', // Mongolian full stop, double stop
	'‼', '‽', '⁇', '⁈', '⁉',
	'…',
}

// boundaryPattern compiles a terminator-run pattern from a rune set.
// Runs of adjacent terminators ("?!", "...") form a single candidate.
func boundaryPattern(terminators []rune) *regexp.Regexp {
	var class strings.Builder
	for _, r := range terminators {
		class.WriteString(regexp.QuoteMeta(string(r)))
	}
	return regexp.MustCompile("[" + class.String() + "]+")
}

// withTerminators returns the global set extended by extra runes.
func withTerminators(extra ...rune) []rune {
	set := make([]rune, 0, len(globalTerminators)+len(extra))
	set = append(set, globalTerminators...)
	return append(set, extra...)
}

// withoutPeriod returns the global set minus the plain period, extended by
// extra runes. Used by scripts with their own full stop.
func withoutPeriod(extra ...rune) []rune {
	set := make([]rune, 0, len(globalTerminators)+len(extra))
	for _, r := range globalTerminators {
		if r != '.' {
			set = append(set, r)
		}
	}
	return append(set, extra...)
}

var globalBoundaryRegex = boundaryPattern(globalTerminators)

// isGlobalTerminator reports whether r is in the global terminator set.
func isGlobalTerminator(r rune) bool {
	for _, t := range globalTerminators {
		if r == t {
			return true
		}
	}
	return false
}
