package tqsm

import (
	"regexp"
	"strings"
)

// Language is the per-language capability model. The boundary scan asks the
// resolved variant these questions for every candidate terminator; all
// language-specific behavior lives behind these hooks, none of it in the
// scan itself.
type Language interface {
	// Code returns the language identifier the variant is registered under.
	Code() string
	// Boundary returns the terminator-run pattern that yields candidates.
	Boundary() *regexp.Regexp
	// ContinueInNextWord reports whether the text following a candidate
	// shows the sentence continuing, suppressing the boundary.
	ContinueInNextWord(tail string) bool
	// IsAbbreviation reports whether the word before the candidate is a
	// known abbreviation ended by the language's abbreviation marker.
	IsAbbreviation(head, separator string) bool
	// IsExclamationWord reports whether the word before the candidate is an
	// idiomatic exclamation ("Yahoo!") rather than a sentence end.
	IsExclamationWord(head string) bool
	// PunctuationBetweenQuotes reports whether a terminator immediately
	// before a closing quote is sentence-final.
	PunctuationBetweenQuotes() bool
	// LastWord extracts the final word of text.
	LastWord(text string) string
}

var wordSplitRegex = regexp.MustCompile(`[\s.]+`)

// lastToken is the default LastWord: the final token after splitting on
// whitespace/period runs. It is empty when text ends in a separator.
func lastToken(text string) string {
	parts := wordSplitRegex.Split(text, -1)
	return parts[len(parts)-1]
}

// base supplies the default behavior shared by all variants. Variants embed
// it and shadow single hooks; purely data-driven deviations (the Italian
// elision split) are injected as the lastWord function instead.
type base struct {
	code     string
	lastWord func(string) string
}

func newBase(code string) base {
	return base{code: code, lastWord: lastToken}
}

func (b base) Code() string { return b.code }

func (b base) Boundary() *regexp.Regexp { return globalBoundaryRegex }

// ContinueInNextWord by default suppresses the boundary when the first
// character after it is an ASCII lowercase letter or digit.
func (b base) ContinueInNextWord(tail string) bool {
	if tail == "" {
		return false
	}
	c := tail[0]
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

func (b base) IsAbbreviation(head, separator string) bool {
	d := dataFor(b.code)
	if d.abbreviationChar != separator {
		return false
	}
	word := b.lastWord(head)
	if word == "" {
		return false
	}
	return contains(d.abbreviations, word) ||
		contains(d.abbreviations, lowerFirstGrapheme(word)) ||
		contains(d.abbreviations, strings.ToLower(word)) ||
		contains(d.abbreviations, strings.ToUpper(word))
}

// IsExclamationWord checks the last word with its exclamation mark
// reattached, since the configured sets store "Yahoo!"-style entries.
func (b base) IsExclamationWord(head string) bool {
	word := b.lastWord(head)
	if word == "" {
		return false
	}
	return contains(dataFor(b.code).exclamationWords, word+"!")
}

func (b base) PunctuationBetweenQuotes() bool { return false }

func (b base) LastWord(text string) string { return b.lastWord(text) }
