package tqsm

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// Continuation character classes. The ASCII default (see
// base.ContinueInNextWord) is extended per language: Cyrillic readers get
// Cyrillic lowercase, and several Latin-script languages skip a leading run
// of non-letter characters (closing quotes, dashes) before the check.
var (
	cyrillicContinuation = regexp.MustCompile(`^[0-9a-zа-я]`)
	latinContinuation    = regexp.MustCompile(`^[^\pL\pN]*[0-9a-z]`)
	kazakhContinuation   = regexp.MustCompile(`^[^\pL\pN]*[0-9a-zа-я]`)
)

// Month-name tables for the languages whose ordinal dates put a period
// right before the month ("den 3. Januar 2020").
var (
	germanMonths = monthSet("Januar", "Februar", "März", "April", "Mai",
		"Juni", "Juli", "August", "September", "Oktober", "November",
		"Dezember")
	finnishMonths = monthSet("tammikuu", "helmikuu", "maaliskuu", "huhtikuu",
		"toukokuu", "kesäkuu", "heinäkuu", "elokuu", "syyskuu", "lokakuu",
		"marraskuu", "joulukuu")
	// nominative and genitive forms
	slovakMonths = monthSet("Január", "Február", "Marec", "Apríl", "Máj",
		"Jún", "Júl", "August", "September", "Október", "November",
		"December", "Januára", "Februára", "Marca", "Apríla", "Mája",
		"Júna", "Júla", "Augusta", "Septembra", "Októbra", "Novembra",
		"Decembra")
)

func monthSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// continuesWithMonth reports whether the first word after the candidate is
// a month name, directly or title-cased. The word is taken at its UAX#29
// boundary and stripped of any leading or trailing terminator run.
func continuesWithMonth(tail string, months map[string]bool) bool {
	word, _, _ := uniseg.FirstWordInString(strings.TrimSpace(tail), -1)
	word = strings.TrimFunc(word, isGlobalTerminator)
	if word == "" {
		return false
	}
	return months[word] || months[upperFirstGrapheme(word)]
}

type russian struct{ base }

func (russian) ContinueInNextWord(tail string) bool {
	return cyrillicContinuation.MatchString(tail)
}

type danish struct{ base }

func (danish) ContinueInNextWord(tail string) bool {
	return latinContinuation.MatchString(tail)
}

type kazakh struct{ base }

func (kazakh) ContinueInNextWord(tail string) bool {
	return kazakhContinuation.MatchString(tail)
}

type german struct{ base }

func (german) ContinueInNextWord(tail string) bool {
	return latinContinuation.MatchString(tail) || continuesWithMonth(tail, germanMonths)
}
func (german) PunctuationBetweenQuotes() bool { return true }

type finnish struct{ base }

func (finnish) ContinueInNextWord(tail string) bool {
	return latinContinuation.MatchString(tail) || continuesWithMonth(tail, finnishMonths)
}

type slovak struct{ base }

func (slovak) ContinueInNextWord(tail string) bool {
	return latinContinuation.MatchString(tail) || continuesWithMonth(tail, slovakMonths)
}

// Greek ends questions with the semicolon.
type greek struct{ base }

var greekBoundaryRegex = boundaryPattern(withTerminators(';'))

func (greek) Boundary() *regexp.Regexp { return greekBoundaryRegex }

// Armenian does not use the plain period; the script has its own full stop
// and exclamation mark, and the colon doubles as a sentence end.
type armenian struct{ base }

var armenianBoundaryRegex = boundaryPattern(withoutPeriod('։', '՜', ':'))

func (armenian) Boundary() *regexp.Regexp { return armenianBoundaryRegex }

// Burmese marks sentence ends with the sentence-final particle as well.
type burmese struct{ base }

var burmeseBoundaryRegex = boundaryPattern(withTerminators('၏'))

func (burmese) Boundary() *regexp.Regexp { return burmeseBoundaryRegex }

// italianLastWord additionally splits at the elision marker so that a
// contracted article does not become part of the word ("dell'avv" => "avv").
func italianLastWord(text string) string {
	word := lastToken(text)
	parts := strings.Split(word, "l'")
	return parts[len(parts)-1]
}

func newItalian() base {
	b := newBase("it")
	b.lastWord = italianLastWord
	return b
}

// newRegistry builds the language registry. Languages without behavioral
// overrides are plain base variants; their specifics live entirely in the
// embedded language data.
func newRegistry() map[string]Language {
	langs := []Language{
		newBase("am"), newBase("ar"), newBase("bg"), newBase("bn"),
		newBase("ca"), newBase("en"), newBase("es"), newBase("fr"),
		newBase("gu"), newBase("hi"), newBase("kn"), newBase("ml"),
		newBase("mr"), newBase("nl"), newBase("or"), newBase("pa"),
		newBase("pl"), newBase("pt"), newBase("ta"), newBase("te"),
		newItalian(),
		russian{newBase("ru")},
		danish{newBase("da")},
		kazakh{newBase("kk")},
		german{newBase("de")},
		finnish{newBase("fi")},
		slovak{newBase("sk")},
		greek{newBase("el")},
		armenian{newBase("hy")},
		burmese{newBase("my")},
	}
	registry := make(map[string]Language, len(langs))
	for _, lang := range langs {
		registry[lang.Code()] = lang
	}
	return registry
}
