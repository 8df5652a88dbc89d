package tqsm

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// skipRange is a half-open byte interval [start, end) inside which boundary
// candidates are suppressed or snapped (quoted spans, parentheticals,
// e-mail addresses).
type skipRange struct {
	start, end int
}

// quotePairs maps opening quote glyphs to their closers. The apostrophe
// opener requires a preceding space so that elisions and contractions
// ("l'un", "aujourd'hui", "don't") do not open a span.
var quotePairs = [][2]string{
	{`"`, `"`},
	{` '`, `'`},
	{"«", "»"},
	{"‘", "’"},
	{"‚", "‛"},
	{"“", "”"},
	{"„", "‟"},
	{"‹", "›"},
	{"「", "」"},
	{"《", "》"},
}

var quotePairsRegex = compileQuotePairs()

func compileQuotePairs() *regexp.Regexp {
	alts := make([]string, 0, len(quotePairs))
	for _, pair := range quotePairs {
		// non-greedy, may span embedded newlines
		alts = append(alts, pair[0]+`(\n|.)*?`+pair[1])
	}
	return regexp.MustCompile(strings.Join(alts, "|"))
}

// parensRegex matches bracketed spans non-greedily. The backreference lets
// a backslash-escaped opener pass as an ordinary character instead of
// terminating the capture early; stdlib regexp cannot express this.
var parensRegex = regexp2.MustCompile(`([(（<{\[])(?:\\\1|.)*?[)\]}）]`, regexp2.None)

var emailRegex = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}`)

// skippableRanges collects the quoted, parenthesized and e-mail spans of
// text into one unordered list. Categories are computed independently;
// overlapping ranges are kept as-is. Unbalanced quotes or brackets simply
// fail to match and the text is treated as ordinary prose.
func skippableRanges(text string) []skipRange {
	var ranges []skipRange
	for _, loc := range quotePairsRegex.FindAllStringIndex(text, -1) {
		ranges = append(ranges, skipRange{start: loc[0], end: loc[1]})
	}
	for _, loc := range emailRegex.FindAllStringIndex(text, -1) {
		ranges = append(ranges, skipRange{start: loc[0], end: loc[1]})
	}
	ranges = append(ranges, parenRanges(text)...)
	return ranges
}

// parenRanges runs the backreference pattern and converts its rune-indexed
// matches to byte intervals.
func parenRanges(text string) []skipRange {
	m, err := parensRegex.FindStringMatch(text)
	if err != nil || m == nil {
		return nil
	}
	// regexp2 indexes runes, not bytes
	runeToByte := make([]int, 0, len(text)+1)
	for i := range text {
		runeToByte = append(runeToByte, i)
	}
	runeToByte = append(runeToByte, len(text))

	var ranges []skipRange
	for m != nil {
		ranges = append(ranges, skipRange{
			start: runeToByte[m.Index],
			end:   runeToByte[m.Index+m.Length],
		})
		m, err = parensRegex.FindNextMatch(m)
		if err != nil {
			break
		}
	}
	return ranges
}
