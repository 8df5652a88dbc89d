package tqsm

import (
	"regexp"
	"strings"
)

var (
	paragraphSplitRegex = regexp.MustCompile(`\n{2,}`)
	// one or more immediately adjacent bracketed integers, e.g. "[7][8]"
	numberedReferenceRegex = regexp.MustCompile(`^(\[\d+\])+`)
)

// paragraphBreak separates the sentence lists of adjacent paragraphs in the
// flattened result.
const paragraphBreak = "\n\n"

// segmentText is the boundary-resolution pipeline: paragraph split,
// candidate scan, disambiguation through the language hooks, skip-range
// filtering, sentence slicing. It is a pure function of (lang, text).
func segmentText(lang Language, text string) []string {
	sentences := []string{}
	for _, paragraph := range paragraphSplitRegex.Split(text, -1) {
		if len(sentences) > 0 {
			sentences = append(sentences, paragraphBreak)
		}
		boundaries := resolveBoundaries(lang, paragraph)
		for i, start := range boundaries {
			end := len(paragraph)
			if i+1 < len(boundaries) {
				end = boundaries[i+1]
			}
			sentence := strings.Trim(paragraph[start:end], " ")
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
		}
	}
	return sentences
}

// resolveBoundaries scans one paragraph for candidate terminator runs and
// returns the surviving boundary offsets. The list starts with 0 and is
// strictly increasing; every offset is a grapheme-cluster start (or the
// paragraph length, for a trailing numbered reference).
func resolveBoundaries(lang Language, paragraph string) []int {
	cursor := newGraphemeCursor(paragraph)
	ranges := skippableRanges(paragraph)

	boundaries := []int{0}
	for _, loc := range lang.Boundary().FindAllStringIndex(paragraph, -1) {
		boundary, forced, ok := findBoundary(lang, paragraph, cursor, loc[0], loc[1])
		if !ok {
			continue
		}
		if forced {
			// numbered references absorb the skip-range check
			boundaries = append(boundaries, boundary)
			continue
		}
		boundary, inRange := filterSkipRanges(lang, cursor, ranges, boundary)
		if inRange {
			continue
		}
		boundaries = append(boundaries, boundary)
	}
	return boundaries
}

// findBoundary disambiguates one candidate terminator run [s,e). It returns
// the resolved boundary offset, whether the boundary was forced by a
// numbered reference, and whether the candidate survived at all.
func findBoundary(lang Language, text string, cursor *graphemeCursor, s, e int) (boundary int, forced bool, ok bool) {
	next, hasNext := cursor.next(s)
	if !hasNext {
		// terminator run at the very end of the paragraph; the final
		// slice covers it anyway
		return 0, false, false
	}
	tail := text[next:]
	head := text[:s]

	if ref := numberedReferenceRegex.FindString(tail); ref != "" {
		refEnd := e + len(ref)
		if n, okNext := cursor.next(refEnd); okNext {
			refEnd = n
		}
		return refEnd, true, true
	}

	if lang.ContinueInNextWord(tail) {
		return 0, false, false
	}
	if lang.IsAbbreviation(head, text[s:next]) {
		return 0, false, false
	}
	if lang.IsExclamationWord(head) {
		return 0, false, false
	}
	return e, false, true
}

// filterSkipRanges checks a surviving boundary against the computed skip
// ranges. A boundary strictly inside a range is dropped, unless it sits
// right before the range end and the language treats punctuation before a
// closing quote as sentence-final, in which case it snaps to the range end.
// Only the first containing range is consulted.
func filterSkipRanges(lang Language, cursor *graphemeCursor, ranges []skipRange, boundary int) (int, bool) {
	for _, r := range ranges {
		next, ok := cursor.next(boundary)
		if !ok {
			next = boundary
		}
		if boundary > r.start && boundary < r.end {
			if next == r.end && lang.PunctuationBetweenQuotes() {
				return r.end, false
			}
			return boundary, true
		}
	}
	return boundary, false
}
