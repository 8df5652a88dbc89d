package tqsm

import (
	"strings"
	"testing"
)

func rangeCovering(ranges []skipRange, text, span string) bool {
	start := strings.Index(text, span)
	if start < 0 {
		return false
	}
	for _, r := range ranges {
		if r.start == start && r.end == start+len(span) {
			return true
		}
	}
	return false
}

func TestQuotedSpans(t *testing.T) {
	text := `He shouted "stop right now" and left.`
	if !rangeCovering(skippableRanges(text), text, `"stop right now"`) {
		t.Fatalf("quoted span not found in %v", skippableRanges(text))
	}
	// guillemets, spanning an embedded newline
	text = "Sie rief «komm\nzurück» und ging."
	if !rangeCovering(skippableRanges(text), text, "«komm\nzurück»") {
		t.Fatalf("newline-spanning quote not found in %v", skippableRanges(text))
	}
}

func TestApostropheNeedsLeadingSpace(t *testing.T) {
	// elisions must not open a quoted span
	text := "l'un d'eux est parti"
	for _, r := range skippableRanges(text) {
		t.Fatalf("no range expected for elisions, got [%d,%d)", r.start, r.end)
	}
	text = "he said 'wait here' twice"
	ranges := skippableRanges(text)
	if !rangeCovering(ranges, text, " 'wait here'") {
		t.Fatalf("spaced apostrophe quote not found in %v", ranges)
	}
}

func TestParentheticalSpans(t *testing.T) {
	text := "He teaches (worked 5 years as an engineer.) at the University"
	if !rangeCovering(skippableRanges(text), text, "(worked 5 years as an engineer.)") {
		t.Fatalf("parenthetical not found in %v", skippableRanges(text))
	}
	// an escaped opener is an ordinary character, not a nesting boundary
	text = `x (a \( b) y`
	if !rangeCovering(skippableRanges(text), text, `(a \( b)`) {
		t.Fatalf("escaped-opener span not found in %v", skippableRanges(text))
	}
	// square brackets count too
	text = "cited[16] inline"
	if !rangeCovering(skippableRanges(text), text, "[16]") {
		t.Fatalf("bracket span not found in %v", skippableRanges(text))
	}
}

func TestEmailSpans(t *testing.T) {
	text := "reach me at jane_doe+spam@mail.example.org anytime"
	if !rangeCovering(skippableRanges(text), text, "jane_doe+spam@mail.example.org") {
		t.Fatalf("email span not found in %v", skippableRanges(text))
	}
}

func TestMalformedSpansAreIgnored(t *testing.T) {
	// unbalanced openers never match and never error
	for _, text := range []string{`he said "and nothing more`, "open (forever", "stray ] here"} {
		for _, r := range skippableRanges(text) {
			t.Fatalf("%q: no range expected, got [%d,%d)", text, r.start, r.end)
		}
	}
}

func TestRangesAreNotMerged(t *testing.T) {
	// quote and bracket categories are computed independently and may
	// overlap; nothing is merged or deduplicated
	text := `"(both)"`
	ranges := skippableRanges(text)
	if len(ranges) != 2 {
		t.Fatalf("should be 2 overlapping ranges, is %d: %v", len(ranges), ranges)
	}
}
