/*
Package tqsm splits raw text into sentences.

Sentence boundaries are language dependent: abbreviations ("Dr.", "z.B."),
quoted and parenthesized material, e-mail addresses, numbered citation
markers ("announced on 31 July.[17][18]") and idiomatic exclamations
("Yahoo!") all contain characters that look sentence-final but are not.
The segmenter applies per-language heuristics on top of a shared boundary
scan, so callers get usable sentence lists for thirty languages plus
anything reachable through the configured fallback chains.

The single entry point is

	sents, err := tqsm.Segment("en", "This is Dr. Watson. Thanks for having me!")

which resolves "en" to a language capability, scans the text for candidate
terminators, disambiguates each candidate and returns the surviving slices.
Segmentation is a pure function of (language, text); all language tables are
built once on first use and are never mutated afterwards, so they are safe
for concurrent readers without locking.

Per-language data (abbreviation marker, abbreviation words, exclamation
words) is embedded structured configuration, not code. The behavioral
overrides that cannot be expressed as data (Cyrillic continuation classes,
month-name date handling, script-specific terminators, Italian elision)
live in per-language capability variants, one hook set per language.

----------------------------------------------------------------------

# MIT License

# Copyright (c) Musharraf Omer

All rights reserved.

License information is available in the LICENSE file.
*/
package tqsm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tqsm'
func tracer() tracing.Trace {
	return tracing.Select("tqsm")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
