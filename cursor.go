package tqsm

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// graphemeCursor navigates the grapheme-cluster boundaries of one paragraph.
// It is built once per paragraph and records the byte offset of every
// cluster start, in ascending order. Every boundary the segmenter emits is
// taken from this sequence, so a sentence can never be cut inside a
// multi-byte cluster.
type graphemeCursor struct {
	offsets []int // ascending cluster-start byte offsets
}

// newGraphemeCursor scans text and records all grapheme-cluster starts.
func newGraphemeCursor(text string) *graphemeCursor {
	offsets := make([]int, 0, len(text))
	state := -1
	var cluster string
	rest := text
	pos := 0
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offsets = append(offsets, pos)
		pos += len(cluster)
	}
	return &graphemeCursor{offsets: offsets}
}

// next returns the smallest recorded offset strictly greater than pos.
func (c *graphemeCursor) next(pos int) (int, bool) {
	i := sort.SearchInts(c.offsets, pos+1)
	if i >= len(c.offsets) {
		return 0, false
	}
	return c.offsets[i], true
}

// prev returns the largest recorded offset strictly less than pos.
func (c *graphemeCursor) prev(pos int) (int, bool) {
	i := sort.SearchInts(c.offsets, pos)
	if i == 0 {
		return 0, false
	}
	return c.offsets[i-1], true
}

// lowerFirstGrapheme lowercases the first grapheme cluster of w and leaves
// the remainder untouched ("DR" => "dR", "Über" => "über").
func lowerFirstGrapheme(w string) string {
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(w, -1)
	return strings.ToLower(first) + rest
}

// upperFirstGrapheme uppercases the first grapheme cluster of w.
func upperFirstGrapheme(w string) string {
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(w, -1)
	return strings.ToUpper(first) + rest
}
