package tqsm

import (
	"reflect"
	"testing"
)

func TestGraphemeCursorOffsets(t *testing.T) {
	// the family emoji is one cluster of 25 bytes
	text := "a👨‍👩‍👧‍👦b"
	cursor := newGraphemeCursor(text)
	if !reflect.DeepEqual(cursor.offsets, []int{0, 1, 26}) {
		t.Fatalf("offsets should be [0 1 26], is %v", cursor.offsets)
	}
}

func TestGraphemeCursorNextPrev(t *testing.T) {
	cursor := newGraphemeCursor("a👨‍👩‍👧‍👦b")
	if next, ok := cursor.next(0); !ok || next != 1 {
		t.Fatalf("next(0) should be 1, is %d (%v)", next, ok)
	}
	if next, ok := cursor.next(1); !ok || next != 26 {
		t.Fatalf("next(1) should be 26, is %d (%v)", next, ok)
	}
	if next, ok := cursor.next(5); !ok || next != 26 {
		t.Fatalf("next(5) should skip to cluster start 26, is %d (%v)", next, ok)
	}
	if _, ok := cursor.next(26); ok {
		t.Fatal("next past the last cluster should report none")
	}
	if prev, ok := cursor.prev(26); !ok || prev != 1 {
		t.Fatalf("prev(26) should be 1, is %d (%v)", prev, ok)
	}
	if _, ok := cursor.prev(0); ok {
		t.Fatal("prev before the first cluster should report none")
	}
}

func TestGraphemeCursorEmpty(t *testing.T) {
	cursor := newGraphemeCursor("")
	if len(cursor.offsets) != 0 {
		t.Fatalf("empty text should have no offsets, is %v", cursor.offsets)
	}
	if _, ok := cursor.next(0); ok {
		t.Fatal("next on empty cursor should report none")
	}
}

func TestCaseNormalizationHelpers(t *testing.T) {
	if got := lowerFirstGrapheme("DR"); got != "dR" {
		t.Fatalf("lowerFirstGrapheme(DR) should be dR, is %q", got)
	}
	if got := lowerFirstGrapheme("Über"); got != "über" {
		t.Fatalf("lowerFirstGrapheme(Über) should be über, is %q", got)
	}
	if got := upperFirstGrapheme("januar"); got != "Januar" {
		t.Fatalf("upperFirstGrapheme(januar) should be Januar, is %q", got)
	}
}
