package tqsm

import (
	"errors"
	"testing"
)

func TestResolveExactMatch(t *testing.T) {
	for _, code := range SupportedLanguages() {
		lang, err := Resolve(code)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", code, err)
		}
		if lang.Code() != code {
			t.Fatalf("Resolve(%q) should resolve exactly, got %q", code, lang.Code())
		}
	}
}

func TestResolveFallbackChain(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"zh", "en"},      // zh -> zh-hans (miss) -> en
		{"uk", "ru"},      // direct fallback
		{"gl", "pt"},      // first chain entry wins
		{"no", "da"},      // no -> nb (cyclic with no) -> da
		{"nn", "da"},      // nn -> nb -> no (all cyclic) -> da
		{"zh-hant", "en"}, // two chained misses
	}
	for _, c := range cases {
		lang, err := Resolve(c.code)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", c.code, err)
		}
		if lang.Code() != c.want {
			t.Fatalf("Resolve(%q) should fall back to %q, is %q", c.code, c.want, lang.Code())
		}
	}
}

func TestResolveUnsupported(t *testing.T) {
	_, err := Resolve("xx")
	if err == nil {
		t.Fatal("Resolve(xx) should fail")
	}
	var notSupported *LanguageNotSupportedError
	if !errors.As(err, &notSupported) {
		t.Fatalf("error should be *LanguageNotSupportedError, is %T", err)
	}
	if notSupported.Code != "xx" {
		t.Fatalf("error should carry the requested code, is %q", notSupported.Code)
	}

	_, err = Segment("xx", "Some text.")
	if !errors.As(err, &notSupported) {
		t.Fatalf("Segment should surface the resolver failure, got %v", err)
	}
}

func TestSupportedLanguages(t *testing.T) {
	codes := SupportedLanguages()
	if len(codes) != 30 {
		t.Fatalf("should be 30 languages, is %d: %v", len(codes), codes)
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes should be sorted and unique: %v", codes)
		}
	}
}

func TestLanguageDataCoversRegistry(t *testing.T) {
	for _, code := range SupportedLanguages() {
		d := dataFor(code) // panics if an entry is missing
		if d.abbreviationChar == "" {
			t.Fatalf("%s: abbreviation char must not be empty", code)
		}
	}
}

func TestAbbreviationLookup(t *testing.T) {
	en, err := Resolve("en")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		head      string
		separator string
		want      bool
	}{
		{"This is Dr", ".", true},
		{"the U", ".", true},
		{"the U.S", ".", true},
		{"see fig", ".", true},
		{"Now Vs", ".", true},      // matches "vs" after first-letter lowercasing
		{"item u", ".", true},      // matches "U" after uppercasing
		{"This is Dr", "!", false}, // wrong separator
		{"went home", ".", false},  // not an abbreviation
		{"trailing space ", ".", false},
	}
	for _, c := range cases {
		if got := en.IsAbbreviation(c.head, c.separator); got != c.want {
			t.Fatalf("IsAbbreviation(%q, %q) should be %v, is %v", c.head, c.separator, c.want, got)
		}
	}
}

func TestExclamationWordLookup(t *testing.T) {
	en, err := Resolve("en")
	if err != nil {
		t.Fatal(err)
	}
	if !en.IsExclamationWord("I work at Yahoo") {
		t.Fatal("Yahoo should be an exclamation word")
	}
	if en.IsExclamationWord("the end") {
		t.Fatal("end should not be an exclamation word")
	}
}
