package tqsm

import (
	"fmt"
	"sort"
	"sync"
)

// LanguageNotSupportedError reports a language identifier the registry
// could not resolve, directly or through its fallback chain.
type LanguageNotSupportedError struct {
	Code string
}

func (e *LanguageNotSupportedError) Error() string {
	return fmt.Sprintf("language %q not supported", e.Code)
}

var (
	registryOnce sync.Once
	registry     map[string]Language
)

func languageRegistry() map[string]Language {
	registryOnce.Do(func() {
		registry = newRegistry()
		tracer().Infof("language registry built: languages=%d fallback chains=%d",
			len(registry), len(languageFallbacks))
	})
	return registry
}

// Segment splits text into an ordered list of sentences using the rules of
// the given language. Paragraphs (runs separated by two or more newlines)
// are segmented independently; a "\n\n" unit is inserted between their
// sentence lists. Empty text yields an empty list.
//
// Segment fails only when langCode cannot be resolved; every well-formed or
// malformed text input is handled gracefully.
func Segment(langCode, text string) ([]string, error) {
	lang, err := Resolve(langCode)
	if err != nil {
		return nil, err
	}
	return segmentText(lang, text), nil
}

// Resolve maps a language identifier to its capability variant. On a
// registry miss the identifier's configured fallback chain (or the global
// default chain) is tried in order, recursively. Resolve returns a
// *LanguageNotSupportedError carrying the original identifier when the
// whole chain is exhausted.
func Resolve(langCode string) (Language, error) {
	visited := make(map[string]bool)
	lang, ok := resolveLanguage(languageRegistry(), langCode, visited)
	if !ok {
		return nil, &LanguageNotSupportedError{Code: langCode}
	}
	return lang, nil
}

// resolveLanguage walks the fallback chain. The visited set bounds the
// recursion: a misconfigured cyclic chain exhausts instead of looping
// forever.
func resolveLanguage(reg map[string]Language, langCode string, visited map[string]bool) (Language, bool) {
	if visited[langCode] {
		return nil, false
	}
	visited[langCode] = true
	if lang, ok := reg[langCode]; ok {
		return lang, true
	}
	fallbacks, ok := languageFallbacks[langCode]
	if !ok {
		fallbacks = defaultFallbacks
	}
	for _, fallback := range fallbacks {
		if lang, ok := resolveLanguage(reg, fallback, visited); ok {
			return lang, true
		}
	}
	return nil, false
}

// SupportedLanguages returns the sorted identifiers of all registered
// language variants.
func SupportedLanguages() []string {
	reg := languageRegistry()
	codes := make([]string, 0, len(reg))
	for code := range reg {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
