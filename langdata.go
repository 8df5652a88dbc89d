package tqsm

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/derekparker/trie"
)

// languageData holds the static per-language configuration: the
// abbreviation marker plus the abbreviation and exclamation-word sets.
// The word sets are kept in tries; membership tests dominate and the data
// is write-once.
type languageData struct {
	abbreviationChar string
	abbreviations    *trie.Trie
	exclamationWords *trie.Trie
}

type languageDataEntry struct {
	AbbreviationChar string   `json:"abbreviation_char"`
	Abbreviations    []string `json:"abbreviations"`
	ExclamationWords []string `json:"exclamation_words"`
}

//go:embed langdata.json
var langDataJSON []byte

var (
	langDataOnce sync.Once
	langData     map[string]*languageData
)

// dataFor returns the data entry for a registered language code. Every
// registered code must have an entry in the embedded configuration; a miss
// means the embedded data and the registry went out of sync, which is a
// build defect, not an input error.
func dataFor(code string) *languageData {
	langDataOnce.Do(loadLanguageData)
	d, ok := langData[code]
	assert(ok, "no language data entry for language "+code)
	return d
}

func loadLanguageData() {
	var entries map[string]languageDataEntry
	if err := json.Unmarshal(langDataJSON, &entries); err != nil {
		panic("tqsm: malformed embedded language data: " + err.Error())
	}
	langData = make(map[string]*languageData, len(entries))
	words := 0
	for code, entry := range entries {
		d := &languageData{
			abbreviationChar: entry.AbbreviationChar,
			abbreviations:    trie.New(),
			exclamationWords: trie.New(),
		}
		for _, w := range entry.Abbreviations {
			d.abbreviations.Add(w, nil)
		}
		for _, w := range entry.ExclamationWords {
			d.exclamationWords.Add(w, nil)
		}
		words += len(entry.Abbreviations) + len(entry.ExclamationWords)
		langData[code] = d
	}
	tracer().Infof("language data loaded: languages=%d words=%d", len(langData), words)
}

func contains(t *trie.Trie, word string) bool {
	if word == "" {
		return false
	}
	_, ok := t.Find(word)
	return ok
}
