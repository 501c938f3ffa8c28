// Package dictionary answers whether a string is a real word in a given language.
package dictionary

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/samdwyer/wordscramble/internal/gamedata"
)

// English is the language code of the embedded word list.
const English = "en"

//go:embed english.txt
var embeddedEnglish []byte

// RealnessChecker reports whether word is a correctly spelled word in language.
type RealnessChecker interface {
	IsReal(word, language string) bool
}

// CheckerFunc adapts a plain function to RealnessChecker.
type CheckerFunc func(word, language string) bool

// IsReal calls f(word, language).
func (f CheckerFunc) IsReal(word, language string) bool {
	return f(word, language)
}

// WordSet is a RealnessChecker backed by an in-memory word list for a single language.
type WordSet struct {
	language string
	words    map[string]struct{}
}

// NewWordSet builds a set from words. Words are lowercased and trimmed.
func NewWordSet(language string, words []string) *WordSet {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &WordSet{language: language, words: set}
}

// LoadEnglish returns the embedded English word set.
func LoadEnglish() (*WordSet, error) {
	words, err := gamedata.ReadLines(bytes.NewReader(embeddedEnglish))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded dictionary: %w", err)
	}
	return NewWordSet(English, words), nil
}

// LoadFile reads a newline-delimited word list from disk for language.
func LoadFile(language, path string) (*WordSet, error) {
	words, err := gamedata.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("dictionary %s is empty", path)
	}
	return NewWordSet(language, words), nil
}

// Load returns the dictionary at path, or the embedded English list when path is empty.
func Load(language, path string) (*WordSet, error) {
	if path != "" {
		return LoadFile(language, path)
	}
	if language != English {
		return nil, fmt.Errorf("no embedded dictionary for language %q", language)
	}
	return LoadEnglish()
}

// IsReal reports whether word is in the set. Any other language is never real.
func (s *WordSet) IsReal(word, language string) bool {
	if language != s.language {
		return false
	}
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Language returns the set's language code.
func (s *WordSet) Language() string {
	return s.language
}

// Count returns the number of words in the set.
func (s *WordSet) Count() int {
	return len(s.words)
}
