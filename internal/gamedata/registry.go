package gamedata

import (
	"errors"
	"math/rand"
)

// ErrNoWords is returned when a root word list contains no usable entries.
var ErrNoWords = errors.New("no root words loaded")

// RootWords holds the loaded root word list and picks words from it.
type RootWords struct {
	words []string
}

// NewRootWords creates a list from already normalized words.
func NewRootWords(words []string) (*RootWords, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return &RootWords{words: words}, nil
}

// LoadRootWords loads the embedded start.txt.
func LoadRootWords() (*RootWords, error) {
	words, err := Load(DefaultWordsFile)
	if err != nil {
		return nil, err
	}
	return NewRootWords(words)
}

// LoadRootWordsFile loads a root word list from disk.
func LoadRootWordsFile(path string) (*RootWords, error) {
	words, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewRootWords(words)
}

// Random returns a root word chosen uniformly at random.
func (r *RootWords) Random(rng *rand.Rand) string {
	return r.words[rng.Intn(len(r.words))]
}

// Contains reports whether w is one of the root words.
func (r *RootWords) Contains(w string) bool {
	for _, word := range r.words {
		if word == w {
			return true
		}
	}
	return false
}

// All returns all root words.
func (r *RootWords) All() []string {
	return r.words
}

// Count returns the number of root words.
func (r *RootWords) Count() int {
	return len(r.words)
}
