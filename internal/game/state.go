// Package game provides the word validation pipeline and game state management.
package game

import "slices"

// State is the mutable state of a single game.
// UsedWords is ordered newest first and Score always equals len(UsedWords).
type State struct {
	RootWord  string
	UsedWords []string
	Score     int
}

// NewState returns a fresh state for root.
func NewState(root string) State {
	return State{RootWord: root, UsedWords: []string{}}
}

// Used reports whether word has already been accepted.
func (s *State) Used(word string) bool {
	return slices.Contains(s.UsedWords, word)
}

// accept prepends word and scores it. Callers must have validated word.
func (s *State) accept(word string) {
	s.UsedWords = slices.Insert(s.UsedWords, 0, word)
	s.Score++
}

// clone returns a deep copy so callers cannot mutate the game's list.
func (s State) clone() State {
	s.UsedWords = slices.Clone(s.UsedWords)
	if s.UsedWords == nil {
		s.UsedWords = []string{}
	}
	return s
}

// Outcome is the result of submitting a word.
type Outcome int

const (
	// OutcomeIgnored means the input was empty and the game is unchanged.
	OutcomeIgnored Outcome = iota
	// OutcomeAccepted means the word was added to the used words and scored.
	OutcomeAccepted
	// OutcomeRejected means the word broke a rule and is now the game's error.
	OutcomeRejected
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
