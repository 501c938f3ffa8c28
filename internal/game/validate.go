package game

import (
	"strings"
	"unicode/utf8"

	"github.com/samdwyer/wordscramble/internal/dictionary"
)

// Reason identifies which rule rejected a word.
type Reason int

const (
	// ReasonAlreadyUsed is reported when the word was already accepted or is the root word itself.
	ReasonAlreadyUsed Reason = iota + 1
	// ReasonNotPossible is reported when the word can't be spelled from the root word's letters.
	ReasonNotPossible
	// ReasonNotReal is reported when the dictionary doesn't know the word.
	ReasonNotReal
	// ReasonTooShort is reported when the word has fewer than MinWordLength letters.
	ReasonTooShort
)

// String returns the reason's stable identifier.
func (r Reason) String() string {
	switch r {
	case ReasonAlreadyUsed:
		return "already_used"
	case ReasonNotPossible:
		return "not_possible"
	case ReasonNotReal:
		return "not_real"
	case ReasonTooShort:
		return "too_short"
	default:
		return "unknown"
	}
}

// RejectionError is a recoverable rule failure shown to the player as a title and message.
type RejectionError struct {
	Reason  Reason
	Title   string
	Message string
}

func (e *RejectionError) Error() string {
	return e.Title + ": " + e.Message
}

// Rejections returned by Validate. Compare with errors.Is.
var (
	ErrAlreadyUsed = &RejectionError{ReasonAlreadyUsed, "Word used already", "Be more original!"}
	ErrNotPossible = &RejectionError{ReasonNotPossible, "Not a valid word", "Words must be in the current word list."}
	ErrNotReal     = &RejectionError{ReasonNotReal, "Not a real word", "Words must be real words."}
	ErrTooShort    = &RejectionError{ReasonTooShort, "Too short!", "Words must be at least three letters long."}
)

// Normalize lowercases and trims raw input.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Validator runs the word rules in order: originality, feasibility, realness, length.
// The first failing rule decides the reported rejection.
type Validator struct {
	Checker  dictionary.RealnessChecker
	Language string
}

// Validate checks a normalized, non-empty candidate against st.
// Returns nil when the word may be accepted, otherwise one of the Err* rejections.
func (v Validator) Validate(candidate string, st *State) error {
	if !isOriginal(candidate, st) {
		return ErrAlreadyUsed
	}
	if !isPossible(candidate, st.RootWord) {
		return ErrNotPossible
	}
	if v.Checker == nil || !v.Checker.IsReal(candidate, v.Language) {
		return ErrNotReal
	}
	if utf8.RuneCountInString(candidate) < MinWordLength {
		return ErrTooShort
	}
	return nil
}

// isOriginal reports whether word is neither used nor the root word itself.
func isOriginal(word string, st *State) bool {
	return word != st.RootWord && !st.Used(word)
}

// isPossible reports whether word's letters are a sub-multiset of root's:
// each letter of root may be consumed at most once.
func isPossible(word, root string) bool {
	counts := make(map[rune]int, len(root))
	for _, r := range root {
		counts[r]++
	}
	for _, r := range word {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}
	return true
}
