package game

import "github.com/samdwyer/wordscramble/internal/dictionary"

// MinWordLength is the shortest word the game accepts, counted in letters.
const MinWordLength = 3

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible root word picks.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Language passed to the realness checker. Defaults to English.
	Language string
}

func (c Config) withDefaults() Config {
	if c.Language == "" {
		c.Language = dictionary.English
	}
	return c
}
