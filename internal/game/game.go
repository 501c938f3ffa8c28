package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wordscramble/internal/dictionary"
	"github.com/samdwyer/wordscramble/internal/gamedata"
	"github.com/samdwyer/wordscramble/internal/telemetry"
)

// Game owns the state of one player's game and is its only mutator.
// A Game is not safe for concurrent use.
type Game struct {
	words     *gamedata.RootWords
	validator Validator
	rng       *rand.Rand
	state     State
	lastErr   *RejectionError
}

// Snapshot is a read-only copy of a game for presentation.
type Snapshot struct {
	State
	Error *RejectionError
}

// New creates a game and starts the first round.
func New(words *gamedata.RootWords, checker dictionary.RealnessChecker, cfg Config) *Game {
	cfg = cfg.withDefaults()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		words: words,
		validator: Validator{
			Checker:  checker,
			Language: cfg.Language,
		},
		rng: rand.New(rand.NewSource(seed)),
	}
	g.reset()
	return g
}

// StartGame clears the used words and score and picks a new root word.
func (g *Game) StartGame(ctx context.Context) string {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.start")
	defer span.End()

	g.reset()

	span.SetAttributes(
		attribute.String("root_word", g.state.RootWord),
		attribute.Int("word_list_size", g.words.Count()),
	)
	return g.state.RootWord
}

func (g *Game) reset() {
	g.state = NewState(g.words.Random(g.rng))
	g.lastErr = nil
}

// AddNewWord normalizes raw input and runs it through the validator.
//
// Empty input is ignored with no state change. A valid word is prepended to the
// used words and scores a point. Otherwise the rejection is returned and kept as
// the game's current error.
func (g *Game) AddNewWord(ctx context.Context, raw string) (Outcome, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.add_word")
	defer span.End()

	word := Normalize(raw)
	span.SetAttributes(
		attribute.String("root_word", g.state.RootWord),
		attribute.String("candidate", word),
	)

	if word == "" {
		span.SetAttributes(attribute.String("outcome", OutcomeIgnored.String()))
		return OutcomeIgnored, nil
	}

	if err := g.validator.Validate(word, &g.state); err != nil {
		var rej *RejectionError
		if !errors.As(err, &rej) {
			return OutcomeRejected, err
		}
		g.lastErr = rej
		span.SetAttributes(
			attribute.String("outcome", OutcomeRejected.String()),
			attribute.String("reason", rej.Reason.String()),
		)
		return OutcomeRejected, rej
	}

	g.state.accept(word)
	g.lastErr = nil
	span.SetAttributes(
		attribute.String("outcome", OutcomeAccepted.String()),
		attribute.Int("score", g.state.Score),
	)
	return OutcomeAccepted, nil
}

// DismissError clears the current error without touching the game.
func (g *Game) DismissError() {
	g.lastErr = nil
}

// RootWord returns the current root word.
func (g *Game) RootWord() string {
	return g.state.RootWord
}

// UsedWords returns a copy of the accepted words, newest first.
func (g *Game) UsedWords() []string {
	return g.state.clone().UsedWords
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// LastError returns the most recent rejection, or nil.
func (g *Game) LastError() *RejectionError {
	return g.lastErr
}

// Snapshot returns a copy of the game for rendering or serialization.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{State: g.state.clone(), Error: g.lastErr}
}
