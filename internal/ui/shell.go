package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/wordscramble/internal/game"
)

// Shell is the interactive terminal front end for a single game.
type Shell struct {
	screen   *Screen
	renderer *Renderer
	game     *game.Game
	input    []rune
	running  bool
}

// NewShell creates a shell that drives g on screen.
func NewShell(screen *Screen, g *game.Game, theme Theme) *Shell {
	return &Shell{
		screen:   screen,
		renderer: NewRenderer(screen, theme),
		game:     g,
		running:  true,
	}
}

// Run executes the input loop until the player quits or the screen closes.
func (s *Shell) Run(ctx context.Context) error {
	defer s.screen.Close()

	for s.running {
		s.Render()

		ev := s.screen.PollEvent()
		if ev == nil {
			break
		}
		s.HandleEvent(ctx, ev)
	}
	return nil
}

// Render draws the current game and input line.
func (s *Shell) Render() {
	s.renderer.Render(s.game.Snapshot(), string(s.input))
}

// Input returns the text currently typed.
func (s *Shell) Input() string {
	return string(s.input)
}

// Running reports whether the loop should continue.
func (s *Shell) Running() bool {
	return s.running
}

// HandleEvent processes a single input event.
func (s *Shell) HandleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (s *Shell) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		s.running = false
		return
	}

	// An open alert swallows the key that dismisses it
	if s.game.LastError() != nil {
		s.game.DismissError()
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		s.running = false

	case tcell.KeyEnter:
		s.submit(ctx)

	case tcell.KeyCtrlR:
		root := s.game.StartGame(ctx)
		s.input = s.input[:0]
		log.Info().Str("root_word", root).Msg("game restarted")

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}

	case tcell.KeyRune:
		s.input = append(s.input, ev.Rune())
	}
}

// submit sends the input line to the game. The line is only cleared on accept.
func (s *Shell) submit(ctx context.Context) {
	outcome, err := s.game.AddNewWord(ctx, string(s.input))

	switch outcome {
	case game.OutcomeAccepted:
		log.Debug().Str("word", game.Normalize(string(s.input))).Int("score", s.game.Score()).Msg("word accepted")
		s.input = s.input[:0]
	case game.OutcomeRejected:
		log.Debug().Err(err).Str("word", string(s.input)).Msg("word rejected")
	}
}
