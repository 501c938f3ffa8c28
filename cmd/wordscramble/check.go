package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/samdwyer/wordscramble/internal/dictionary"
	"github.com/samdwyer/wordscramble/internal/game"
)

var errRejected = errors.New("one or more words rejected")

var checkCmd = &cobra.Command{
	Use:   "check ROOT WORD...",
	Short: "Check words against a root word without playing",
	Long: `Runs every WORD through the game rules against ROOT and prints the result.
Each word is checked against a fresh game, so repeats are not rejected.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, dict := mustLoadResources(cfg)

		validator := game.Validator{
			Checker:  dict,
			Language: cfg.Game.Language,
		}
		return checkWords(cmd.OutOrStdout(), validator, args[0], args[1:])
	},
}

// checkWords prints one line per word and returns errRejected if any failed.
func checkWords(w io.Writer, validator game.Validator, root string, words []string) error {
	if validator.Language == "" {
		validator.Language = dictionary.English
	}

	root = game.Normalize(root)
	var failed bool
	for _, raw := range words {
		word := game.Normalize(raw)
		if word == "" {
			continue
		}
		st := game.NewState(root)
		if err := validator.Validate(word, &st); err != nil {
			failed = true
			var rej *game.RejectionError
			if errors.As(err, &rej) {
				fmt.Fprintf(w, "%s: %s (%s)\n", word, rej.Reason, rej.Title)
				continue
			}
			return err
		}
		fmt.Fprintf(w, "%s: ok\n", word)
	}
	if failed {
		return errRejected
	}
	return nil
}
