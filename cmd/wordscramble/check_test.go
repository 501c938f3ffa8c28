package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/samdwyer/wordscramble/internal/dictionary"
	"github.com/samdwyer/wordscramble/internal/game"
	"github.com/samdwyer/wordscramble/internal/gamedata"
)

func TestCheckWords(t *testing.T) {
	dict := dictionary.NewWordSet(dictionary.English, []string{"rag", "it", "silent"})
	validator := game.Validator{Checker: dict}

	var out bytes.Buffer
	err := checkWords(&out, validator, "Orange", []string{"RAG", "orange", "xyz", "   ", "ogre", "ago"})
	if !errors.Is(err, errRejected) {
		t.Fatalf("checkWords() error = %v, want errRejected", err)
	}

	want := "rag: ok\n" +
		"orange: already_used (Word used already)\n" +
		"xyz: not_possible (Not a valid word)\n" +
		"ogre: not_real (Not a real word)\n" +
		"ago: not_real (Not a real word)\n"
	if out.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", out.String(), want)
	}

	out.Reset()
	if err := checkWords(&out, validator, "listen", []string{"it"}); !errors.Is(err, errRejected) {
		t.Fatalf("checkWords(it) error = %v, want errRejected", err)
	}
	if out.String() != "it: too_short (Too short!)\n" {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := checkWords(&out, validator, "listen", []string{"silent"}); err != nil {
		t.Errorf("checkWords(silent) error = %v, want nil", err)
	}
}

func TestNewGameFactorySeeds(t *testing.T) {
	words, err := gamedata.LoadRootWords()
	if err != nil {
		t.Fatal(err)
	}
	dict := dictionary.CheckerFunc(func(string, string) bool { return true })

	a := newGameFactory(words, dict, game.Config{Seed: 10})
	b := newGameFactory(words, dict, game.Config{Seed: 10})

	// Same seed, same sequence of games
	for i := 0; i < 5; i++ {
		if ra, rb := a().RootWord(), b().RootWord(); ra != rb {
			t.Errorf("game %d: %q != %q", i, ra, rb)
		}
	}

	// Offsets reproduce a single game with the offset seed
	c := newGameFactory(words, dict, game.Config{Seed: 10})
	c()
	second := c().RootWord()
	if want := game.New(words, dict, game.Config{Seed: 11}).RootWord(); second != want {
		t.Errorf("second game root = %q, want %q", second, want)
	}
}

func TestNewGameFactorySkipsZeroSeed(t *testing.T) {
	words, err := gamedata.LoadRootWords()
	if err != nil {
		t.Fatal(err)
	}
	dict := dictionary.CheckerFunc(func(string, string) bool { return true })

	// -1, then 0 is skipped, then 1 and 2
	factory := newGameFactory(words, dict, game.Config{Seed: -1})
	for _, seed := range []int64{-1, 1, 2} {
		got := factory().RootWord()
		if want := game.New(words, dict, game.Config{Seed: seed}).RootWord(); got != want {
			t.Errorf("seed %d: root = %q, want %q", seed, got, want)
		}
	}
}
