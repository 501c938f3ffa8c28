package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnglish(t *testing.T) {
	set, err := LoadEnglish()
	if err != nil {
		t.Fatalf("LoadEnglish() error = %v", err)
	}
	if set.Count() == 0 {
		t.Fatal("LoadEnglish() returned an empty set")
	}
	if set.Language() != English {
		t.Errorf("Language() = %q, want %q", set.Language(), English)
	}

	tests := []struct {
		word string
		want bool
	}{
		{"rag", true},
		{"groan", true},
		{"listen", true},
		{"it", true},
		{"RAG", true},
		{"xyz", false},
		{"ltsen", false},
		{"", false},
		{"#", false},
	}

	for _, tt := range tests {
		if got := set.IsReal(tt.word, English); got != tt.want {
			t.Errorf("IsReal(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestLoadEnglishCoversDerivedWords(t *testing.T) {
	set, err := LoadEnglish()
	if err != nil {
		t.Fatalf("LoadEnglish() error = %v", err)
	}
	if set.Count() < 100000 {
		t.Errorf("Count() = %d, want a full English word list", set.Count())
	}

	// Words spelled from the letters of the bundled root words.
	words := []string{
		"rage", "ogre", "snare", "glean", "range", "anger", "organ",
		"tinsel", "enlist", "hound", "swain", "angle", "angel", "shoe",
		"lease", "dread", "tread", "mouse", "stern", "shout",
	}
	for _, w := range words {
		if !set.IsReal(w, English) {
			t.Errorf("IsReal(%q) = false, want true", w)
		}
	}
}

func TestWordSetLanguage(t *testing.T) {
	set := NewWordSet(English, []string{" Orange ", "rag"})

	if !set.IsReal("orange", English) {
		t.Error("IsReal(orange, en) should be true")
	}
	if set.IsReal("orange", "fr") {
		t.Error("IsReal(orange, fr) should be false for an English set")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("chat\nchien\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Load("fr", path)
	if err != nil {
		t.Fatalf("Load(fr, file) error = %v", err)
	}
	if !set.IsReal("chien", "fr") {
		t.Error("IsReal(chien, fr) should be true")
	}

	if _, err := Load("fr", ""); err == nil {
		t.Error("Load(fr, \"\") should fail without an embedded French list")
	}

	if _, err := Load(English, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Load() should fail for a missing file")
	}

	set, err = Load(English, "")
	if err != nil {
		t.Fatalf("Load(en, \"\") error = %v", err)
	}
	if !set.IsReal("orange", English) {
		t.Error("embedded set should contain orange")
	}
}

func TestCheckerFunc(t *testing.T) {
	var calls int
	var checker RealnessChecker = CheckerFunc(func(word, language string) bool {
		calls++
		return word == "yes"
	})

	if !checker.IsReal("yes", English) || checker.IsReal("no", English) {
		t.Error("CheckerFunc did not forward to the wrapped function")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
