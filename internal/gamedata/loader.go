package gamedata

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ReadLines parses a newline-delimited word list.
// Lines are trimmed and lowercased; blank lines and lines starting with '#' are skipped.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Load reads a word list from the embedded filesystem.
func Load(filename string) ([]string, error) {
	return loadFS(dataFS, filename)
}

// LoadFile reads a word list from disk.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer f.Close()

	words, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return words, nil
}

func loadFS(fsys fs.FS, filename string) ([]string, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}
	defer f.Close()

	words, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse word list %s: %w", filename, err)
	}
	return words, nil
}
