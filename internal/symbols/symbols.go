// internal/symbols/symbols.go
//
// Supplies the symbol alphabet placed on the board.
//
// Sources:
//   - A file named by MEMORY_SYMBOLS_FILE (passed in as path).
//   - Otherwise the embedded default_symbols.txt (A through H).
//
// File format:
//   - One symbol per line, surrounding whitespace trimmed.
//   - Blank lines and lines starting with '#' are skipped.
//   - A symbol may not contain inner whitespace (rows are space-joined).
//
// Pair-tiling and duplicate checks belong to game.Setup, which knows the
// board dimensions.

package symbols

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

//go:embed default_symbols.txt
var embeddedDefault string

// ErrEmpty is returned when a source yields no symbols.
var ErrEmpty = errors.New("symbols: list is empty")

// Default returns the embedded alphabet.
func Default() []string {
	out, _ := parse(strings.NewReader(embeddedDefault))
	return out
}

// Load reads the alphabet from path, or returns Default when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("symbols: open %s: %w", path, err)
	}
	defer f.Close()

	out, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("symbols: read %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return out, nil
}

func parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("symbol %q contains whitespace", s)
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
