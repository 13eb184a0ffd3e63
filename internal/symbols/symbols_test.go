package symbols

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "symbols.txt")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H"}, Default())
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadFile(t *testing.T) {
	p := writeFile(t, "# fruit\n  🍎\n\n🍌\n🍒 \n")
	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"🍎", "🍌", "🍒"}, got)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "# nothing here\n\n"))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Load(writeFile(t, "A\nB C\n"))
	assert.ErrorContains(t, err, "whitespace")
}
