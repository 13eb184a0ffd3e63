package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/memory/internal/game"
	"github.com/robalobadob/memory/internal/store"
)

// inOrder keeps the deck unshuffled: indices 2k and 2k+1 hold the same symbol.
type inOrder struct{}

func (inOrder) Shuffle(int, func(i, j int)) {}

var letters = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// allPairs picks every pair in order, one pair per turn.
const allPairs = "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n13\n14\n15\n"

func play(t *testing.T, cfg Config, input string) (string, store.Store) {
	t.Helper()
	if cfg.Symbols == nil {
		cfg.Symbols = letters
	}
	cfg.Shuffler = inOrder{}
	st := store.NewMemoryStore()
	if cfg.Store == nil {
		cfg.Store = st
	}
	var out bytes.Buffer
	err := New(strings.NewReader(input), &out, cfg).Run(context.Background())
	require.NoError(t, err)
	return out.String(), st
}

func TestFullGameThenQuit(t *testing.T) {
	out, st := play(t, Config{}, allPairs+"n\n")

	assert.Equal(t, 8, strings.Count(out, "It's a match!"))
	assert.Contains(t, out, "Scores: Player 1 - 1, Player 2 - 0")
	assert.Contains(t, out, "Game over! All cards have been matched.")
	assert.Contains(t, out, "Final Scores: Player 1 - 4, Player 2 - 4")
	assert.Contains(t, out, "It's a tie!")
	assert.Contains(t, out, "A A B B\nC C D D\nE E F F\nG G H H\n")
	assert.True(t, strings.HasSuffix(out, "Do you want to play again? (Y/N): Thanks for playing!\n"))

	recs, err := st.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Len(t, recs[0].Moves, 8)
	assert.Equal(t, game.Move{First: game.Coord{Row: 3, Col: 2}, Second: game.Coord{Row: 3, Col: 3}}, recs[0].Moves[7])
	assert.False(t, recs[0].FinishedAt.IsZero())
}

func TestWinnerAnnounced(t *testing.T) {
	// 2x3 board: A A B B C C
	input := "0\n2\n" + // p1 miss
		"0\n1\n" + // p2 A
		"2\n4\n" + // p1 miss
		"2\n3\n" + // p2 B
		"4\n5\n" + // p1 C
		"N\n"
	out, _ := play(t, Config{Rows: 2, Cols: 3, Symbols: []string{"A", "B", "C"}}, input)

	assert.Equal(t, 2, strings.Count(out, "No match! Cards will be flipped back."))
	assert.Contains(t, out, "Final Scores: Player 1 - 1, Player 2 - 2")
	assert.Contains(t, out, "Player 2 wins!")
}

func TestInvalidInputRepromptsWithoutChangingState(t *testing.T) {
	input := "abc\n" + // first pick: not a number
		"16\n" + // out of range
		"0\n" + // ok
		"0\n" + // same card again
		"r\n" + // restart is not accepted at the second pick
		"-3\n" +
		"2\n" // A vs B
	out, st := play(t, Config{}, input)

	assert.Equal(t, 2, strings.Count(out, msgNotANumber))
	assert.Equal(t, 2, strings.Count(out, msgOutOfRange))
	assert.Equal(t, 1, strings.Count(out, msgAlreadyShown))
	assert.Equal(t, 4, strings.Count(out, "Choose a card index (0 to 15): "))
	assert.Contains(t, out, "A X B X\n")
	assert.Contains(t, out, "No match! Cards will be flipped back.")
	assert.Contains(t, out, "Scores: Player 1 - 0, Player 2 - 0")
	assert.Contains(t, out, "player2's turn.")
	assert.True(t, strings.HasSuffix(out, "X X X X\nplayer2's turn.\nEnter card index or 'R' to restart the game: \nThanks for playing!\n"))

	recs, err := st.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, recs, "unfinished games are not recorded")
}

func TestRestartDiscardsSession(t *testing.T) {
	out, _ := play(t, Config{}, "0\n1\nR\n")

	assert.Contains(t, out, "Scores: Player 1 - 1, Player 2 - 0")
	assert.Equal(t, 2, strings.Count(out, "player1's turn."))
	assert.Equal(t, 1, strings.Count(out, "player2's turn."))
	assert.True(t, strings.HasSuffix(out,
		"X X X X\nX X X X\nX X X X\nX X X X\nplayer1's turn.\nEnter card index or 'R' to restart the game: \nThanks for playing!\n"))
}

func TestReplay(t *testing.T) {
	out, st := play(t, Config{}, allPairs+"maybe\ny\n")

	assert.Equal(t, 1, strings.Count(out, msgInvalidReplay))
	assert.Equal(t, 1, strings.Count(out, "Game over!"))
	assert.Equal(t, 5, strings.Count(out, "player1's turn."))
	assert.True(t, strings.HasSuffix(out,
		"X X X X\nplayer1's turn.\nEnter card index or 'R' to restart the game: \nThanks for playing!\n"))

	recs, err := st.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

type failingStore struct{ store.Store }

func (failingStore) Save(context.Context, store.Record) error { return errors.New("disk full") }

func TestStoreFailureDoesNotEndGame(t *testing.T) {
	out, _ := play(t, Config{Store: failingStore{}}, allPairs+"n\n")
	assert.Contains(t, out, "Final Scores: Player 1 - 4, Player 2 - 4")
	assert.True(t, strings.HasSuffix(out, "Thanks for playing!\n"))
}

func TestRunRejectsBadAlphabet(t *testing.T) {
	var out bytes.Buffer
	g := New(strings.NewReader(""), &out, Config{Symbols: []string{"A", "B"}})
	err := g.Run(context.Background())
	assert.ErrorIs(t, err, game.ErrConfiguration)
	assert.Empty(t, out.String())
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := New(strings.NewReader("0\n"), &out, Config{Symbols: letters}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
