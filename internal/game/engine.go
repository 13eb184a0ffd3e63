// internal/game/engine.go
//
// Core engine for a single memory game session.
// Responsibilities:
//   - Build a shuffled board where every symbol appears exactly twice.
//   - Validate and apply card selections.
//   - Resolve a pair of revealed cards: match (keep shown, score) or hide again.
//   - Alternate turns and detect completion.
//
// Notes:
//   - Nothing here reads input or prints; the console package drives the loop.
//   - Mismatched cards are hidden again immediately, there is no delay.
//   - Session IDs are random UUIDs, used to correlate audit records.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultRows = 4
	DefaultCols = 4
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Setup creates a fresh session: a shuffled rows x cols board holding two of
// each symbol, zero scores, Player1 to move, and an empty move log.
// If rng is nil the package-level generator from math/rand/v2 is used.
//
// Returns ErrConfiguration (wrapped) when:
//   - rows or cols is not positive,
//   - a symbol is empty, repeated, or equal to the Hidden placeholder,
//   - rows*cols != 2*len(symbols).
func Setup(rows, cols int, symbols []string, rng Shuffler) (*Session, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrConfiguration, rows, cols)
	}
	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if s == "" || s == Hidden {
			return nil, fmt.Errorf("%w: symbol %q is not allowed", ErrConfiguration, s)
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: symbol %q listed twice", ErrConfiguration, s)
		}
		seen[s] = struct{}{}
	}
	if rows*cols != 2*len(symbols) {
		return nil, fmt.Errorf("%w: %d symbols cannot tile a %dx%d board in pairs",
			ErrConfiguration, len(symbols), rows, cols)
	}
	if rng == nil {
		rng = globalShuffler{}
	}

	cards := make([]Card, 0, rows*cols)
	for _, s := range symbols {
		cards = append(cards, Card{Symbol: s}, Card{Symbol: s})
	}
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	return &Session{
		ID:        uuid.NewString(),
		Board:     &Board{Rows: rows, Cols: cols, cards: cards},
		Score:     Score{Player1: 0, Player2: 0},
		Turn:      Player1,
		Moves:     []Move{},
		StartedAt: time.Now(),
	}, nil
}

// Render is the text form of the session's board.
func Render(s *Session) string { return s.Board.Render() }

// SelectCard flips the card at c face-up.
// It fails with ErrOutOfRange or ErrAlreadyRevealed and leaves the session
// untouched in that case.
func (s *Session) SelectCard(c Coord) error {
	if !s.Board.InBounds(c) {
		return ErrOutOfRange
	}
	card := s.Board.cell(c)
	if card.Revealed || card.Matched {
		return ErrAlreadyRevealed
	}
	card.Revealed = true
	return nil
}

// ResolvePair compares two cards previously flipped by SelectCard.
// Equal symbols are marked matched and the turn-holder scores one point;
// otherwise both cards are hidden again. The pair is appended to the move log.
//
// This is the only place that sets Matched or changes the score.
func (s *Session) ResolvePair(a, b Coord) (Outcome, error) {
	if !s.Board.InBounds(a) || !s.Board.InBounds(b) {
		return "", ErrOutOfRange
	}
	if a == b {
		return "", ErrSameCard
	}
	ca, cb := s.Board.cell(a), s.Board.cell(b)
	if ca.Matched || cb.Matched {
		return "", ErrAlreadyMatched
	}
	if !ca.Revealed || !cb.Revealed {
		return "", ErrNotRevealed
	}

	s.Moves = append(s.Moves, Move{First: a, Second: b})
	if ca.Symbol != cb.Symbol {
		ca.Revealed, cb.Revealed = false, false
		return OutcomeNoMatch, nil
	}
	ca.Matched, cb.Matched = true, true
	s.Score[s.Turn]++
	return OutcomeMatch, nil
}

// AdvanceTurn hands the turn to the other player and returns the new holder.
// It runs once per resolved pair, match or not.
func (s *Session) AdvanceTurn() Player {
	s.Turn = s.Turn.Other()
	return s.Turn
}

// CheckCompletion reports whether every card is matched, setting Over (and
// FinishedAt, the first time) when it is.
func (s *Session) CheckCompletion() bool {
	for _, c := range s.Board.cards {
		if !c.Matched {
			return false
		}
	}
	if !s.Over {
		s.Over = true
		s.FinishedAt = time.Now()
	}
	return true
}

// Winner returns the player with more pairs. ok is false on a tie.
func (s *Session) Winner() (p Player, ok bool) {
	p1, p2 := s.Score[Player1], s.Score[Player2]
	switch {
	case p1 > p2:
		return Player1, true
	case p2 > p1:
		return Player2, true
	}
	return "", false
}
