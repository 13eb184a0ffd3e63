// internal/game/types.go
//
// Core type definitions for the memory game engine.
// Defines:
//   - Card: one cell of the board (symbol plus visibility flags).
//   - Coord / Board: the fixed grid of cards, addressed by row and column.
//   - Player / Score: the two turn-holders and their match counts.
//   - Move / Outcome: the flip log entry and the result of resolving a pair.
//   - Session: all state for one game; recreated, never patched, on restart.

package game

import "time"

// Player identifies one of the two fixed turn-holders.
type Player string

const (
	Player1 Player = "player1"
	Player2 Player = "player2"
)

// Label is the human form used in score lines ("Player 1").
func (p Player) Label() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return string(p)
}

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Card is a single board cell.
// A matched card is always displayed, whatever Revealed says.
type Card struct {
	Symbol   string // token from the alphabet; each appears on exactly two cards
	Revealed bool   // face-up for the pair currently being played, or after a match
	Matched  bool   // pair confirmed; never reset
}

// Visible reports whether the card's symbol is shown when rendering.
func (c Card) Visible() bool { return c.Revealed || c.Matched }

// Coord addresses a board cell.
type Coord struct {
	Row int
	Col int
}

// Board is a rows x cols grid stored row-major.
type Board struct {
	Rows  int
	Cols  int
	cards []Card
}

// Score maps each player to the number of pairs they found.
type Score map[Player]int

// Outcome is the result of resolving a pair of revealed cards.
type Outcome string

const (
	OutcomeMatch   Outcome = "match"
	OutcomeNoMatch Outcome = "no_match"
)

// Move is one entry of the flip log: the two cards resolved together.
type Move struct {
	First  Coord
	Second Coord
}

// Session holds the state of a single game.
type Session struct {
	ID         string    // random UUID
	Board      *Board    // shuffled cards
	Score      Score     // matches per player
	Turn       Player    // current turn-holder
	Over       bool      // set by CheckCompletion once every card is matched
	Moves      []Move    // append-only flip log, in resolution order
	StartedAt  time.Time // set by Setup
	FinishedAt time.Time // set when the game is over
}
