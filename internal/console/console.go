// internal/console/console.go
//
// Line-based console front end for the memory game.
// Responsibilities:
//   - Drive the turn state machine:
//       awaitingFirstPick → awaitingSecondPick → resolving → turnComplete
//       → (gameOver | awaitingFirstPick)
//   - Print the board, prompts, outcome and score lines.
//   - Map input errors to corrective messages and re-prompt in place.
//   - Rebuild the session on restart ('R' at the first pick) or replay.
//   - Hand finished games to the audit store.
//
// Notes:
//   - The session is held in Run's local variable and replaced wholesale on
//     restart, so every later step sees the new game.
//   - Closing the input ends the session as if replay had been declined.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/memory/internal/game"
	"github.com/robalobadob/memory/internal/store"
)

// Messages printed for recoverable input errors.
const (
	msgNotANumber    = "Invalid input. Please enter a number."
	msgOutOfRange    = "Invalid index. Please choose a valid index."
	msgAlreadyShown  = "Card already revealed. Choose a different card."
	msgInvalidReplay = "Invalid input. Please enter 'Y' to play again or 'N' to quit."
	msgFarewell      = "Thanks for playing!"
)

type phase int

const (
	awaitingFirstPick phase = iota
	awaitingSecondPick
	resolving
	turnComplete
	gameOver
	ended
)

// Config carries the game's fixed inputs.
type Config struct {
	Rows, Cols int           // board size; zero means game.DefaultRows/DefaultCols
	Symbols    []string      // alphabet, each placed twice
	Shuffler   game.Shuffler // nil uses math/rand/v2
	Store      store.Store   // nil disables audit records
}

// Game runs memory sessions over a reader/writer pair.
type Game struct {
	cfg Config
	in  *bufio.Scanner
	out io.Writer
}

// New wires a Game to in and out.
func New(in io.Reader, out io.Writer, cfg Config) *Game {
	if cfg.Rows == 0 {
		cfg.Rows = game.DefaultRows
	}
	if cfg.Cols == 0 {
		cfg.Cols = game.DefaultCols
	}
	return &Game{cfg: cfg, in: bufio.NewScanner(in), out: out}
}

// Run plays sessions until replay is declined or input ends.
// It returns an error only when a session cannot be set up, the context is
// cancelled, or the engine rejects a pair the loop itself validated.
func (g *Game) Run(ctx context.Context) error {
	sess, err := g.newSession()
	if err != nil {
		return err
	}

	var first, second game.Coord
	ph := awaitingFirstPick
	for ph != ended {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch ph {
		case awaitingFirstPick:
			g.print(game.Render(sess))
			g.printf("%s's turn.\n", sess.Turn)
			line, ok := g.prompt("Enter card index or 'R' to restart the game: ")
			if !ok {
				ph = ended
				continue
			}
			if game.IsRestart(line) {
				log.Debug().Str("session", sess.ID).Msg("restart requested")
				if sess, err = g.newSession(); err != nil {
					return err
				}
				continue
			}
			c, err := pick(sess, line)
			if err != nil {
				g.println(message(err))
				continue
			}
			first = c
			g.print(game.Render(sess))
			ph = awaitingSecondPick

		case awaitingSecondPick:
			line, ok := g.prompt(fmt.Sprintf("Choose a card index (0 to %d): ", sess.Board.Size()-1))
			if !ok {
				ph = ended
				continue
			}
			c, err := pick(sess, line)
			if err != nil {
				g.println(message(err))
				continue
			}
			second = c
			g.print(game.Render(sess))
			ph = resolving

		case resolving:
			outcome, err := sess.ResolvePair(first, second)
			if err != nil {
				return fmt.Errorf("resolve pair: %w", err)
			}
			log.Debug().
				Str("session", sess.ID).
				Str("player", string(sess.Turn)).
				Int("first", sess.Board.Index(first)).
				Int("second", sess.Board.Index(second)).
				Str("outcome", string(outcome)).
				Msg("pair resolved")
			if outcome == game.OutcomeMatch {
				g.println("It's a match!")
			} else {
				g.println("No match! Cards will be flipped back.")
			}
			ph = turnComplete

		case turnComplete:
			g.println(scoreLine("Scores", sess))
			sess.AdvanceTurn()
			if !sess.CheckCompletion() {
				ph = awaitingFirstPick
				continue
			}
			g.finish(ctx, sess)
			ph = gameOver

		case gameOver:
			line, ok := g.prompt("Do you want to play again? (Y/N): ")
			if !ok {
				ph = ended
				continue
			}
			again, err := game.ParseReplay(line)
			if err != nil {
				g.println(message(err))
				continue
			}
			log.Debug().Str("session", sess.ID).Bool("replay", again).Msg("replay decision")
			if !again {
				ph = ended
				continue
			}
			if sess, err = g.newSession(); err != nil {
				return err
			}
			ph = awaitingFirstPick
		}
	}

	g.println(msgFarewell)
	return nil
}

func (g *Game) newSession() (*game.Session, error) {
	sess, err := game.Setup(g.cfg.Rows, g.cfg.Cols, g.cfg.Symbols, g.cfg.Shuffler)
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}
	log.Debug().Str("session", sess.ID).Msg("session started")
	return sess, nil
}

// finish prints the game-over banner and stores the flip log.
// Store failures are logged; they never interrupt play.
func (g *Game) finish(ctx context.Context, sess *game.Session) {
	g.print(game.Render(sess))
	g.println("Game over! All cards have been matched.")
	g.println(scoreLine("Final Scores", sess))
	if p, ok := sess.Winner(); ok {
		g.printf("%s wins!\n", p.Label())
	} else {
		g.println("It's a tie!")
	}
	log.Debug().Str("session", sess.ID).Int("moves", len(sess.Moves)).Msg("game over")

	if g.cfg.Store == nil {
		return
	}
	if err := g.cfg.Store.Save(ctx, store.RecordOf(sess)); err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("failed to save audit record")
	}
}

// pick parses line as a flat index and flips that card.
func pick(sess *game.Session, line string) (game.Coord, error) {
	i, err := game.ParseIndex(line, sess.Board.Size())
	if err != nil {
		return game.Coord{}, err
	}
	c := sess.Board.CoordOf(i)
	if err := sess.SelectCard(c); err != nil {
		return game.Coord{}, err
	}
	return c, nil
}

func message(err error) string {
	switch {
	case errors.Is(err, game.ErrNotANumber):
		return msgNotANumber
	case errors.Is(err, game.ErrOutOfRange):
		return msgOutOfRange
	case errors.Is(err, game.ErrAlreadyRevealed):
		return msgAlreadyShown
	case errors.Is(err, game.ErrInvalidReplayChoice):
		return msgInvalidReplay
	}
	return err.Error()
}

func scoreLine(title string, sess *game.Session) string {
	return fmt.Sprintf("%s: %s - %d, %s - %d", title,
		game.Player1.Label(), sess.Score[game.Player1],
		game.Player2.Label(), sess.Score[game.Player2])
}

// prompt writes p and reads one line. ok is false once input is exhausted.
func (g *Game) prompt(p string) (line string, ok bool) {
	g.print(p)
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			log.Warn().Err(err).Msg("reading input")
		}
		g.println("")
		return "", false
	}
	return g.in.Text(), true
}

func (g *Game) print(s string) { _, _ = io.WriteString(g.out, s) }

func (g *Game) println(s string) { _, _ = io.WriteString(g.out, s+"\n") }

func (g *Game) printf(format string, a ...any) { _, _ = fmt.Fprintf(g.out, format, a...) }
