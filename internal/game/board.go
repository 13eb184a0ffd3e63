package game

import "strings"

// Hidden is rendered in place of a face-down card.
const Hidden = "X"

// Size is the number of cells on the board.
func (b *Board) Size() int { return b.Rows * b.Cols }

// InBounds reports whether c addresses a cell of the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// CoordOf converts a flat row-major index to a coordinate.
// The index is not range-checked; use InBounds on the result.
func (b *Board) CoordOf(i int) Coord {
	if i < 0 {
		return Coord{Row: -1, Col: -1}
	}
	return Coord{Row: i / b.Cols, Col: i % b.Cols}
}

// Index converts a coordinate to its flat row-major index.
func (b *Board) Index(c Coord) int { return c.Row*b.Cols + c.Col }

// Card returns a copy of the card at c. It panics if c is out of bounds.
func (b *Board) Card(c Coord) Card { return b.cards[b.Index(c)] }

// Symbols lists every card's symbol in row-major order.
func (b *Board) Symbols() []string {
	out := make([]string, len(b.cards))
	for i, c := range b.cards {
		out[i] = c.Symbol
	}
	return out
}

func (b *Board) cell(c Coord) *Card { return &b.cards[b.Index(c)] }

// Render draws the board as one line per row, cells separated by a space.
// Visible cards show their symbol, the rest show Hidden.
func (b *Board) Render() string {
	var sb strings.Builder
	row := make([]string, b.Cols)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			card := b.cards[r*b.Cols+c]
			if card.Visible() {
				row[c] = card.Symbol
			} else {
				row[c] = Hidden
			}
		}
		sb.WriteString(strings.Join(row, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
