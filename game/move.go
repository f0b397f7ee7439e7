package game

// UnknownRow is the placeholder row for drop games, where gravity decides
// the landing row. Apply resolves it to the real row.
const UnknownRow = -1

// Move is an immutable (row, col) pair.
type Move struct {
	Row int
	Col int
}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

// Drop builds a column-only move for gravity games.
func Drop(col int) Move {
	return Move{Row: UnknownRow, Col: col}
}
