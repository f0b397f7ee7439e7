package game

import (
	"fmt"
	"strings"
)

const (
	ConnectFourRows = 6
	ConnectFourCols = 7
	// WinLength is the number of aligned pieces that wins.
	WinLength = 4

	// connectFourWin is the terminal-exact evaluation magnitude. It must
	// dwarf any heuristic sum so search never trades a win for threats.
	connectFourWin = 1000000

	centerColumnBonus = 5
)

// ConnectFour is the 6x7 gravity-drop game. Moves name a column; the piece
// falls to the lowest empty row. The human moves first.
type ConnectFour struct {
	board   [ConnectFourRows][ConnectFourCols]Player
	current Player
	history []Move
}

func NewConnectFour() *ConnectFour {
	return &ConnectFour{current: Human}
}

// Apply ignores any caller-supplied row: gravity resolves the landing row.
// The returned move carries the resolved row and is the move to Undo later.
func (c *ConnectFour) Apply(move Move, player Player) (Move, error) {
	if player == None {
		return Move{}, fmt.Errorf("%w: None cannot move", ErrInvalidMove)
	}
	if move.Col < 0 || move.Col >= ConnectFourCols {
		return Move{}, fmt.Errorf("%w: column %d out of range", ErrInvalidMove, move.Col)
	}

	row := c.nextOpenRow(move.Col)
	if row < 0 {
		return Move{}, fmt.Errorf("%w: column %d is full", ErrInvalidMove, move.Col)
	}

	resolved := NewMove(row, move.Col)
	c.board[row][move.Col] = player
	c.history = append(c.history, resolved)
	c.current = player.Opponent()
	return resolved, nil
}

func (c *ConnectFour) Undo(move Move) error {
	if len(c.history) == 0 || c.history[len(c.history)-1] != move {
		return fmt.Errorf("%w: (%d,%d)", ErrHistoryMismatch, move.Row, move.Col)
	}

	c.board[move.Row][move.Col] = None
	c.history = c.history[:len(c.history)-1]
	c.current = c.current.Opponent()
	return nil
}

// nextOpenRow scans the column bottom-up for the lowest empty row, or -1
// when the column is full.
func (c *ConnectFour) nextOpenRow(col int) int {
	for r := ConnectFourRows - 1; r >= 0; r-- {
		if c.board[r][col] == None {
			return r
		}
	}
	return -1
}

func (c *ConnectFour) IsTerminal() bool {
	return c.Winner() != None || len(c.LegalMoves()) == 0
}

func (c *ConnectFour) Winner() Player {
	if c.hasWin(Human) {
		return Human
	}
	if c.hasWin(AI) {
		return AI
	}
	return None
}

// hasWin scans every cell owned by player and checks the four line
// directions starting there, bounds-checked so windows stay on the board.
func (c *ConnectFour) hasWin(player Player) bool {
	for r := 0; r < ConnectFourRows; r++ {
		for col := 0; col < ConnectFourCols; col++ {
			if c.board[r][col] != player {
				continue
			}
			if c.lineFrom(r, col, 0, 1, player) || // horizontal
				c.lineFrom(r, col, 1, 0, player) || // vertical
				c.lineFrom(r, col, 1, 1, player) || // down-right
				c.lineFrom(r, col, -1, 1, player) { // up-right
				return true
			}
		}
	}
	return false
}

func (c *ConnectFour) lineFrom(row, col, dr, dc int, player Player) bool {
	endRow := row + (WinLength-1)*dr
	endCol := col + (WinLength-1)*dc
	if endRow < 0 || endRow >= ConnectFourRows || endCol < 0 || endCol >= ConnectFourCols {
		return false
	}
	for i := 0; i < WinLength; i++ {
		if c.board[row+i*dr][col+i*dc] != player {
			return false
		}
	}
	return true
}

// LegalMoves enumerates non-full columns left to right. The row is
// UnknownRow: gravity decides it at Apply time.
func (c *ConnectFour) LegalMoves() []Move {
	moves := make([]Move, 0, ConnectFourCols)
	for col := 0; col < ConnectFourCols; col++ {
		if c.board[0][col] == None {
			moves = append(moves, Drop(col))
		}
	}
	return moves
}

// Evaluate scores the position for the AI. Terminal positions are exact
// (+-connectFourWin); otherwise every 4-length window is scored per player
// and the human's total is subtracted from the AI's, plus a center-column
// control bonus.
func (c *ConnectFour) Evaluate() int {
	switch c.Winner() {
	case AI:
		return connectFourWin
	case Human:
		return -connectFourWin
	}
	return c.boardValue(AI) - c.boardValue(Human)
}

func (c *ConnectFour) boardValue(player Player) int {
	score := 0

	// Horizontal windows
	for r := 0; r < ConnectFourRows; r++ {
		for col := 0; col <= ConnectFourCols-WinLength; col++ {
			score += c.scoreWindow(r, col, 0, 1, player)
		}
	}
	// Vertical windows
	for r := 0; r <= ConnectFourRows-WinLength; r++ {
		for col := 0; col < ConnectFourCols; col++ {
			score += c.scoreWindow(r, col, 1, 0, player)
		}
	}
	// Down-right diagonals
	for r := 0; r <= ConnectFourRows-WinLength; r++ {
		for col := 0; col <= ConnectFourCols-WinLength; col++ {
			score += c.scoreWindow(r, col, 1, 1, player)
		}
	}
	// Up-right diagonals
	for r := WinLength - 1; r < ConnectFourRows; r++ {
		for col := 0; col <= ConnectFourCols-WinLength; col++ {
			score += c.scoreWindow(r, col, -1, 1, player)
		}
	}

	score += c.centerControl(player)
	return score
}

// scoreWindow rates one 4-cell window for player. Any opponent piece makes
// the window worthless; otherwise more own pieces with room to complete
// score higher.
func (c *ConnectFour) scoreWindow(row, col, dr, dc int, player Player) int {
	own, empty := 0, 0
	for i := 0; i < WinLength; i++ {
		switch c.board[row+i*dr][col+i*dc] {
		case player:
			own++
		case None:
			empty++
		default:
			return 0
		}
	}

	switch {
	case own == 3 && empty == 1:
		return 100
	case own == 2 && empty == 2:
		return 10
	case own == 1 && empty == 3:
		return 1
	}
	return 0
}

// centerControl awards centerColumnBonus per piece in the middle column.
// Central pieces participate in the most potential windows.
func (c *ConnectFour) centerControl(player Player) int {
	center := ConnectFourCols / 2
	count := 0
	for r := 0; r < ConnectFourRows; r++ {
		if c.board[r][center] == player {
			count++
		}
	}
	return count * centerColumnBonus
}

func (c *ConnectFour) Clone() State {
	clone := &ConnectFour{
		board:   c.board,
		current: c.current,
		history: make([]Move, len(c.history)),
	}
	copy(clone.history, c.history)
	return clone
}

func (c *ConnectFour) CurrentPlayer() Player {
	return c.current
}

func (c *ConnectFour) SetCurrentPlayer(player Player) {
	c.current = player
}

// Cell returns the owner of (row, col). Out-of-range coordinates panic.
func (c *ConnectFour) Cell(row, col int) Player {
	if row < 0 || row >= ConnectFourRows || col < 0 || col >= ConnectFourCols {
		panic(fmt.Sprintf("cell (%d,%d) out of range", row, col))
	}
	return c.board[row][col]
}

func (c *ConnectFour) String() string {
	var sb strings.Builder
	for r := 0; r < ConnectFourRows; r++ {
		for col := 0; col < ConnectFourCols; col++ {
			sb.WriteString(mark(c.board[r][col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
