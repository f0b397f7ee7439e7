package game

import (
	"fmt"
	"strings"
)

// TicTacToeSize is the board edge length.
const TicTacToeSize = 3

// TicTacToe is the 3x3 line game. It satisfies State; the human moves first.
type TicTacToe struct {
	board   [TicTacToeSize][TicTacToeSize]Player
	current Player
	history []Move
}

func NewTicTacToe() *TicTacToe {
	return &TicTacToe{current: Human}
}

func (t *TicTacToe) Apply(move Move, player Player) (Move, error) {
	if player == None {
		return Move{}, fmt.Errorf("%w: None cannot move", ErrInvalidMove)
	}
	if !t.inBounds(move) {
		return Move{}, fmt.Errorf("%w: cell (%d,%d) out of range", ErrInvalidMove, move.Row, move.Col)
	}
	if t.board[move.Row][move.Col] != None {
		return Move{}, fmt.Errorf("%w: cell (%d,%d) occupied", ErrInvalidMove, move.Row, move.Col)
	}

	t.board[move.Row][move.Col] = player
	t.history = append(t.history, move)
	t.current = player.Opponent()
	return move, nil
}

func (t *TicTacToe) Undo(move Move) error {
	if len(t.history) == 0 || t.history[len(t.history)-1] != move {
		return fmt.Errorf("%w: (%d,%d)", ErrHistoryMismatch, move.Row, move.Col)
	}

	t.board[move.Row][move.Col] = None
	t.history = t.history[:len(t.history)-1]
	t.current = t.current.Opponent()
	return nil
}

func (t *TicTacToe) IsTerminal() bool {
	return t.Winner() != None || len(t.LegalMoves()) == 0
}

// Winner checks all rows, columns and both diagonals for three identical
// non-empty marks.
func (t *TicTacToe) Winner() Player {
	b := &t.board

	for i := 0; i < TicTacToeSize; i++ {
		if b[i][0] != None && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return b[i][0]
		}
		if b[0][i] != None && b[0][i] == b[1][i] && b[1][i] == b[2][i] {
			return b[0][i]
		}
	}

	if b[1][1] != None {
		if b[0][0] == b[1][1] && b[1][1] == b[2][2] {
			return b[1][1]
		}
		if b[0][2] == b[1][1] && b[1][1] == b[2][0] {
			return b[1][1]
		}
	}

	return None
}

// LegalMoves enumerates empty cells in row-major order.
func (t *TicTacToe) LegalMoves() []Move {
	moves := make([]Move, 0, TicTacToeSize*TicTacToeSize)
	for r := 0; r < TicTacToeSize; r++ {
		for c := 0; c < TicTacToeSize; c++ {
			if t.board[r][c] == None {
				moves = append(moves, NewMove(r, c))
			}
		}
	}
	return moves
}

// Evaluate returns +10 for an AI win, -10 for a human win and 0 otherwise.
// The full game tree is shallow enough that exact terminal values dominate;
// no heuristic is needed for ongoing positions.
func (t *TicTacToe) Evaluate() int {
	switch t.Winner() {
	case AI:
		return 10
	case Human:
		return -10
	default:
		return 0
	}
}

func (t *TicTacToe) Clone() State {
	clone := &TicTacToe{
		board:   t.board,
		current: t.current,
		history: make([]Move, len(t.history)),
	}
	copy(clone.history, t.history)
	return clone
}

func (t *TicTacToe) CurrentPlayer() Player {
	return t.current
}

func (t *TicTacToe) SetCurrentPlayer(player Player) {
	t.current = player
}

// Cell returns the owner of (row, col). Out-of-range coordinates panic.
func (t *TicTacToe) Cell(row, col int) Player {
	if !t.inBounds(NewMove(row, col)) {
		panic(fmt.Sprintf("cell (%d,%d) out of range", row, col))
	}
	return t.board[row][col]
}

func (t *TicTacToe) inBounds(move Move) bool {
	return move.Row >= 0 && move.Row < TicTacToeSize &&
		move.Col >= 0 && move.Col < TicTacToeSize
}

func (t *TicTacToe) String() string {
	var sb strings.Builder
	for r := 0; r < TicTacToeSize; r++ {
		for c := 0; c < TicTacToeSize; c++ {
			sb.WriteString(mark(t.board[r][c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func mark(p Player) string {
	switch p {
	case Human:
		return "X"
	case AI:
		return "O"
	default:
		return "."
	}
}
