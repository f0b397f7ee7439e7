package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTicTacToeInitialState(t *testing.T) {
	g := NewTicTacToe()

	for r := 0; r < TicTacToeSize; r++ {
		for c := 0; c < TicTacToeSize; c++ {
			require.Equal(t, None, g.Cell(r, c), "all cells should start empty")
		}
	}
	require.Equal(t, Human, g.CurrentPlayer(), "human moves first")
	require.False(t, g.IsTerminal())
	require.Equal(t, None, g.Winner())
}

func TestTicTacToeApply(t *testing.T) {
	t.Run("valid move places mark and flips mover", func(t *testing.T) {
		g := NewTicTacToe()

		resolved, err := g.Apply(NewMove(0, 0), Human)
		require.NoError(t, err)
		require.Equal(t, NewMove(0, 0), resolved)
		require.Equal(t, Human, g.Cell(0, 0))
		require.Equal(t, AI, g.CurrentPlayer())

		resolved, err = g.Apply(NewMove(1, 1), AI)
		require.NoError(t, err)
		require.Equal(t, NewMove(1, 1), resolved)
		require.Equal(t, AI, g.Cell(1, 1))
		require.Equal(t, Human, g.CurrentPlayer())
	})

	t.Run("occupied cell fails without mutating", func(t *testing.T) {
		g := NewTicTacToe()
		_, err := g.Apply(NewMove(0, 0), Human)
		require.NoError(t, err)
		before := g.String()

		_, err = g.Apply(NewMove(0, 0), AI)
		require.ErrorIs(t, err, ErrInvalidMove)
		require.Equal(t, before, g.String(), "failed apply must not change the board")
		require.Equal(t, AI, g.CurrentPlayer(), "failed apply must not flip the mover")
	})

	t.Run("out of range cell fails", func(t *testing.T) {
		g := NewTicTacToe()
		for _, move := range []Move{NewMove(-1, 0), NewMove(0, -1), NewMove(3, 0), NewMove(0, 3)} {
			_, err := g.Apply(move, Human)
			require.ErrorIs(t, err, ErrInvalidMove)
		}
	})

	t.Run("None cannot move", func(t *testing.T) {
		g := NewTicTacToe()
		_, err := g.Apply(NewMove(0, 0), None)
		require.ErrorIs(t, err, ErrInvalidMove)
	})
}

func TestTicTacToeUndo(t *testing.T) {
	t.Run("apply then undo restores board and mover for every legal move", func(t *testing.T) {
		g := NewTicTacToe()
		_, err := g.Apply(NewMove(1, 1), Human)
		require.NoError(t, err)

		before := g.String()
		mover := g.CurrentPlayer()
		for _, move := range g.LegalMoves() {
			resolved, err := g.Apply(move, mover)
			require.NoError(t, err)
			require.NoError(t, g.Undo(resolved))
			require.Equal(t, before, g.String())
			require.Equal(t, mover, g.CurrentPlayer())
		}
	})

	t.Run("undo of a non-last move fails", func(t *testing.T) {
		g := NewTicTacToe()
		first, err := g.Apply(NewMove(0, 0), Human)
		require.NoError(t, err)
		_, err = g.Apply(NewMove(1, 1), AI)
		require.NoError(t, err)

		require.ErrorIs(t, g.Undo(first), ErrHistoryMismatch)
	})

	t.Run("undo on a fresh board fails", func(t *testing.T) {
		g := NewTicTacToe()
		require.ErrorIs(t, g.Undo(NewMove(0, 0)), ErrHistoryMismatch)
	})
}

func TestTicTacToeWinner(t *testing.T) {
	apply := func(t *testing.T, g *TicTacToe, moves []Move, player Player) {
		t.Helper()
		for _, move := range moves {
			_, err := g.Apply(move, player)
			require.NoError(t, err)
		}
	}

	t.Run("human completes the top row", func(t *testing.T) {
		g := NewTicTacToe()
		// Human claims row 0 while the AI marks elsewhere and never blocks
		_, err := g.Apply(NewMove(0, 0), Human)
		require.NoError(t, err)
		_, err = g.Apply(NewMove(1, 0), AI)
		require.NoError(t, err)
		_, err = g.Apply(NewMove(0, 1), Human)
		require.NoError(t, err)
		_, err = g.Apply(NewMove(1, 1), AI)
		require.NoError(t, err)
		_, err = g.Apply(NewMove(0, 2), Human)
		require.NoError(t, err)

		require.Equal(t, Human, g.Winner())
		require.True(t, g.IsTerminal())
	})

	t.Run("column win", func(t *testing.T) {
		g := NewTicTacToe()
		apply(t, g, []Move{NewMove(0, 2), NewMove(1, 2), NewMove(2, 2)}, AI)
		require.Equal(t, AI, g.Winner())
	})

	t.Run("main diagonal win", func(t *testing.T) {
		g := NewTicTacToe()
		apply(t, g, []Move{NewMove(0, 0), NewMove(1, 1), NewMove(2, 2)}, AI)
		require.Equal(t, AI, g.Winner())
	})

	t.Run("anti diagonal win", func(t *testing.T) {
		g := NewTicTacToe()
		apply(t, g, []Move{NewMove(0, 2), NewMove(1, 1), NewMove(2, 0)}, Human)
		require.Equal(t, Human, g.Winner())
	})

	t.Run("draw has no winner and no moves", func(t *testing.T) {
		g := drawTicTacToe(t)
		require.Equal(t, None, g.Winner())
		require.Empty(t, g.LegalMoves())
		require.True(t, g.IsTerminal())
	})
}

// drawTicTacToe fills the board with a known drawn position:
//
//	X O X
//	X O O
//	O X X
func drawTicTacToe(t *testing.T) *TicTacToe {
	t.Helper()
	g := NewTicTacToe()
	cells := [TicTacToeSize][TicTacToeSize]Player{
		{Human, AI, Human},
		{Human, AI, AI},
		{AI, Human, Human},
	}
	for r := 0; r < TicTacToeSize; r++ {
		for c := 0; c < TicTacToeSize; c++ {
			_, err := g.Apply(NewMove(r, c), cells[r][c])
			require.NoError(t, err)
		}
	}
	return g
}

func TestTicTacToeLegalMovesOrder(t *testing.T) {
	g := NewTicTacToe()
	_, err := g.Apply(NewMove(0, 1), Human)
	require.NoError(t, err)
	_, err = g.Apply(NewMove(2, 2), AI)
	require.NoError(t, err)

	want := []Move{
		NewMove(0, 0), NewMove(0, 2),
		NewMove(1, 0), NewMove(1, 1), NewMove(1, 2),
		NewMove(2, 0), NewMove(2, 1),
	}
	require.Equal(t, want, g.LegalMoves(), "enumeration must be a row-major scan")
}

func TestTicTacToeEvaluate(t *testing.T) {
	g := NewTicTacToe()
	require.Equal(t, 0, g.Evaluate(), "ongoing position is neutral")

	for _, move := range []Move{NewMove(0, 0), NewMove(0, 1), NewMove(0, 2)} {
		_, err := g.Apply(move, AI)
		require.NoError(t, err)
	}
	require.Equal(t, 10, g.Evaluate(), "AI win")

	g = NewTicTacToe()
	for _, move := range []Move{NewMove(2, 0), NewMove(2, 1), NewMove(2, 2)} {
		_, err := g.Apply(move, Human)
		require.NoError(t, err)
	}
	require.Equal(t, -10, g.Evaluate(), "human win")

	require.Equal(t, 0, drawTicTacToe(t).Evaluate(), "draw is neutral")
}

func TestTicTacToeClone(t *testing.T) {
	g := NewTicTacToe()
	move, err := g.Apply(NewMove(1, 1), Human)
	require.NoError(t, err)

	clone := g.Clone().(*TicTacToe)
	require.Equal(t, g.String(), clone.String())
	require.Equal(t, g.CurrentPlayer(), clone.CurrentPlayer())

	_, err = clone.Apply(NewMove(0, 0), AI)
	require.NoError(t, err)
	require.Equal(t, None, g.Cell(0, 0), "clone mutation must not reach the original")

	// Histories are independent too: the original can still undo its move
	require.NoError(t, g.Undo(move))
	require.Equal(t, Human, clone.Cell(1, 1))
}

func TestTicTacToeSetCurrentPlayer(t *testing.T) {
	g := NewTicTacToe()
	g.SetCurrentPlayer(AI)
	require.Equal(t, AI, g.CurrentPlayer())
}
