package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned by Apply when the move targets an occupied
	// cell, a full column, or coordinates outside the board. The state is
	// left unmodified.
	ErrInvalidMove = errors.New("invalid move")

	// ErrHistoryMismatch is returned by Undo when the move does not match
	// the most recently applied move. Undo is strictly LIFO.
	ErrHistoryMismatch = errors.New("undo does not match last applied move")
)

// State is the contract any game must satisfy to be searchable. The searcher
// package operates only through this interface, never against a concrete
// board shape.
type State interface {
	// Apply places player's mark per the move and flips the current player
	// to the opponent. It returns the resolved move actually applied: for
	// drop games gravity decides the landing row, and it is this resolved
	// move that must be passed to any later Undo. Fails with ErrInvalidMove
	// without mutating the state.
	Apply(move Move, player Player) (Move, error)

	// Undo reverts the most recently applied move and flips the current
	// player back. Calling it with any other move is a programming error
	// and fails with ErrHistoryMismatch.
	Undo(move Move) error

	// IsTerminal reports whether a winning line exists or no legal move
	// remains.
	IsTerminal() bool

	// Winner returns the player with a qualifying line, or None for both
	// "ongoing" and "draw".
	Winner() Player

	// LegalMoves returns all currently placeable moves in a deterministic
	// order: row-major for the line game, left-to-right columns for the
	// drop game. The order is the searcher's tie-break.
	LegalMoves() []Move

	// Evaluate scores the position from the AI player's perspective:
	// positive favors AI, negative favors the human. Terminal positions
	// evaluate to an exact large constant, not a heuristic estimate.
	Evaluate() int

	// Clone returns an independent deep copy sharing no mutable storage
	// with the receiver.
	Clone() State

	CurrentPlayer() Player

	// SetCurrentPlayer overrides whose turn it is. It exists so exploration
	// code can pin a hypothetical mover without applying a move.
	SetCurrentPlayer(Player)
}

// NewState builds a fresh state machine for kind, "tictactoe" or "connect4".
func NewState(kind string) (State, error) {
	switch kind {
	case "tictactoe":
		return NewTicTacToe(), nil
	case "connect4":
		return NewConnectFour(), nil
	}
	return nil, fmt.Errorf("unknown game kind %q", kind)
}
