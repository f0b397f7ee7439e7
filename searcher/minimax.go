package searcher

import (
	"fmt"
	"math"

	"duel/experiments/metrics"
	"duel/game"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax searcher with alpha-beta pruning. It is
// game-agnostic: it explores exclusively through clones of the state it is
// given and never mutates the caller's state.
type Minimax struct {
	depth   int
	metrics metrics.Collector
}

// WithMetrics records node counts, cut-offs and timing for every search.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 1 {
		panic("search depth must be at least 1")
	}
	m := &Minimax{
		depth:   depth,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) FindNextMove(state game.State, player game.Player) (game.Move, metrics.SearchMetric, bool) {
	m.metrics.Start(m.depth)
	move, ok := findBestMove(state, m.depth, player, m.metrics)
	return move, m.metrics.Complete(), ok
}

// FindBestMove returns the best move for maximizer searching to the given
// depth, or false when no legal move exists. Ties keep the first move in
// enumeration order, which makes the result deterministic.
func FindBestMove(state game.State, depth int, maximizer game.Player) (game.Move, bool) {
	return findBestMove(state, depth, maximizer, metrics.NewDummyCollector())
}

func findBestMove(state game.State, depth int, maximizer game.Player, collector metrics.Collector) (game.Move, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}

	bestValue := math.MinInt
	var bestMove game.Move
	for _, move := range moves {
		child := play(state, move, maximizer)
		value := search(child, depth-1, math.MinInt, math.MaxInt, maximizer.Opponent(), maximizer, collector)
		if value > bestValue {
			bestValue = value
			bestMove = move
		}
	}
	return bestMove, true
}

// evaluate scores a position from the maximizer's perspective. State
// evaluations favor the AI, so searches maximizing for the human negate.
func evaluate(state game.State, maximizer game.Player) int {
	value := state.Evaluate()
	if maximizer == game.Human {
		return -value
	}
	return value
}

// search scores a position. At depth 0 or a terminal position the state's
// own evaluation is the answer; otherwise the mover picks the extreme over
// all children, with alpha-beta cut-offs skipping subtrees that cannot
// change the decision. Pruning never changes the value of an unpruned node.
func search(state game.State, depth, alpha, beta int, mover, maximizer game.Player, collector metrics.Collector) int {
	collector.AddNode()

	if depth == 0 || state.IsTerminal() {
		return evaluate(state, maximizer)
	}

	if mover == maximizer {
		best := math.MinInt
		for _, move := range state.LegalMoves() {
			child := play(state, move, mover)
			value := search(child, depth-1, alpha, beta, mover.Opponent(), maximizer, collector)
			best = max(best, value)
			alpha = max(alpha, value)
			if beta <= alpha { // Beta cut-off
				collector.AddCutoff()
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range state.LegalMoves() {
		child := play(state, move, mover)
		value := search(child, depth-1, alpha, beta, mover.Opponent(), maximizer, collector)
		best = min(best, value)
		beta = min(beta, value)
		if beta <= alpha { // Alpha cut-off
			collector.AddCutoff()
			break
		}
	}
	return best
}

// play clones state and applies a move the state itself enumerated. The
// clone owns its board: sibling branches never share mutable storage.
func play(state game.State, move game.Move, mover game.Player) game.State {
	child := state.Clone()
	if _, err := child.Apply(move, mover); err != nil {
		// LegalMoves produced the move, so the state machine is broken.
		panic(fmt.Sprintf("apply legal move (%d,%d): %v", move.Row, move.Col, err))
	}
	return child
}
