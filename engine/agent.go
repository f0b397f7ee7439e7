package engine

import (
	"duel/experiments/metrics"
	"duel/game"
	"duel/searcher"

	"golang.org/x/exp/rand"
)

// Agent decides a move for the state's current player. ok is false when no
// legal move exists.
type Agent interface {
	FindMove(state game.State) (move game.Move, metric metrics.SearchMetric, ok bool)
}

// SearchAgent plays the move a minimax search picks for its player.
type SearchAgent struct {
	player game.Player
	search *searcher.Minimax
}

func NewSearchAgent(player game.Player, depth int, options ...searcher.Option) *SearchAgent {
	return &SearchAgent{
		player: player,
		search: searcher.NewMinimax(depth, options...),
	}
}

func (a *SearchAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, bool) {
	return a.search.FindNextMove(state, a.player)
}

// RandomAgent plays a uniformly random legal move. It is the baseline
// opponent in experiments.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, false
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, true
}
