package searcher

import (
	"duel/experiments/metrics"
	"duel/game"
)

// Searcher picks the next move for a player on any game satisfying the
// State contract.
type Searcher interface {
	FindNextMove(state game.State, player game.Player) (game.Move, metrics.SearchMetric, bool)
}
