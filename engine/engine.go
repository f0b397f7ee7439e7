package engine

import "duel/experiments/metrics"

// MaxMoves caps a game loop. Both boards fill well before this; hitting the
// cap means a broken state machine rather than a long game.
const MaxMoves = 100

type Engine interface {
	// Run plays a game to a terminal state or the move cap and reports the
	// winner with per-game and per-move metrics.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
