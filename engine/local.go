package engine

import (
	"time"

	"duel/experiments/metrics"
	"duel/game"
	"duel/utils"

	"github.com/rs/zerolog/log"
)

// Local runs a game between two agents on a single state machine. Agents
// are keyed by the player they move for.
type Local struct {
	State  game.State
	Agents map[game.Player]Agent
}

func NewLocal(state game.State, agents map[game.Player]Agent) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if agents[game.Human] == nil || agents[game.AI] == nil {
		panic("need one agent per mover")
	}
	return &Local{
		State:  state,
		Agents: agents,
	}
}

// Run alternates agents until the game is terminal or the move cap is hit.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.CurrentPlayer().String(),
		StartTime:      time.Now(),
	}

	log.Info().Str("player", gameMetric.StartingPlayer).Msg("game starting")

	var moveMetrics []metrics.MoveMetric
	step := 0
	for !e.State.IsTerminal() && step < MaxMoves {
		mover := e.State.CurrentPlayer()
		move, searchMetric, ok := e.Agents[mover].FindMove(e.State)
		if !ok {
			// No legal move: the position is terminal for the mover
			break
		}
		if utils.FindIndex(e.State.LegalMoves(), move) < 0 {
			log.Warn().Str("player", mover.String()).
				Int("row", move.Row).Int("col", move.Col).
				Msg("agent returned illegal move, aborting game")
			break
		}

		resolved, err := e.State.Apply(move, mover)
		if err != nil {
			log.Warn().Err(err).Str("player", mover.String()).Msg("apply failed, aborting game")
			break
		}

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Str("player", mover.String()).
			Int("row", resolved.Row).Int("col", resolved.Col).
			Int("nodes", searchMetric.Nodes).
			Msg("move applied")
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step

	log.Info().Str("winner", gameMetric.Winner).Int("moves", step).Msg("game over")

	return gameMetric.Winner, gameMetric, moveMetrics
}
