package experiments

import (
	"duel/engine"
	"duel/experiments/metrics"
	"duel/game"
	"duel/searcher"

	"github.com/rs/zerolog/log"
)

// NumGames is how many games each matchup plays.
const NumGames = 20

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "minimax", Depth: 1},
	{ID: 2, Kind: "minimax", Depth: 2},
	{ID: 3, Kind: "minimax", Depth: 4},
	{ID: 4, Kind: "minimax", Depth: 6},
}

// RunDepthToStrength pits searchers of increasing depth against a random
// baseline on both games and records how depth buys playing strength.
func RunDepthToStrength() {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random"}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	configs := append([]metrics.AgentConfig{baseline}, depthConfigs...)
	runExperiment("depth_to_strength_tictactoe", "tictactoe", configs, matchUps)
	runExperiment("depth_to_strength_connect4", "connect4", configs, matchUps)
}

func runExperiment(name, kind string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			winner, gameMetric, moveMetrics := runGame(kind, config1, config2, uint64(count))
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Game:       kind,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			log.Info().Msgf("matchup %d game %d of %d won by %s", mi+1, i+1, NumGames, winner)
		}
	}

	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Error().Err(err).Msg("failed to create experiment writer")
		return
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		log.Error().Err(err).Msg("failed to write agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Error().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Error().Err(err).Msg("failed to write move records")
	}

	log.Info().Msgf("finished %s experiment", name)
}

// runGame plays one game with config1 moving first as the human side and
// config2 as the AI side.
func runGame(kind string, config1, config2 metrics.AgentConfig, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric) {
	state := newState(kind)
	agents := map[game.Player]engine.Agent{
		game.Human: newAgent(game.Human, config1, seed),
		game.AI:    newAgent(game.AI, config2, seed+1),
	}
	return engine.NewLocal(state, agents).Run()
}

func newState(kind string) game.State {
	state, err := game.NewState(kind)
	if err != nil {
		panic(err)
	}
	return state
}

func newAgent(player game.Player, config metrics.AgentConfig, seed uint64) engine.Agent {
	switch config.Kind {
	case "minimax":
		return engine.NewSearchAgent(player, config.Depth, searcher.WithMetrics())
	case "random":
		return engine.NewRandomAgent(seed)
	default:
		panic("unknown agent kind: " + config.Kind)
	}
}
