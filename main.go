package main

import (
	"fmt"
	"os"
	"strings"

	"duel/config"
	"duel/engine"
	"duel/experiments"
	"duel/game"
	"duel/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("unknown log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if cfg.Experiments {
		experiments.RunDepthToStrength()
		return
	}

	for i := 0; i < cfg.DemoGames; i++ {
		seed := cfg.Seed + uint64(i)
		runDemo("tic-tac-toe: random (X) vs minimax (O)", game.NewTicTacToe(),
			engine.NewRandomAgent(seed), cfg.TicTacToeDepth)
		runDemo("connect four: random (X) vs minimax (O)", game.NewConnectFour(),
			engine.NewRandomAgent(seed), cfg.ConnectFourDepth)
	}

	runDemo("tic-tac-toe: minimax (X) vs minimax (O)", game.NewTicTacToe(),
		engine.NewSearchAgent(game.Human, cfg.TicTacToeDepth, searcher.WithMetrics()), cfg.TicTacToeDepth)
	runDemo("connect four: minimax (X) vs minimax (O)", game.NewConnectFour(),
		engine.NewSearchAgent(game.Human, cfg.ConnectFourDepth, searcher.WithMetrics()), cfg.ConnectFourDepth)
}

// runDemo plays one game of the given X agent (moving first) against the
// search player (O) and prints the final board.
func runDemo(name string, state game.State, human engine.Agent, depth int) {
	fmt.Printf("%s, depth %d\n", name, depth)

	agents := map[game.Player]engine.Agent{
		game.Human: human,
		game.AI:    engine.NewSearchAgent(game.AI, depth, searcher.WithMetrics()),
	}
	winner, gameMetric, _ := engine.NewLocal(state, agents).Run()

	fmt.Print(render(state))
	fmt.Printf("winner: %s after %d moves in %s\n\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
}

func render(state game.State) string {
	var rows, cols int
	var cell func(r, c int) game.Player

	switch s := state.(type) {
	case *game.TicTacToe:
		rows, cols, cell = game.TicTacToeSize, game.TicTacToeSize, s.Cell
	case *game.ConnectFour:
		rows, cols, cell = game.ConnectFourRows, game.ConnectFourCols, s.Cell
	default:
		return ""
	}

	profile := termenv.ColorProfile()
	human := termenv.String(" X").Foreground(profile.Color("9")).String()
	ai := termenv.String(" O").Foreground(profile.Color("11")).String()

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			switch cell(r, c) {
			case game.Human:
				sb.WriteString(human)
			case game.AI:
				sb.WriteString(ai)
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
