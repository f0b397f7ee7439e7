package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the knobs of the demo driver. Values come from defaults,
// an optional duel.yaml in the working directory, and DUEL_* environment
// variables, in increasing precedence.
type Config struct {
	TicTacToeDepth   int    `mapstructure:"tictactoe-depth"`
	ConnectFourDepth int    `mapstructure:"connect4-depth"`
	LogLevel         string `mapstructure:"log-level"`
	Seed             uint64 `mapstructure:"seed"`
	DemoGames        int    `mapstructure:"demo-games"`
	Experiments      bool   `mapstructure:"experiments"`
}

func Load() (*Config, error) {
	v := viper.New()

	// The 3x3 tree is small enough to solve near-exhaustively; the drop
	// game relies on the heuristic between terminal lookaheads.
	v.SetDefault("tictactoe-depth", 9)
	v.SetDefault("connect4-depth", 6)
	v.SetDefault("log-level", "info")
	v.SetDefault("seed", 1)
	v.SetDefault("demo-games", 1)
	v.SetDefault("experiments", false)

	v.SetEnvPrefix("duel")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("duel")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
