package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
)

type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Level      int              `yaml:"level"`
	First      string           `yaml:"first"`
	Color      bool             `yaml:"color"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

type ExperimentConfig struct {
	Name     string                `yaml:"name"`
	NumGames int                   `yaml:"num_games"`
	OutDir   string                `yaml:"out_dir"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Level:    meta.DEFAULT_LEVEL,
		First:    game.Human.String(),
		Color:    true,
		Experiment: ExperimentConfig{
			Name:     "baseline",
			NumGames: meta.NUM_GAMES,
			OutDir:   "results",
			Agents: []metrics.AgentConfig{
				{ID: 1, Level: meta.DEFAULT_LEVEL, Opponent: experiments.OpponentRandom, Seed: 1},
				{ID: 2, Level: meta.DEFAULT_LEVEL, Opponent: experiments.OpponentGreedy, Seed: 1},
			},
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", game.ErrIllegalArgument, c.LogLevel)
	}
	if err := validLevel(c.Level); err != nil {
		return err
	}
	if _, err := game.ParsePlayer(c.First); err != nil {
		return err
	}
	for _, agent := range c.Experiment.Agents {
		if err := validLevel(agent.Level); err != nil {
			return fmt.Errorf("agent %d: %w", agent.ID, err)
		}
		switch agent.Opponent {
		case experiments.OpponentRandom, experiments.OpponentGreedy, experiments.OpponentMCTS:
		default:
			return fmt.Errorf("%w: agent %d has unknown opponent %q", game.ErrIllegalArgument, agent.ID, agent.Opponent)
		}
	}
	return nil
}

// FirstPlayer returns the parsed First field.
func (c Config) FirstPlayer() game.Player {
	p, err := game.ParsePlayer(c.First)
	if err != nil {
		return game.Human
	}
	return p
}

func (c Config) Experiments() experiments.Experiment {
	return experiments.Experiment{
		Name:     c.Experiment.Name,
		NumGames: c.Experiment.NumGames,
		OutDir:   c.Experiment.OutDir,
		Configs:  c.Experiment.Agents,
	}
}

func validLevel(level int) error {
	if level < meta.MIN_LEVEL || level > meta.MAX_LEVEL {
		return fmt.Errorf("%w: level must be between %d and %d, got %d",
			game.ErrIllegalArgument, meta.MIN_LEVEL, meta.MAX_LEVEL, level)
	}
	return nil
}
