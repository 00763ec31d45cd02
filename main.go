package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reversi/config"
	"reversi/console"
	"reversi/engine"
	"reversi/experiments"
	"reversi/game"
	"reversi/meta"
)

const usage = `usage: reversi [play|experiment|sweep] [flags]

  play        play against the machine in the terminal (default)
  experiment  run the configured experiment and store its records
  sweep       play every level against one opponent`

func main() {
	command := "play"
	args := os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch command {
	case "play":
		err = runPlay(ctx, args)
	case "experiment":
		err = runExperiment(ctx, args)
	case "sweep":
		err = runSweep(ctx, args)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", command)
	}
}

func loadConfig(fs *flag.FlagSet, args []string) (config.Config, error) {
	path := fs.String("config", "", "Path of a YAML config file")
	logLevel := fs.String("log", "", "Log level, overrides the config file")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return config.Config{}, err
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: log level %q", game.ErrIllegalArgument, cfg.LogLevel)
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return cfg, nil
}

func runPlay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	level := fs.Int("level", 0, "Search depth of the machine (1-5)")
	first := fs.String("first", "", "Player who starts: human or machine")
	noColor := fs.Bool("no-color", false, "Disable coloured output")
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}

	if *level != 0 {
		cfg.Level = *level
	}
	if *first != "" {
		cfg.First = *first
	}
	if *noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	selector := engine.NewSelector(engine.WithLogger(log.Logger))
	session := console.NewSession(selector, os.Stdout, cfg.Color, log.Logger)
	err = session.Run(ctx, os.Stdin, cfg.FirstPlayer(), cfg.Level)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func runExperiment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	numGames := fs.Int("games", 0, "Games per agent config, overrides the config file")
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}

	exp := cfg.Experiments()
	if *numGames > 0 {
		exp.NumGames = *numGames
	}
	result, err := experiments.Run(ctx, exp)
	if err != nil {
		return err
	}
	log.Info().Msgf("stored results in %s", result.Dir)
	return nil
}

func runSweep(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	maxLevel := fs.Int("max-level", meta.MAX_LEVEL, "Highest level to play")
	opponent := fs.String("opponent", experiments.OpponentRandom, "Opponent: random, greedy or mcts")
	numGames := fs.Int("games", meta.NUM_GAMES, "Games per level")
	seed := fs.Uint64("seed", 1, "Seed of the random opponent")
	outDir := fs.String("out", "", "Output directory, overrides the config file")
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}

	if *outDir == "" {
		*outDir = cfg.Experiment.OutDir
	}
	result, err := experiments.RunLevelSweep(ctx, *outDir, *opponent, *maxLevel, *numGames, *seed)
	if err != nil {
		return err
	}
	log.Info().Msgf("stored results in %s", result.Dir)
	return nil
}
