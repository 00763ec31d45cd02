package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/searcher"
)

const (
	OpponentRandom = "random"
	OpponentGreedy = "greedy"
	OpponentMCTS   = "mcts"
)

// Experiment plays NumGames games for every config, alternating the first
// player, and stores the records under OutDir/Name.
type Experiment struct {
	Name     string
	NumGames int
	OutDir   string
	Configs  []metrics.AgentConfig
}

type Result struct {
	Dir       string
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []metrics.Summary
}

func Run(ctx context.Context, exp Experiment) (Result, error) {
	if exp.NumGames <= 0 {
		return Result{}, fmt.Errorf("%w: experiment needs at least one game", game.ErrIllegalArgument)
	}

	start := time.Now()
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for ci, config := range exp.Configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(exp.Configs), config)

		for i := 0; i < exp.NumGames; i++ {
			first := game.Human
			if i%2 == 1 {
				first = game.Machine
			}

			gameMetric, moveMetrics, err := runGame(ctx, config, first, config.Seed+uint64(i))
			if err != nil {
				return Result{}, fmt.Errorf("config %d game %d: %w", config.ID, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				Number:     count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed config %d game %d of %d with winner: %s", config.ID, i+1, exp.NumGames, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	result := Result{Games: gameRecords, Moves: moveRecords}
	for _, config := range exp.Configs {
		summary := metrics.Summarize(config.ID, gameRecords)
		result.Summaries = append(result.Summaries, summary)
		log.Info().
			Int("agent", summary.Agent).
			Int("games", summary.Games).
			Int("machine_wins", summary.MachineWins).
			Int("human_wins", summary.HumanWins).
			Int("ties", summary.Ties).
			Msg("summary")
	}

	dir, err := store(exp, start, gameRecords, moveRecords)
	if err != nil {
		return Result{}, err
	}
	result.Dir = dir
	return result, nil
}

func store(exp Experiment, start time.Time, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(exp.OutDir, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	end := time.Now()
	err = writer.WriteSetup(metrics.Setup{
		Name:      exp.Name,
		Configs:   exp.Configs,
		NumGames:  exp.NumGames,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	})
	if err != nil {
		return "", err
	}
	log.Info().Msg("stored experiment setup")

	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays the machine at config.Level against the configured opponent.
func runGame(ctx context.Context, config metrics.AgentConfig, first game.Player, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agent, err := newAgent(config.Opponent, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	logger := log.Logger.Level(zerolog.WarnLevel)
	selector := engine.NewSelector(engine.WithLogger(logger))
	e, err := engine.LocalEngine(first, config.Level, agent, selector, logger)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	return e.Run(ctx)
}

func newAgent(opponent string, seed uint64) (engine.Agent, error) {
	switch opponent {
	case OpponentRandom, "":
		return engine.NewRandomAgent(seed), nil
	case OpponentGreedy:
		return engine.NewGreedyAgent(), nil
	case OpponentMCTS:
		return searcher.NewMCTS(searcher.WithEpisodes(meta.MCTS_EPISODES), searcher.WithSeed(seed)), nil
	default:
		return nil, fmt.Errorf("%w: unknown opponent %q", game.ErrIllegalArgument, opponent)
	}
}
