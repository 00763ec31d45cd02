package experiments

import (
	"context"

	"reversi/experiments/metrics"
	"reversi/meta"
)

// RunLevelSweep plays every level from 1 to maxLevel against opponent, which
// records search tree sizes and durations per level.
func RunLevelSweep(ctx context.Context, outDir, opponent string, maxLevel, numGames int, seed uint64) (Result, error) {
	maxLevel = min(max(maxLevel, meta.MIN_LEVEL), meta.MAX_LEVEL)

	configs := []metrics.AgentConfig{}
	for level := meta.MIN_LEVEL; level <= maxLevel; level++ {
		configs = append(configs, metrics.AgentConfig{
			ID:       level,
			Level:    level,
			Opponent: opponent,
			Seed:     seed,
		})
	}

	return Run(ctx, Experiment{
		Name:     "level_sweep",
		NumGames: numGames,
		OutDir:   outDir,
		Configs:  configs,
	})
}
