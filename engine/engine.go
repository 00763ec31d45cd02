package engine

import (
	"context"

	"reversi/experiments/metrics"
)

type Runner interface {
	// Run plays a game till it is over or a max number of turns is reached
	Run(ctx context.Context) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

var _ Runner = (*Engine)(nil)
