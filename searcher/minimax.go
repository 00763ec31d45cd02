package searcher

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"reversi/game"
)

type Option func(m *Minimax)

// Minimax expands every line of play to the state's search depth and
// back-propagates scores without pruning. It keeps no state between searches
// and may be used from several goroutines.
type Minimax struct {
	evaluate     game.Evaluate
	newCollector func() Collector
	logger       zerolog.Logger
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.newCollector = NewCollector
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Minimax) {
		m.logger = logger
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		evaluate:     game.EvaluateStandard,
		newCollector: NewDummyCollector,
		logger:       zerolog.Nop(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindBestMove returns the state reached by the machine's best move.
// Ties go to the earliest move in row-major order.
func (m *Minimax) FindBestMove(ctx context.Context, state *game.GameState) (*game.GameState, SearchMetric, error) {
	candidates, metric, err := m.Candidates(ctx, state)
	if err != nil {
		return nil, metric, err
	}

	choice := candidates[best(candidates)]
	m.logger.Debug().
		Int("row", choice.Move.Row).
		Int("col", choice.Move.Col).
		Float64("score", choice.Score).
		Msg("machine move chosen")
	return choice.State, metric, nil
}

// Candidates scores every machine move at the root, in row-major order.
// A machine to move without a legal move is refused, which also covers
// finished games.
// The context is checked between top-level subtrees, a cancelled search
// returns its error and no candidates.
func (m *Minimax) Candidates(ctx context.Context, state *game.GameState) ([]Candidate, SearchMetric, error) {
	if state.Next() != game.Machine || !state.HasLegalMove(game.Machine) {
		return nil, SearchMetric{}, fmt.Errorf("%w: machine may not move now", game.ErrIllegalMove)
	}

	collector := m.newCollector()
	collector.Start(state.Depth())

	root, err := m.search(ctx, state, collector)
	if err != nil {
		metric := collector.Complete(0)
		m.logger.Debug().Err(err).Int("nodes", metric.Nodes).Msg("search aborted")
		return nil, metric, err
	}

	candidates := make([]Candidate, len(root.children))
	for i, child := range root.children {
		candidates[i] = Candidate{
			Move:  child.move,
			State: child.state,
			Score: child.score,
		}
	}

	metric := collector.Complete(len(candidates))
	m.logger.Debug().
		Int("depth", state.Depth()).
		Int("nodes", metric.Nodes).
		Int("leaves", metric.Leaves).
		Dur("duration", metric.Duration).
		Msg("search completed")
	return candidates, metric, nil
}

// search builds and scores the tree rooted at state. The root itself is not
// scored since only its children are compared.
func (m *Minimax) search(ctx context.Context, state *game.GameState, collector Collector) (*node, error) {
	root := newNode(nil, game.Square{}, state)
	collector.AddNode()
	root.expand()

	for _, child := range root.children {
		if err := ctx.Err(); err != nil {
			collector.Cancel()
			return nil, fmt.Errorf("search canceled: %w", err)
		}
		grow(child, state.Depth()-1, collector)
	}

	for _, child := range root.children {
		if err := ctx.Err(); err != nil {
			collector.Cancel()
			return nil, fmt.Errorf("search canceled: %w", err)
		}
		if err := backup(child, m.evaluate); err != nil {
			return nil, err
		}
	}
	return root, nil
}
