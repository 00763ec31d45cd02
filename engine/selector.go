package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"reversi/game"
	"reversi/searcher"
)

type Option func(s *Selector)

// Selector is the entry point for a presentation layer: it applies human
// moves, computes machine moves and configures the search level.
// Coordinates are 1-indexed.
type Selector struct {
	searcher searcher.Searcher
	logger   zerolog.Logger
}

func WithSearcher(s searcher.Searcher) Option {
	return func(sel *Selector) {
		if s != nil {
			sel.searcher = s
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(sel *Selector) {
		sel.logger = logger
	}
}

func NewSelector(options ...Option) *Selector {
	s := &Selector{logger: zerolog.Nop()}
	for _, option := range options {
		option(s)
	}
	if s.searcher == nil {
		s.searcher = searcher.NewMinimax(searcher.WithLogger(s.logger), searcher.WithMetrics())
	}
	return s
}

func (s *Selector) NewGame(first game.Player) (*game.GameState, error) {
	state, err := game.NewGame(first)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Stringer("first", first).Msg("new game")
	return state, nil
}

// HumanMove plays the human's disc at the 1-indexed (row, col). A move that
// captures nothing is rejected: ok is false and err is nil. Turn checks are
// left to GameState.Play.
func (s *Selector) HumanMove(state *game.GameState, row, col int) (next *game.GameState, ok bool, err error) {
	if !onGrid(row, col) {
		return nil, false, fmt.Errorf("%w: (%d, %d) is not on the grid", game.ErrIllegalArgument, row, col)
	}

	next, ok, err = state.Play(game.Human, row-1, col-1)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		s.logger.Debug().Int("row", row).Int("col", col).Msg("human move rejected")
		return nil, false, nil
	}
	return next, true, nil
}

// MachineMove runs the full search and returns the state after the machine's
// choice. Cancelling ctx aborts the search between top-level subtrees.
func (s *Selector) MachineMove(ctx context.Context, state *game.GameState) (*game.GameState, searcher.SearchMetric, error) {
	if state.Next() != game.Machine || state.IsTerminal() {
		return nil, searcher.SearchMetric{}, fmt.Errorf("%w: it is not the machine's turn", game.ErrIllegalMove)
	}
	return s.searcher.FindBestMove(ctx, state)
}

// Result is the outcome of a machine move computed in the background.
type Result struct {
	State  *game.GameState
	Metric searcher.SearchMetric
	Err    error
}

// StartMachineMove computes the machine move on its own goroutine. The
// channel receives exactly one result; cancel ctx to discard the computation.
func (s *Selector) StartMachineMove(ctx context.Context, state *game.GameState) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		next, metric, err := s.MachineMove(ctx, state)
		done <- Result{State: next, Metric: metric, Err: err}
	}()
	return done
}

// SetSearchDepth returns a copy of state searching level plies deep.
func (s *Selector) SetSearchDepth(state *game.GameState, level int) (*game.GameState, error) {
	return state.WithDepth(level)
}

func onGrid(row, col int) bool {
	return row >= 1 && col >= 1 && row <= game.Size && col <= game.Size
}
