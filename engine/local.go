package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/searcher"
)

var ErrTooManyTurns = errors.New("game exceeded the turn limit")

// Engine plays a local match: Agent moves for the human, the selector's
// searcher for the machine.
type Engine struct {
	ID       uuid.UUID
	State    *game.GameState
	Agent    Agent
	Selector *Selector
	logger   zerolog.Logger
}

func LocalEngine(first game.Player, level int, agent Agent, selector *Selector, logger zerolog.Logger) (*Engine, error) {
	if agent == nil || selector == nil {
		return nil, fmt.Errorf("%w: agent and selector are required", game.ErrIllegalArgument)
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	state, err := selector.NewGame(first)
	if err != nil {
		return nil, err
	}
	state, err = selector.SetSearchDepth(state, level)
	if err != nil {
		return nil, err
	}

	return &Engine{
		ID:       id,
		State:    state,
		Agent:    agent,
		Selector: selector,
		logger:   logger.With().Str("game", id.String()).Logger(),
	}, nil
}

// Run executes the game loop until neither player can move.
func (e *Engine) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:          e.ID.String(),
		FirstPlayer: e.State.First().String(),
		Level:       e.State.Depth(),
		StartTime:   time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	e.logger.Info().Msgf("%v is starting", e.State.First())

	for step := 1; !e.State.IsTerminal(); step++ {
		if step > meta.MAX_TURNS {
			return gameMetric, moveMetrics, ErrTooManyTurns
		}

		mover := e.State.Next()
		legal := e.State.LegalMoves(mover)
		start := time.Now()
		next, search, err := e.play(ctx, mover)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("step %d: %w", step, err)
		}

		square, _ := placed(e.State, next)
		passed := next.Next() == mover && !next.IsTerminal()
		if passed {
			gameMetric.Passes++
			e.logger.Debug().Msgf("%v has to miss a turn", mover.Enemy())
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			Row:          square.Row + 1,
			Col:          square.Col + 1,
			MoveIndex:    slices.Index(legal, square),
			LegalMoves:   len(legal),
			Duration:     time.Since(start),
			Nodes:        search.Nodes,
			Leaves:       search.Leaves,
			HumanDiscs:   next.Count(game.Human),
			MachineDiscs: next.Count(game.Machine),
		})

		e.State = next
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.HumanDiscs = e.State.Count(game.Human)
	gameMetric.MachineDiscs = e.State.Count(game.Machine)
	gameMetric.Winner = metrics.Tie
	if winner, ok := e.State.Winner(); ok {
		gameMetric.Winner = winner.String()
	}

	e.logger.Info().
		Str("winner", gameMetric.Winner).
		Int("human", gameMetric.HumanDiscs).
		Int("machine", gameMetric.MachineDiscs).
		Msg("game over")
	return gameMetric, moveMetrics, nil
}

func (e *Engine) play(ctx context.Context, mover game.Player) (*game.GameState, searcher.SearchMetric, error) {
	if mover == game.Machine {
		return e.Selector.MachineMove(ctx, e.State)
	}

	move, err := e.Agent.FindMove(ctx, e.State)
	if err != nil {
		return nil, searcher.SearchMetric{}, err
	}
	next, ok, err := e.Selector.HumanMove(e.State, move.Row+1, move.Col+1)
	if err != nil {
		return nil, searcher.SearchMetric{}, err
	}
	if !ok {
		return nil, searcher.SearchMetric{}, fmt.Errorf("%w: agent chose non-capturing square %+v", game.ErrIllegalMove, move)
	}
	return next, searcher.SearchMetric{}, nil
}

// placed returns the square that is empty in before and occupied in after.
func placed(before, after *game.GameState) (game.Square, bool) {
	for i := 0; i < game.Size; i++ {
		for j := 0; j < game.Size; j++ {
			_, was, _ := before.Occupant(i, j)
			_, is, _ := after.Occupant(i, j)
			if !was && is {
				return game.Square{Row: i, Col: j}, true
			}
		}
	}
	return game.Square{}, false
}
