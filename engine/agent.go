package engine

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"

	"reversi/game"
)

// Agent chooses moves for the human side of a local match. Squares are
// 0-indexed.
type Agent interface {
	FindMove(ctx context.Context, state *game.GameState) (game.Square, error)
}

type randomAgent struct {
	r *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal moves.
// Equal seeds give equal games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{r: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, state *game.GameState) (game.Square, error) {
	moves := state.LegalMoves(state.Next())
	if len(moves) == 0 {
		return game.Square{}, fmt.Errorf("%w: no legal move for %v", game.ErrIllegalMove, state.Next())
	}
	return moves[a.r.Intn(len(moves))], nil
}

type greedyAgent struct{}

// NewGreedyAgent returns an agent maximizing its disc count after the move,
// preferring the first move in row-major order on ties.
func NewGreedyAgent() Agent {
	return greedyAgent{}
}

func (greedyAgent) FindMove(ctx context.Context, state *game.GameState) (game.Square, error) {
	mover := state.Next()
	moves := state.LegalMoves(mover)
	if len(moves) == 0 {
		return game.Square{}, fmt.Errorf("%w: no legal move for %v", game.ErrIllegalMove, mover)
	}

	best := moves[0]
	maxDiscs := -1
	for _, move := range moves {
		if discs := state.Apply(mover, move).Count(mover); discs > maxDiscs {
			maxDiscs = discs
			best = move
		}
	}
	return best, nil
}

// AgentFunc adapts a function to the Agent interface.
type AgentFunc func(ctx context.Context, state *game.GameState) (game.Square, error)

func (f AgentFunc) FindMove(ctx context.Context, state *game.GameState) (game.Square, error) {
	return f(ctx, state)
}
