package searcher

import (
	"context"

	"reversi/game"
)

// Searcher picks the machine's move for a state.
type Searcher interface {
	FindBestMove(ctx context.Context, state *game.GameState) (*game.GameState, SearchMetric, error)
}

// Candidate is one move available at the root together with its minimax score.
type Candidate struct {
	Move  game.Square
	State *game.GameState
	Score float64
}

// best returns the index of the first candidate with the strictly greatest score.
func best(candidates []Candidate) int {
	if len(candidates) == 0 {
		panic("no candidates")
	}

	bestIndex := 0
	maxScore := candidates[0].Score
	for i, c := range candidates[1:] {
		if c.Score > maxScore {
			maxScore = c.Score
			bestIndex = i + 1
		}
	}
	return bestIndex
}
