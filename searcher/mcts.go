package searcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"reversi/game"
	"reversi/meta"
)

type MCTSOption func(m *MCTS)

// MCTS plays whichever side is to move by running a fixed number of random
// playouts and choosing the most visited move. It serves as a sparring
// opponent for the minimax machine.
type MCTS struct {
	goroutines int
	episodes   int
	seed       uint64
}

func WithGoroutines(goroutines int) MCTSOption {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEpisodes(episodes int) MCTSOption {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithSeed seeds the playout policy. A single goroutine with the same seed
// replays the same search.
func WithSeed(seed uint64) MCTSOption {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func NewMCTS(options ...MCTSOption) *MCTS {
	m := &MCTS{ // Default values
		goroutines: 1,
		episodes:   meta.MCTS_EPISODES,
		seed:       1,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the 0-indexed square for the player to move in state.
func (m *MCTS) FindMove(ctx context.Context, state *game.GameState) (game.Square, error) {
	if state.IsTerminal() {
		return game.Square{}, fmt.Errorf("%w: game is over", game.ErrIllegalMove)
	}
	moves := state.LegalMoves(state.Next())
	if len(moves) == 1 {
		return moves[0], nil
	}

	root, err := m.search(ctx, state)
	if err != nil {
		return game.Square{}, err
	}
	move := root.mostVisited()
	log.Debug().Msgf("mcts chose (%d, %d) after %d episodes", move.Row+1, move.Col+1, root.value())
	return move, nil
}

func (m *MCTS) search(ctx context.Context, state *game.GameState) (*uctNode, error) {
	root := newUCTNode(nil, state.Next().Enemy(), state)

	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(r *rand.Rand) {
			defer wg.Done()

			for range task {
				if ctx.Err() != nil {
					return
				}
				simulate(root, state, r)
			}
		}(rand.New(rand.NewSource(m.seed + uint64(i))))
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("search canceled: %w", err)
	}
	return root, nil
}

func simulate(root *uctNode, state *game.GameState, r *rand.Rand) {
	leaf, leafState := selectThenExpand(root, state)
	winner, decided := rollout(leafState, r)
	for n := leaf; n != nil; {
		n = n.backup(winner, decided)
	}
}

func selectThenExpand(root *uctNode, state *game.GameState) (*uctNode, *game.GameState) {
	parent := root
	child, state, expanded := parent.selectOrExpand(state)
	for !expanded && child != parent {
		parent = child
		child, state, expanded = parent.selectOrExpand(state)
	}
	return child, state
}

// rollout plays uniformly random moves until the game is over.
func rollout(state *game.GameState, r *rand.Rand) (game.Player, bool) {
	for !state.IsTerminal() {
		mover := state.Next()
		moves := state.LegalMoves(mover)
		state = state.Apply(mover, moves[r.Intn(len(moves))])
	}
	return state.Winner()
}
