package engine

import (
	"fmt"

	"reversi/game"
)

// QueryCell reports whose disc is at the 1-indexed (row, col).
func QueryCell(state *game.GameState, row, col int) (game.Player, bool, error) {
	if !onGrid(row, col) {
		return 0, false, fmt.Errorf("%w: (%d, %d) is not on the grid", game.ErrIllegalArgument, row, col)
	}
	return state.Occupant(row-1, col-1)
}

func TileCount(state *game.GameState, p game.Player) int {
	return state.Count(p)
}

func IsTerminal(state *game.GameState) bool {
	return state.IsTerminal()
}

// Winner returns the player with more discs, false on a tie.
func Winner(state *game.GameState) (game.Player, bool) {
	return state.Winner()
}

func NextToMove(state *game.GameState) game.Player {
	return state.Next()
}

func FirstPlayer(state *game.GameState) game.Player {
	return state.First()
}

func Duplicate(state *game.GameState) *game.GameState {
	return state.Duplicate()
}
