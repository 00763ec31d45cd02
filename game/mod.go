package game

import (
	"errors"

	"reversi/meta"
)

const Size = meta.BOARD_SIZE

var (
	// ErrIllegalMove is returned when a player moves out of turn or the game is already over.
	ErrIllegalMove = errors.New("illegal move")
	// ErrIllegalArgument is returned for coordinates off the board and for invalid players or levels.
	ErrIllegalArgument = errors.New("illegal argument")
	// ErrIllegalState is returned when a search node has a mover that is neither player.
	ErrIllegalState = errors.New("illegal state")
)

// Square is a 0-indexed board coordinate.
type Square struct {
	Row int
	Col int
}

// Evaluates the game state to a score from the machine's point of view,
// higher is better for the machine.
type Evaluate func(*GameState) float64

func inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < Size && col < Size
}

// Offsets of the 8 compass directions, scanned in this order.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
