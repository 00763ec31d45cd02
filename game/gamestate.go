package game

import (
	"fmt"
	"strings"

	"reversi/meta"
)

// GameState is an immutable snapshot of a game: operations on GameState always
// return a new copy.
type GameState struct {
	board [Size][Size]Cell
	next  Player // Player to move
	first Player // Player who started this game
	depth int    // Ply limit of the machine's search
}

// NewGame returns the standard start layout with first to move.
func NewGame(first Player) (*GameState, error) {
	if !first.Valid() {
		return nil, fmt.Errorf("%w: not existing player %v", ErrIllegalArgument, first)
	}
	gs := &GameState{
		next:  first,
		first: first,
		depth: meta.DEFAULT_LEVEL,
	}
	half := Size / 2
	gs.board[half-1][half-1] = Occupied(first.Enemy())
	gs.board[half][half] = Occupied(first.Enemy())
	gs.board[half-1][half] = Occupied(first)
	gs.board[half][half-1] = Occupied(first)
	return gs, nil
}

// FromRows builds a state from the rendering produced by String: one row per
// entry, cells given as X (human), O (machine) or '.' (empty), spaces ignored.
func FromRows(rows []string, next, first Player) (*GameState, error) {
	if !next.Valid() || !first.Valid() {
		return nil, fmt.Errorf("%w: not existing player", ErrIllegalArgument)
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrIllegalArgument, Size, len(rows))
	}

	gs := &GameState{next: next, first: first, depth: meta.DEFAULT_LEVEL}
	discs := 0
	for i, row := range rows {
		cells := strings.ReplaceAll(row, " ", "")
		if len(cells) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrIllegalArgument, i, len(cells))
		}
		for j := 0; j < Size; j++ {
			switch cells[j] {
			case 'X', 'x':
				gs.board[i][j] = HumanDisc
				discs++
			case 'O', 'o':
				gs.board[i][j] = MachineDisc
				discs++
			case '.':
				gs.board[i][j] = Empty
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at row %d", ErrIllegalArgument, cells[j], i)
			}
		}
	}
	if discs == 0 {
		return nil, fmt.Errorf("%w: board has no discs", ErrIllegalArgument)
	}
	return gs, nil
}

// Duplicate returns an independent deep copy.
func (gs *GameState) Duplicate() *GameState {
	c := *gs // the board is an array, copied by value
	return &c
}

func (gs *GameState) Next() Player {
	return gs.next
}

func (gs *GameState) First() Player {
	return gs.first
}

func (gs *GameState) Depth() int {
	return gs.depth
}

// WithDepth returns a copy searching level plies deep.
func (gs *GameState) WithDepth(level int) (*GameState, error) {
	if level < meta.MIN_LEVEL || level > meta.MAX_LEVEL {
		return nil, fmt.Errorf("%w: level must be between %d and %d, got %d",
			ErrIllegalArgument, meta.MIN_LEVEL, meta.MAX_LEVEL, level)
	}
	c := gs.Duplicate()
	c.depth = level
	return c, nil
}

// Occupant reports whose disc is at (row, col), false if the cell is empty.
func (gs *GameState) Occupant(row, col int) (Player, bool, error) {
	if !inBounds(row, col) {
		return 0, false, fmt.Errorf("%w: (%d, %d) is not on the grid", ErrIllegalArgument, row, col)
	}
	p, ok := gs.board[row][col].Owner()
	return p, ok, nil
}

// Count returns the number of discs owned by p.
func (gs *GameState) Count(p Player) int {
	target := Occupied(p)
	count := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if gs.board[i][j] == target {
				count++
			}
		}
	}
	return count
}

// OccupiedCount returns the number of discs on the board.
func (gs *GameState) OccupiedCount() int {
	count := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if gs.board[i][j] != Empty {
				count++
			}
		}
	}
	return count
}

// Winner returns the player with more discs, false on a tie.
// It does not check whether the game is over.
func (gs *GameState) Winner() (Player, bool) {
	humans, machines := gs.Count(Human), gs.Count(Machine)
	switch {
	case humans > machines:
		return Human, true
	case machines > humans:
		return Machine, true
	default:
		return 0, false
	}
}

func (gs *GameState) String() string {
	var sb strings.Builder
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			sb.WriteByte(gs.board[i][j].symbol())
			if j < Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
