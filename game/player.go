package game

import (
	"fmt"
	"strings"
)

// Player is one of the two sides of a game.
type Player int

const (
	Human Player = iota
	Machine
)

func (p Player) Valid() bool {
	return p == Human || p == Machine
}

// Enemy returns the opponent of p.
func (p Player) Enemy() Player {
	if p == Human {
		return Machine
	}
	return Human
}

func (p Player) String() string {
	switch p {
	case Human:
		return "human"
	case Machine:
		return "machine"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "h", "x":
		return Human, nil
	case "machine", "m", "o":
		return Machine, nil
	default:
		return 0, fmt.Errorf("%w: unknown player %q", ErrIllegalArgument, s)
	}
}

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	HumanDisc
	MachineDisc
)

// Occupied returns the cell holding a disc of p.
func Occupied(p Player) Cell {
	if p == Machine {
		return MachineDisc
	}
	return HumanDisc
}

// Owner reports the player whose disc occupies the cell, false if empty.
func (c Cell) Owner() (Player, bool) {
	switch c {
	case HumanDisc:
		return Human, true
	case MachineDisc:
		return Machine, true
	default:
		return 0, false
	}
}

func (c Cell) symbol() byte {
	switch c {
	case HumanDisc:
		return 'X'
	case MachineDisc:
		return 'O'
	default:
		return '.'
	}
}
