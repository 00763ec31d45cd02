package game

import "fmt"

// IsLegal reports whether p may place a disc at (row, col): the cell must be
// empty and at least one direction must hold a capturing line.
func (gs *GameState) IsLegal(p Player, row, col int) bool {
	if !inBounds(row, col) || gs.board[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if gs.captures(p, row, col, d) > 0 {
			return true
		}
	}
	return false
}

// captures returns the length of the opponent run starting next to (row, col)
// in direction d, or 0 if the run is not closed by a disc of p.
func (gs *GameState) captures(p Player, row, col int, d [2]int) int {
	own, enemy := Occupied(p), Occupied(p.Enemy())
	r, c := row+d[0], col+d[1]
	run := 0
	for inBounds(r, c) && gs.board[r][c] == enemy {
		run++
		r += d[0]
		c += d[1]
	}
	if run == 0 || !inBounds(r, c) || gs.board[r][c] != own {
		return 0
	}
	return run
}

// LegalMoves returns every legal square for p in row-major order.
func (gs *GameState) LegalMoves(p Player) []Square {
	var moves []Square
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if gs.IsLegal(p, i, j) {
				moves = append(moves, Square{Row: i, Col: j})
			}
		}
	}
	return moves
}

func (gs *GameState) HasLegalMove(p Player) bool {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if gs.IsLegal(p, i, j) {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether neither player can move.
func (gs *GameState) IsTerminal() bool {
	return !gs.HasLegalMove(Human) && !gs.HasLegalMove(Machine)
}

// Play places a disc of p at the 0-indexed (row, col).
// A move on an empty cell that captures nothing is rejected: the returned
// state is nil and ok is false, without an error.
func (gs *GameState) Play(p Player, row, col int) (next *GameState, ok bool, err error) {
	if !p.Valid() {
		return nil, false, fmt.Errorf("%w: not existing player %v", ErrIllegalArgument, p)
	}
	if gs.next != p || gs.IsTerminal() {
		return nil, false, fmt.Errorf("%w: %v may not move now", ErrIllegalMove, p)
	}
	if !inBounds(row, col) {
		return nil, false, fmt.Errorf("%w: (%d, %d) is not on the grid", ErrIllegalArgument, row, col)
	}
	if !gs.IsLegal(p, row, col) {
		return nil, false, nil
	}
	return gs.Apply(p, Square{Row: row, Col: col}), true, nil
}

// Apply returns the state after p plays the legal move sq, with the next
// player resolved. It does not check whose turn it is.
func (gs *GameState) Apply(p Player, sq Square) *GameState {
	c := gs.Duplicate()
	c.flip(p, sq.Row, sq.Col)
	c.next = c.resolveTurn(p)
	return c
}

// flip places the disc and turns over every closed run, direction by direction.
func (gs *GameState) flip(p Player, row, col int) {
	own := Occupied(p)
	gs.board[row][col] = own
	for _, d := range directions {
		run := gs.captures(p, row, col, d)
		for k := 1; k <= run; k++ {
			gs.board[row+k*d[0]][col+k*d[1]] = own
		}
	}
}

// resolveTurn returns who moves after mover: the enemy if it can move,
// otherwise mover again (a forced pass). When neither can move the game is
// over and mover is kept.
func (gs *GameState) resolveTurn(mover Player) Player {
	if gs.HasLegalMove(mover.Enemy()) {
		return mover.Enemy()
	}
	return mover
}
