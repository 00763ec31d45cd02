package game

// Strategic value of each cell: corners far above edges, cells next to the
// corners lowest.
var weights = [Size][Size]float64{
	{9999, 5, 500, 200, 200, 500, 5, 9999},
	{5, 1, 50, 150, 150, 50, 1, 5},
	{500, 50, 250, 100, 100, 250, 50, 500},
	{200, 150, 100, 50, 50, 100, 150, 200},
	{200, 150, 100, 50, 50, 100, 150, 200},
	{500, 50, 250, 100, 100, 250, 50, 500},
	{5, 1, 50, 150, 150, 50, 1, 5},
	{9999, 5, 500, 200, 200, 500, 5, 9999},
}

// Terms holds the three components of the standard evaluation.
type Terms struct {
	Positional float64
	Mobility   float64
	Frontier   float64
}

func (t Terms) Total() float64 {
	return t.Positional + t.Mobility + t.Frontier
}

// EvaluateStandard scores a state from the machine's point of view as the sum
// of a positional, a mobility and a frontier term.
func EvaluateStandard(gs *GameState) float64 {
	return Breakdown(gs).Total()
}

func Breakdown(gs *GameState) Terms {
	occupied := float64(gs.OccupiedCount())
	return Terms{
		Positional: gs.positionalScore(),
		Mobility:   gs.mobilityScore(occupied),
		Frontier:   gs.frontierScore(occupied),
	}
}

// positionalScore sums the machine's cell weights minus 1.5 times the human's.
func (gs *GameState) positionalScore() float64 {
	machine, human := 0.0, 0.0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			switch gs.board[i][j] {
			case MachineDisc:
				machine += weights[i][j]
			case HumanDisc:
				human += weights[i][j]
			}
		}
	}
	return machine - 1.5*human
}

// mobilityScore counts legal moves of both sides, regardless of whose turn it is.
func (gs *GameState) mobilityScore(occupied float64) float64 {
	machine := float64(len(gs.LegalMoves(Machine)))
	human := float64(len(gs.LegalMoves(Human)))
	return (64 / occupied) * (3*machine - 4*human)
}

// frontierScore rewards empty cells around human discs and penalizes empty
// cells around machine discs.
// NOTE: this is the inverse of the usual frontier heuristic and is kept as is.
func (gs *GameState) frontierScore(occupied float64) float64 {
	human := float64(gs.freeNeighbors(Human))
	machine := float64(gs.freeNeighbors(Machine))
	return (64 / (2 * occupied)) * (2.5*human - 3.0*machine)
}

// freeNeighbors counts, over every disc of p, its empty neighboring cells.
func (gs *GameState) freeNeighbors(p Player) int {
	own := Occupied(p)
	free := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if gs.board[i][j] != own {
				continue
			}
			for _, d := range directions {
				r, c := i+d[0], j+d[1]
				if inBounds(r, c) && gs.board[r][c] == Empty {
					free++
				}
			}
		}
	}
	return free
}
