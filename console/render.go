package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"reversi/game"
)

// Renderer draws boards for a terminal, colouring discs when the terminal
// supports it.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	var options []termenv.OutputOption
	if !color {
		options = append(options, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, options...)}
}

func (r *Renderer) disc(p game.Player) string {
	if p == game.Human {
		return r.out.String("X").Foreground(r.out.Color("#e06c75")).Bold().String()
	}
	return r.out.String("O").Foreground(r.out.Color("#61afef")).Bold().String()
}

// Board renders the grid with 1-indexed row and column labels followed by
// the disc counts and the player to move.
func (r *Renderer) Board(state *game.GameState) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for j := 1; j <= game.Size; j++ {
		fmt.Fprintf(&sb, " %d", j)
	}
	sb.WriteByte('\n')

	for i := 0; i < game.Size; i++ {
		fmt.Fprintf(&sb, "%d ", i+1)
		for j := 0; j < game.Size; j++ {
			sb.WriteByte(' ')
			if p, ok, _ := state.Occupant(i, j); ok {
				sb.WriteString(r.disc(p))
			} else {
				sb.WriteString(r.out.String(".").Faint().String())
			}
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "human %d : machine %d, level %d\n",
		state.Count(game.Human), state.Count(game.Machine), state.Depth())
	return sb.String()
}

// Outcome describes a finished game.
func (r *Renderer) Outcome(state *game.GameState) string {
	winner, ok := state.Winner()
	switch {
	case !ok:
		return "The game is over! It's a tie!"
	case winner == game.Human:
		return "The game is over! You have won!"
	default:
		return "The game is over! Machine has won!"
	}
}
