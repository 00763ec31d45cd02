package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateStandard(t *testing.T) {
	t.Run("start position", func(t *testing.T) {
		gs, _ := NewGame(Human)

		terms := Breakdown(gs)

		// Both sides hold two 50-weight cells, four moves each and ten free neighbors each
		require.InDelta(t, -50.0, terms.Positional, 1e-9)
		require.InDelta(t, -64.0, terms.Mobility, 1e-9)
		require.InDelta(t, -40.0, terms.Frontier, 1e-9)
		require.InDelta(t, -154.0, EvaluateStandard(gs), 1e-9)
	})

	t.Run("score does not depend on whose turn it is", func(t *testing.T) {
		human, _ := NewGame(Human)
		rows := splitRows(human.String())
		machine, err := FromRows(rows, Machine, Human)
		require.NoError(t, err)

		require.Equal(t, EvaluateStandard(human), EvaluateStandard(machine))
	})

	t.Run("frontier rewards human free neighbors", func(t *testing.T) {
		// The frontier term favors the machine when the human has more empty
		// neighbors, the opposite of the textbook heuristic.
		gs := mustRows(t, []string{
			"O . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . X . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
		}, Human)

		terms := Breakdown(gs)

		require.InDelta(t, 9999-1.5*50, terms.Positional, 1e-9)
		require.InDelta(t, 0.0, terms.Mobility, 1e-9)
		require.InDelta(t, 16*(2.5*8-3.0*3), terms.Frontier, 1e-9)
		require.Greater(t, terms.Frontier, 0.0)
	})

	t.Run("corners dominate the positional term", func(t *testing.T) {
		corner := mustRows(t, []string{
			"O . . . . . . .",
			". X . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
		}, Human)
		swapped := mustRows(t, []string{
			"X . . . . . . .",
			". O . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
		}, Human)

		require.Greater(t, EvaluateStandard(corner), EvaluateStandard(swapped))
	})
}
