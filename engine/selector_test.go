package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
)

func TestSelector(t *testing.T) {
	selector := NewSelector()

	t.Run("new game layout", func(t *testing.T) {
		state, err := selector.NewGame(game.Human)
		require.NoError(t, err)

		for _, sq := range []game.Square{{Row: 4, Col: 4}, {Row: 5, Col: 5}} {
			p, ok, err := QueryCell(state, sq.Row, sq.Col)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, game.Machine, p)
		}
		for _, sq := range []game.Square{{Row: 4, Col: 5}, {Row: 5, Col: 4}} {
			p, ok, err := QueryCell(state, sq.Row, sq.Col)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, game.Human, p)
		}
		require.Equal(t, game.Human, NextToMove(state))
		require.Equal(t, game.Human, FirstPlayer(state))
		require.Equal(t, 2, TileCount(state, game.Human))
		require.Equal(t, 2, TileCount(state, game.Machine))
	})

	t.Run("legal opening flips one disc", func(t *testing.T) {
		state, err := selector.NewGame(game.Human)
		require.NoError(t, err)

		next, ok, err := selector.HumanMove(state, 3, 4)

		require.NoError(t, err)
		require.True(t, ok)
		p, occupied, err := QueryCell(next, 4, 4)
		require.NoError(t, err)
		require.True(t, occupied)
		require.Equal(t, game.Human, p)
		require.Equal(t, 4, TileCount(next, game.Human))
		require.Equal(t, 1, TileCount(next, game.Machine))
		require.Equal(t, 5, next.OccupiedCount())
		require.Equal(t, game.Machine, NextToMove(next))
		require.Equal(t, 2, TileCount(state, game.Human), "Input state should be untouched")
	})

	t.Run("non capturing move is rejected", func(t *testing.T) {
		state, err := selector.NewGame(game.Human)
		require.NoError(t, err)

		next, ok, err := selector.HumanMove(state, 1, 1)

		require.NoError(t, err)
		require.False(t, ok)
		require.Nil(t, next)
		require.Equal(t, game.Human, NextToMove(state))
	})

	t.Run("move out of turn", func(t *testing.T) {
		state, err := selector.NewGame(game.Machine)
		require.NoError(t, err)

		_, _, err = selector.HumanMove(state, 3, 4)
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("move off the grid", func(t *testing.T) {
		state, err := selector.NewGame(game.Human)
		require.NoError(t, err)

		for _, rc := range [][2]int{{0, 1}, {1, 0}, {9, 1}, {1, 9}} {
			_, _, err = selector.HumanMove(state, rc[0], rc[1])
			require.ErrorIs(t, err, game.ErrIllegalArgument)
		}
	})

	t.Run("machine skips a turn", func(t *testing.T) {
		state, err := game.FromRows([]string{
			"X O . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			"X O . . . . . .",
		}, game.Human, game.Human)
		require.NoError(t, err)

		next, ok, err := selector.HumanMove(state, 1, 3)

		require.NoError(t, err)
		require.True(t, ok)
		require.False(t, IsTerminal(next))
		require.Equal(t, game.Human, NextToMove(next))
	})

	t.Run("full board winner", func(t *testing.T) {
		rows := make([]string, game.Size)
		for i := range rows {
			rows[i] = "XXXXXXXX"
		}
		rows[4] = "XXXXXOOO"
		for i := 5; i < game.Size; i++ {
			rows[i] = "OOOOOOOO"
		}
		state, err := game.FromRows(rows, game.Human, game.Human)
		require.NoError(t, err)
		require.Equal(t, 37, TileCount(state, game.Human))
		require.Equal(t, 27, TileCount(state, game.Machine))

		require.True(t, IsTerminal(state))
		winner, ok := Winner(state)
		require.True(t, ok)
		require.Equal(t, game.Human, winner)
	})

	t.Run("machine move", func(t *testing.T) {
		state, err := selector.NewGame(game.Human)
		require.NoError(t, err)
		state, ok, err := selector.HumanMove(state, 3, 4)
		require.NoError(t, err)
		require.True(t, ok)
		state, err = selector.SetSearchDepth(state, 2)
		require.NoError(t, err)

		next, metric, err := selector.MachineMove(context.Background(), state)

		require.NoError(t, err)
		require.Equal(t, 3, TileCount(next, game.Machine))
		require.Equal(t, 3, TileCount(next, game.Human))
		require.Equal(t, 2, metric.Depth)
		require.Positive(t, metric.Nodes)
		require.Equal(t, 2, next.Depth(), "Level should carry over")
	})

	t.Run("machine move out of turn", func(t *testing.T) {
		state, err := selector.NewGame(game.Human)
		require.NoError(t, err)

		_, _, err = selector.MachineMove(context.Background(), state)
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("machine to move without a legal move", func(t *testing.T) {
		state, err := game.FromRows([]string{
			"X O . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
		}, game.Machine, game.Human)
		require.NoError(t, err)

		require.NotPanics(t, func() {
			_, _, err = selector.MachineMove(context.Background(), state)
		})
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("human move on a finished game", func(t *testing.T) {
		rows := make([]string, game.Size)
		for i := range rows {
			rows[i] = "XXXXXXXX"
		}
		rows[0] = "XXXXXXX."
		state, err := game.FromRows(rows, game.Human, game.Human)
		require.NoError(t, err)

		_, _, err = selector.HumanMove(state, 1, 8)
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("background machine move", func(t *testing.T) {
		state, err := selector.NewGame(game.Machine)
		require.NoError(t, err)
		state, err = selector.SetSearchDepth(state, 1)
		require.NoError(t, err)

		result := <-selector.StartMachineMove(context.Background(), state)

		require.NoError(t, result.Err)
		require.Equal(t, 4, TileCount(result.State, game.Machine))
		require.Equal(t, game.Human, NextToMove(result.State))
	})

	t.Run("cancelled background machine move", func(t *testing.T) {
		state, err := selector.NewGame(game.Machine)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := <-selector.StartMachineMove(ctx, state)

		require.ErrorIs(t, result.Err, context.Canceled)
		require.Nil(t, result.State)
	})

	t.Run("search depth bounds", func(t *testing.T) {
		state, err := selector.NewGame(game.Human)
		require.NoError(t, err)

		for _, level := range []int{0, 6} {
			_, err := selector.SetSearchDepth(state, level)
			require.ErrorIs(t, err, game.ErrIllegalArgument)
		}
		for level := 1; level <= 5; level++ {
			next, err := selector.SetSearchDepth(state, level)
			require.NoError(t, err)
			require.Equal(t, level, next.Depth())
		}
	})
}

func TestQueryCell(t *testing.T) {
	state, err := game.NewGame(game.Human)
	require.NoError(t, err)

	_, ok, err := QueryCell(state, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	for _, rc := range [][2]int{{0, 0}, {9, 9}, {1, 0}} {
		_, _, err := QueryCell(state, rc[0], rc[1])
		require.ErrorIs(t, err, game.ErrIllegalArgument)
	}
}

func TestHistory(t *testing.T) {
	var h History
	_, ok := h.Undo()
	require.False(t, ok)

	first, err := game.NewGame(game.Human)
	require.NoError(t, err)
	second, ok, err := first.Play(game.Human, 2, 3)
	require.NoError(t, err)
	require.True(t, ok)

	h.Push(first)
	h.Push(second)
	require.Equal(t, 2, h.Len())

	got, ok := h.Undo()
	require.True(t, ok)
	require.Equal(t, second.String(), got.String())
	got, ok = h.Undo()
	require.True(t, ok)
	require.Equal(t, first.String(), got.String())
	require.Zero(t, h.Len())

	h.Push(first)
	h.Clear()
	require.Zero(t, h.Len())
}
