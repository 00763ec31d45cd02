package console

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"reversi/engine"
	"reversi/game"
)

func runSession(t *testing.T, input string, first game.Player) string {
	t.Helper()
	var out strings.Builder
	session := NewSession(engine.NewSelector(), &out, false, zerolog.Nop())
	err := session.Run(context.Background(), strings.NewReader(input), first, 1)
	require.NoError(t, err)
	return out.String()
}

func lastCounts(output string) string {
	i := strings.LastIndex(output, "human ")
	if i < 0 {
		return ""
	}
	line, _, _ := strings.Cut(output[i:], "\n")
	return line
}

func TestSession(t *testing.T) {
	t.Run("human move is answered by the machine", func(t *testing.T) {
		out := runSession(t, "3 4\n", game.Human)
		require.Contains(t, out, "human 4 : machine 1, level 1")
		require.Contains(t, out, "machine is thinking...")
		require.Equal(t, "human 3 : machine 3, level 1", lastCounts(out))
	})

	t.Run("move keyword is accepted", func(t *testing.T) {
		out := runSession(t, "move 3 4\n", game.Human)
		require.Contains(t, out, "human 4 : machine 1, level 1")
	})

	t.Run("non capturing move is rejected", func(t *testing.T) {
		out := runSession(t, "1 1\n", game.Human)
		require.Contains(t, out, "Illegal move! Try again!")
		require.Equal(t, "human 2 : machine 2, level 1", lastCounts(out))
	})

	t.Run("off grid move reports an error", func(t *testing.T) {
		out := runSession(t, "9 1\n", game.Human)
		require.Contains(t, out, game.ErrIllegalArgument.Error())
	})

	t.Run("machine starts when it moves first", func(t *testing.T) {
		out := runSession(t, "", game.Machine)
		require.Contains(t, out, "machine is thinking...")
		require.Equal(t, "human 1 : machine 4, level 1", lastCounts(out))
	})

	t.Run("switch restarts with the machine first", func(t *testing.T) {
		out := runSession(t, "switch\n", game.Human)
		require.Equal(t, "human 1 : machine 4, level 1", lastCounts(out))
	})

	t.Run("undo restores the position before the human move", func(t *testing.T) {
		out := runSession(t, "3 4\nundo\n", game.Human)
		require.Equal(t, "human 2 : machine 2, level 1", lastCounts(out))
	})

	t.Run("undo without history", func(t *testing.T) {
		out := runSession(t, "undo\n", game.Human)
		require.Contains(t, out, "nothing to undo")
	})

	t.Run("new game after a move", func(t *testing.T) {
		out := runSession(t, "3 4\nnew\n", game.Human)
		require.Equal(t, "human 2 : machine 2, level 1", lastCounts(out))
	})

	t.Run("level", func(t *testing.T) {
		out := runSession(t, "level 2\nlevel 9\n", game.Human)
		require.Contains(t, out, "level set to 2")
		require.Contains(t, out, game.ErrIllegalArgument.Error())
	})

	t.Run("hint lists legal moves one-indexed", func(t *testing.T) {
		out := runSession(t, "hint\n", game.Human)
		require.Contains(t, out, "your moves: 3 4, 4 3, 5 6, 6 5")
		require.Contains(t, out, "evaluation: positional -50.0, mobility -64.0, frontier -40.0")
	})

	t.Run("quit ignores the remaining input", func(t *testing.T) {
		out := runSession(t, "quit\n3 4\n", game.Human)
		require.NotContains(t, out, "human 4 : machine 1")
	})

	t.Run("unknown command", func(t *testing.T) {
		out := runSession(t, "fly\n", game.Human)
		require.Contains(t, out, "unknown command")
	})

	t.Run("cancelled context", func(t *testing.T) {
		r, w := io.Pipe()
		defer w.Close()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out strings.Builder
		session := NewSession(engine.NewSelector(), &out, false, zerolog.Nop())
		err := session.Run(ctx, r, game.Human, 1)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSessionMachineThinking(t *testing.T) {
	newThinking := func(t *testing.T, out *strings.Builder) (*Session, <-chan engine.Result) {
		t.Helper()
		session := NewSession(engine.NewSelector(), out, false, zerolog.Nop())
		require.NoError(t, session.reset(game.Machine, 1))
		session.startMachine(context.Background())
		require.True(t, session.thinking())
		return session, session.results
	}

	t.Run("level change reaches the next search", func(t *testing.T) {
		var out strings.Builder
		session, results := newThinking(t, &out)

		_, err := session.execute("level 4")
		require.NoError(t, err)
		session.finishMachine(<-results)

		require.Equal(t, 4, session.level)
		require.Equal(t, 4, session.state.Depth())
		require.Equal(t, game.Human, session.state.Next())
		require.Equal(t, "human 1 : machine 4, level 4", lastCounts(out.String()))
	})

	t.Run("hint is refused", func(t *testing.T) {
		var out strings.Builder
		session, results := newThinking(t, &out)
		defer func() { <-results }()

		_, err := session.execute("hint")
		require.EqualError(t, err, "the machine is thinking")
		require.NotContains(t, out.String(), "your moves")
	})

	t.Run("move is refused", func(t *testing.T) {
		var out strings.Builder
		session, results := newThinking(t, &out)
		defer func() { <-results }()

		_, err := session.execute("3 4")
		require.EqualError(t, err, "the machine is thinking")
	})
}

func TestRendererOutcome(t *testing.T) {
	r := NewRenderer(io.Discard, false)

	rows := make([]string, game.Size)
	for i := range rows {
		rows[i] = strings.Repeat("X", game.Size)
	}
	state, err := game.FromRows(rows, game.Human, game.Human)
	require.NoError(t, err)
	require.Equal(t, "The game is over! You have won!", r.Outcome(state))

	for i := range rows {
		rows[i] = strings.Repeat("O", game.Size)
	}
	state, err = game.FromRows(rows, game.Human, game.Human)
	require.NoError(t, err)
	require.Equal(t, "The game is over! Machine has won!", r.Outcome(state))

	for i := range rows {
		rows[i] = strings.Repeat("XO", game.Size/2)
	}
	state, err = game.FromRows(rows, game.Human, game.Human)
	require.NoError(t, err)
	require.Equal(t, "The game is over! It's a tie!", r.Outcome(state))
}

func TestRendererBoard(t *testing.T) {
	state, err := game.NewGame(game.Human)
	require.NoError(t, err)

	board := NewRenderer(io.Discard, false).Board(state)
	lines := strings.Split(strings.TrimSuffix(board, "\n"), "\n")
	require.Len(t, lines, game.Size+2)
	require.Equal(t, "   1 2 3 4 5 6 7 8", lines[0])
	require.Equal(t, "4  . . . O X . . .", lines[4])
	require.Equal(t, "human 2 : machine 2, level 3", lines[game.Size+1])
}
