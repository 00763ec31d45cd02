package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"reversi/engine"
	"reversi/game"
)

const help = `commands:
  <row> <col>   place a disc (1-8)
  undo          take back your last move
  new           start a new game
  switch        start a new game with the other player first
  level <1-5>   set the machine's search depth
  hint          list your legal moves and the current evaluation
  quit          leave`

// Session is a line-oriented game between a human at the terminal and the
// machine. The machine thinks in the background; undo, new, switch and quit
// discard a search in progress.
type Session struct {
	selector *engine.Selector
	renderer *Renderer
	out      io.Writer
	logger   zerolog.Logger

	state   *game.GameState
	history engine.History
	level   int

	results      <-chan engine.Result
	cancelSearch context.CancelFunc
}

func NewSession(selector *engine.Selector, out io.Writer, color bool, logger zerolog.Logger) *Session {
	return &Session{
		selector: selector,
		renderer: NewRenderer(out, color),
		out:      out,
		logger:   logger,
	}
}

// Run plays until quit, end of input or cancellation of ctx. At end of input
// a running search is allowed to finish.
func (s *Session) Run(ctx context.Context, in io.Reader, first game.Player, level int) error {
	if err := s.reset(first, level); err != nil {
		return err
	}
	s.show()

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	for {
		s.startMachine(ctx)
		if lines == nil && s.results == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			s.stopSearch()
			return ctx.Err()
		case result := <-s.results:
			s.finishMachine(result)
		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			quit, err := s.execute(line)
			if err != nil {
				fmt.Fprintln(s.out, err)
			}
			if quit {
				s.stopSearch()
				return nil
			}
		}
	}
}

func (s *Session) thinking() bool {
	return s.results != nil
}

func (s *Session) reset(first game.Player, level int) error {
	s.stopSearch()
	state, err := s.selector.NewGame(first)
	if err != nil {
		return err
	}
	state, err = s.selector.SetSearchDepth(state, level)
	if err != nil {
		return err
	}
	s.state = state
	s.level = level
	s.history.Clear()
	return nil
}

func (s *Session) execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(s.out, help)
	case "new":
		if err := s.reset(s.state.First(), s.level); err != nil {
			return false, err
		}
		s.show()
	case "switch":
		if err := s.reset(s.state.First().Enemy(), s.level); err != nil {
			return false, err
		}
		s.show()
	case "undo":
		return false, s.undo()
	case "level":
		return false, s.setLevel(fields[1:])
	case "hint":
		return false, s.hint()
	default:
		if cmd == "move" {
			fields = fields[1:]
		}
		return false, s.move(fields)
	}
	return false, nil
}

func (s *Session) move(fields []string) error {
	if s.thinking() {
		return errors.New("the machine is thinking")
	}
	if len(fields) != 2 {
		return fmt.Errorf("unknown command, type help")
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("invalid row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("invalid column %q", fields[1])
	}

	next, ok, err := s.selector.HumanMove(s.state, row, col)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, "Illegal move! Try again!")
		return nil
	}

	s.history.Push(s.state)
	s.state = next
	s.show()
	if !s.state.IsTerminal() && s.state.Next() == game.Human {
		fmt.Fprintln(s.out, "Machine has to miss a turn!")
	}
	return nil
}

func (s *Session) undo() error {
	previous, ok := s.history.Undo()
	if !ok {
		return errors.New("nothing to undo")
	}
	s.stopSearch()
	previous, err := previous.WithDepth(s.level)
	if err != nil {
		return err
	}
	s.state = previous
	s.show()
	return nil
}

func (s *Session) setLevel(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: level <1-5>")
	}
	level, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid level %q", args[0])
	}
	// Applies to the next search, a running one keeps its depth and
	// finishMachine carries the level over to its result.
	state, err := s.selector.SetSearchDepth(s.state, level)
	if err != nil {
		return err
	}
	s.state = state
	s.level = level
	fmt.Fprintf(s.out, "level set to %d\n", level)
	return nil
}

func (s *Session) hint() error {
	if s.thinking() {
		return errors.New("the machine is thinking")
	}
	var moves []string
	for _, m := range s.state.LegalMoves(game.Human) {
		moves = append(moves, fmt.Sprintf("%d %d", m.Row+1, m.Col+1))
	}
	terms := game.Breakdown(s.state)
	fmt.Fprintf(s.out, "your moves: %s\n", strings.Join(moves, ", "))
	fmt.Fprintf(s.out, "evaluation: positional %.1f, mobility %.1f, frontier %.1f\n",
		terms.Positional, terms.Mobility, terms.Frontier)
	return nil
}

func (s *Session) startMachine(ctx context.Context) {
	if s.thinking() || s.state.IsTerminal() || s.state.Next() != game.Machine {
		return
	}
	searchCtx, cancel := context.WithCancel(ctx)
	s.cancelSearch = cancel
	s.results = s.selector.StartMachineMove(searchCtx, s.state)
	fmt.Fprintln(s.out, "machine is thinking...")
}

func (s *Session) stopSearch() {
	if s.cancelSearch != nil {
		s.cancelSearch()
	}
	s.cancelSearch = nil
	s.results = nil
}

func (s *Session) finishMachine(result engine.Result) {
	s.stopSearch()
	if result.Err != nil {
		s.logger.Error().Err(result.Err).Msg("machine move failed")
		return
	}

	s.logger.Debug().
		Int("nodes", result.Metric.Nodes).
		Dur("duration", result.Metric.Duration).
		Msg("machine moved")
	state, err := result.State.WithDepth(s.level)
	if err != nil {
		s.logger.Error().Err(err).Msg("machine move failed")
		return
	}
	s.state = state
	s.show()
	if !s.state.IsTerminal() && s.state.Next() == game.Machine {
		fmt.Fprintln(s.out, "You have to miss a turn!")
	}
}

func (s *Session) show() {
	fmt.Fprint(s.out, s.renderer.Board(s.state))
	if s.state.IsTerminal() {
		fmt.Fprintln(s.out, s.renderer.Outcome(s.state))
	}
}
