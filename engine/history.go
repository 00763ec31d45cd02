package engine

import "reversi/game"

// History is an undo stack of states in which the human was about to move.
type History struct {
	states []*game.GameState
}

// Push records a copy of state.
func (h *History) Push(state *game.GameState) {
	h.states = append(h.states, state.Duplicate())
}

// Undo pops the most recent state, false if there is nothing to undo.
func (h *History) Undo() (*game.GameState, bool) {
	if len(h.states) == 0 {
		return nil, false
	}
	last := h.states[len(h.states)-1]
	h.states = h.states[:len(h.states)-1]
	return last.Duplicate(), true
}

func (h *History) Len() int {
	return len(h.states)
}

func (h *History) Clear() {
	h.states = nil
}
