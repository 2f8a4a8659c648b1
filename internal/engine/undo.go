package engine

// Step is one entry in the undo history. Sneak steps are automatic moves:
// undoing past one keeps unwinding until a player-made, settled state is
// reached.
type Step struct {
	Sneak bool `json:"sneak,omitempty"`
	State Game `json:"state"`
}

// History is the undo/redo stack for a game. The current board state lives
// outside the history; Past holds its predecessors and Future holds states
// undone and available for redo.
//
// Fields are exported for JSON serialization in save files; callers outside
// this package must treat them as read-only.
type History struct {
	Past   []Step `json:"past"`
	Future []Game `json:"future"`
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Update records a player-made transition from old to new and returns the
// state play continues from. No-op transitions are dropped, and a pick-up
// that is put straight back collapses: if new matches the last settled state
// and everything since has cards in hand, the history rewinds to it instead
// of recording a round trip.
func (h *History) Update(old, new Game) Game {
	if old.Equal(new) {
		return new
	}

	if old.HasFloating() {
		for n := len(h.Past) - 1; n >= 0; n-- {
			prev := h.Past[n].State
			if !prev.HasFloating() {
				if prev.Equal(new) {
					h.Past = truncSteps(h.Past, n)
					return new
				}
				break
			}
		}
	}

	h.Past = append(h.Past, Step{State: old})
	h.consumeRedo(new)
	return new
}

// SneakUpdate records an automatic transition (an auto-move to a
// foundation). Undo will roll sneak steps back together with the player
// move before them.
func (h *History) SneakUpdate(old, new Game) Game {
	if n := len(h.Past); n == 0 || !h.Past[n-1].State.Equal(old) {
		h.Past = append(h.Past, Step{Sneak: true, State: old})
	}
	h.consumeRedo(new)
	return new
}

// consumeRedo pops the redo stack if new re-plays the undone move, and
// clears it if play diverges.
func (h *History) consumeRedo(new Game) {
	if len(h.Future) == 0 {
		return
	}
	if new.Equal(h.Future[len(h.Future)-1]) {
		h.Future = truncStates(h.Future, len(h.Future)-1)
	} else {
		h.Future = nil
	}
}

// truncSteps and truncStates shorten a slice, normalizing empty to nil so
// histories compare equal regardless of how they were built (including
// after a JSON round trip).
func truncSteps(s []Step, n int) []Step {
	if n == 0 {
		return nil
	}
	return s[:n]
}

func truncStates(s []Game, n int) []Game {
	if n == 0 {
		return nil
	}
	return s[:n]
}

// Undo rewinds to the previous settled, player-made state. States with cards
// in hand and sneak steps are skipped over onto the redo stack. With nothing
// to undo it returns the current state unchanged.
func (h *History) Undo(current Game) Game {
	h.Future = append(h.Future, current)
	for len(h.Past) > 0 {
		step := h.Past[len(h.Past)-1]
		h.Past = truncSteps(h.Past, len(h.Past)-1)
		if !step.Sneak && !step.State.HasFloating() {
			return step.State
		}
		h.Future = append(h.Future, step.State)
	}
	last := h.Future[len(h.Future)-1]
	h.Future = truncStates(h.Future, len(h.Future)-1)
	return last
}

// Redo re-applies the most recently undone move, skipping over states with
// cards in hand. With nothing to redo it returns the current state
// unchanged.
func (h *History) Redo(current Game) Game {
	h.Past = append(h.Past, Step{State: current})
	for len(h.Future) > 0 {
		state := h.Future[len(h.Future)-1]
		h.Future = truncStates(h.Future, len(h.Future)-1)
		if !state.HasFloating() {
			return state
		}
		h.Past = append(h.Past, Step{State: state})
	}
	step := h.Past[len(h.Past)-1]
	h.Past = truncSteps(h.Past, len(h.Past)-1)
	return step.State
}

// CanUndo reports whether any player-made state remains to rewind to.
func (h *History) CanUndo() bool {
	for _, step := range h.Past {
		if !step.Sneak && !step.State.HasFloating() {
			return true
		}
	}
	return false
}

// CanRedo reports whether an undone move is available.
func (h *History) CanRedo() bool {
	return len(h.Future) > 0
}
