package history

import "github.com/ukaji3/gridcore-go/pkg/gridcore/models"

// Action is one undoable unit. Layout marks structural edits (row, column
// and block swaps) whose replay should be announced as a layout change.
type Action struct {
	Changes ChangeSet
	Layout  bool
}

// State is the undo/redo history of a single sheet.
type State struct {
	undo []Action
	redo []Action

	depth  int
	before map[models.Address]string
	after  map[models.Address]string
	layout bool

	suspended bool
	limit     int
	trimmed   int
}

// NewState returns an empty history. A positive limit caps the undo depth,
// evicting the oldest actions first.
func NewState(limit int) *State {
	return &State{limit: limit}
}

// Record files a change set. While suspended it does nothing. Inside a
// compound action the entries are merged into the accumulator: the first old
// value seen for an address is kept, the latest new value wins. Otherwise the
// set is pushed as one action and the redo stack is cleared.
//
// Record reports whether the undo stack changed.
func (s *State) Record(cs ChangeSet, layout bool) bool {
	if s.suspended {
		return false
	}
	cs = cs.Normalize()
	if len(cs) == 0 {
		return false
	}
	if s.depth > 0 {
		for _, c := range cs {
			if _, ok := s.before[c.Addr]; !ok {
				s.before[c.Addr] = c.Old
			}
			s.after[c.Addr] = c.New
		}
		s.layout = s.layout || layout
		return false
	}
	s.push(Action{Changes: cs, Layout: layout})
	return true
}

// Begin opens a compound action. Calls nest; only the outermost pair
// starts and flushes the accumulator.
func (s *State) Begin() {
	s.depth++
	if s.depth == 1 {
		s.before = make(map[models.Address]string)
		s.after = make(map[models.Address]string)
		s.layout = false
	}
}

// End closes a compound action. Unbalanced calls are ignored. On the
// outermost End the accumulated entries, minus those that returned to their
// starting value, are pushed as a single action.
//
// End reports whether the undo stack changed.
func (s *State) End() bool {
	if s.depth == 0 {
		return false
	}
	s.depth--
	if s.depth > 0 {
		return false
	}
	act := Action{Changes: Diff(s.before, s.after), Layout: s.layout}
	s.before, s.after, s.layout = nil, nil, false
	if len(act.Changes) == 0 {
		return false
	}
	s.push(act)
	return true
}

// Depth returns the compound nesting depth.
func (s *State) Depth() int {
	return s.depth
}

// Undo moves the most recent action to the redo stack and returns it.
// The caller replays its old values.
func (s *State) Undo() (Action, bool) {
	if len(s.undo) == 0 {
		return Action{}, false
	}
	act := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, act)
	return act, true
}

// Redo moves the most recently undone action back to the undo stack and
// returns it. The caller replays its new values.
func (s *State) Redo() (Action, bool) {
	if len(s.redo) == 0 {
		return Action{}, false
	}
	act := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, act)
	return act, true
}

// CanUndo reports whether there is an action to undo.
func (s *State) CanUndo() bool {
	return len(s.undo) > 0
}

// CanRedo reports whether there is an action to redo.
func (s *State) CanRedo() bool {
	return len(s.redo) > 0
}

// UndoLen returns the number of undoable actions.
func (s *State) UndoLen() int {
	return len(s.undo)
}

// RedoLen returns the number of redoable actions.
func (s *State) RedoLen() int {
	return len(s.redo)
}

// Suspend stops recording until the returned function is called.
// Nested suspensions restore the previous flag.
func (s *State) Suspend() (resume func()) {
	prev := s.suspended
	s.suspended = true
	return func() { s.suspended = prev }
}

// Suspended reports whether recording is suspended.
func (s *State) Suspended() bool {
	return s.suspended
}

// Trimmed returns how many actions were evicted by the depth limit.
func (s *State) Trimmed() int {
	return s.trimmed
}

func (s *State) push(act Action) {
	s.undo = append(s.undo, act)
	if s.limit > 0 && len(s.undo) > s.limit {
		drop := len(s.undo) - s.limit
		s.undo = s.undo[drop:]
		s.trimmed += drop
	}
	s.redo = s.redo[:0]
}
