package gridcore

import (
	"log/slog"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/history"
)

// BeginCompoundAction starts grouping subsequent edits on the active sheet
// into one undoable action. Calls nest; every call must be paired with
// EndCompoundAction. Prefer Compound, which guarantees the pairing.
func (m *Model) BeginCompoundAction() {
	m.activeHistory().Begin()
}

// EndCompoundAction closes the innermost compound action on the active
// sheet. An unmatched call does nothing.
func (m *Model) EndCompoundAction() {
	m.endCompound(m.activeHistory())
}

func (m *Model) endCompound(st *history.State) {
	if st.End() {
		m.logger.Debug("compound action recorded", slog.Int("undo", st.UndoLen()))
		m.emitUndoState()
	}
}

// Compound runs fn inside a compound action. The action is closed on every
// exit path, including a panic in fn.
func (m *Model) Compound(fn func() error) error {
	st := m.activeHistory()
	st.Begin()
	defer m.endCompound(st)
	return fn()
}

// Undo reverts the most recent action of the active sheet. It reports false
// when there is nothing to undo.
func (m *Model) Undo() bool {
	st := m.activeHistory()
	act, ok := st.Undo()
	if !ok {
		return false
	}
	m.replay(st, act, false)
	return true
}

// Redo reapplies the most recently undone action of the active sheet. It
// reports false when there is nothing to redo.
func (m *Model) Redo() bool {
	st := m.activeHistory()
	act, ok := st.Redo()
	if !ok {
		return false
	}
	m.replay(st, act, true)
	return true
}

// CanUndo reports whether the active sheet has an action to undo.
func (m *Model) CanUndo() bool {
	return m.activeHistory().CanUndo()
}

// CanRedo reports whether the active sheet has an action to redo.
func (m *Model) CanRedo() bool {
	return m.activeHistory().CanRedo()
}

// replay writes the old (forward == false) or new values of act with
// recording suspended, then announces the change the way the original edit
// did.
func (m *Model) replay(st *history.State, act history.Action, forward bool) {
	cells := m.cells()
	resume := st.Suspend()
	for addr, value := range act.Changes.Values(forward) {
		cells.Set(addr, value)
	}
	resume()

	bounds, ok := act.Changes.Bounds()
	if act.Layout || !ok {
		m.emitLayoutChanged()
	} else {
		m.emitDataChanged(bounds)
	}
	m.emitUndoState()
	m.emitSaveRequested()
}
