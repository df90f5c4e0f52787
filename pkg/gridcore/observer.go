package gridcore

import "github.com/ukaji3/gridcore-go/pkg/gridcore/models"

// Observer receives change notifications from a Model. Callbacks run
// synchronously on the goroutine that performed the mutation.
type Observer interface {
	// DataChanged reports that cells within the inclusive rectangle changed.
	DataChanged(topLeft, bottomRight models.Address)
	// LayoutChanged reports a structural change that may touch any cell.
	LayoutChanged()
	// UndoStateChanged reports the availability of undo and redo.
	UndoStateChanged(canUndo, canRedo bool)
	// SaveRequested asks the persistence collaborator to store the document.
	SaveRequested()
}

// ObserverFuncs adapts optional functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnDataChanged      func(topLeft, bottomRight models.Address)
	OnLayoutChanged    func()
	OnUndoStateChanged func(canUndo, canRedo bool)
	OnSaveRequested    func()
}

// DataChanged calls OnDataChanged if set.
func (f ObserverFuncs) DataChanged(topLeft, bottomRight models.Address) {
	if f.OnDataChanged != nil {
		f.OnDataChanged(topLeft, bottomRight)
	}
}

// LayoutChanged calls OnLayoutChanged if set.
func (f ObserverFuncs) LayoutChanged() {
	if f.OnLayoutChanged != nil {
		f.OnLayoutChanged()
	}
}

// UndoStateChanged calls OnUndoStateChanged if set.
func (f ObserverFuncs) UndoStateChanged(canUndo, canRedo bool) {
	if f.OnUndoStateChanged != nil {
		f.OnUndoStateChanged(canUndo, canRedo)
	}
}

// SaveRequested calls OnSaveRequested if set.
func (f ObserverFuncs) SaveRequested() {
	if f.OnSaveRequested != nil {
		f.OnSaveRequested()
	}
}

type subscription struct {
	id  int
	obs Observer
}

// Subscribe registers obs and returns a function that removes it.
func (m *Model) Subscribe(obs Observer) (unsubscribe func()) {
	m.nextSub++
	id := m.nextSub
	m.observers = append(m.observers, subscription{id: id, obs: obs})
	return func() {
		for i, s := range m.observers {
			if s.id == id {
				m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

func (m *Model) observersSnapshot() []subscription {
	out := make([]subscription, len(m.observers))
	copy(out, m.observers)
	return out
}

func (m *Model) emitDataChanged(r models.Range) {
	for _, s := range m.observersSnapshot() {
		s.obs.DataChanged(r.TopLeft(), r.BottomRight())
	}
}

func (m *Model) emitLayoutChanged() {
	for _, s := range m.observersSnapshot() {
		s.obs.LayoutChanged()
	}
}

func (m *Model) emitUndoState() {
	canUndo, canRedo := m.CanUndo(), m.CanRedo()
	for _, s := range m.observersSnapshot() {
		s.obs.UndoStateChanged(canUndo, canRedo)
	}
}

func (m *Model) emitSaveRequested() {
	for _, s := range m.observersSnapshot() {
		s.obs.SaveRequested()
	}
}
