package history

import "log/slog"

// Engine keeps an isolated State per sheet, keyed by sheet ID.
// States are created lazily on first use.
type Engine struct {
	states map[string]*State
	limit  int
	logger *slog.Logger
}

// NewEngine creates an engine whose states cap undo depth at limit
// (0 means unlimited). A nil logger uses slog.Default().
func NewEngine(limit int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		states: make(map[string]*State),
		limit:  limit,
		logger: logger.With(slog.String("component", "history")),
	}
}

// State returns the history of sheetID, creating it if needed.
func (e *Engine) State(sheetID string) *State {
	st, ok := e.states[sheetID]
	if !ok {
		st = NewState(e.limit)
		e.states[sheetID] = st
		e.logger.Debug("history created", slog.String("sheet", sheetID))
	}
	return st
}

// Has reports whether a history exists for sheetID.
func (e *Engine) Has(sheetID string) bool {
	_, ok := e.states[sheetID]
	return ok
}

// Forget drops the history of sheetID.
func (e *Engine) Forget(sheetID string) {
	if _, ok := e.states[sheetID]; !ok {
		return
	}
	delete(e.states, sheetID)
	e.logger.Debug("history dropped", slog.String("sheet", sheetID))
}

// Len returns the number of sheets with a history.
func (e *Engine) Len() int {
	return len(e.states)
}
