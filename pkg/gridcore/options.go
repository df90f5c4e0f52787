// Package gridcore provides the editable table model of a spreadsheet
// document: sparse per-sheet cell storage, grid mutations, and per-sheet
// undo/redo history.
package gridcore

import "log/slog"

// Options configures a Model.
type Options struct {
	// HistoryLimit caps the undo depth of each sheet. 0 means unlimited.
	HistoryLimit int
	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default model options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
