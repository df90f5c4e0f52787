package gridcore

import (
	"log/slog"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/document"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/grid"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/history"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

// Model is the editable table model over a document's active sheet.
//
// A Model is not safe for concurrent use. Results produced on other
// goroutines must be handed to the goroutine that owns the model before any
// mutation is invoked.
type Model struct {
	doc     *document.Document
	history *history.Engine
	logger  *slog.Logger

	observers []subscription
	nextSub   int
}

// New creates a model editing doc.
func New(doc *document.Document, opts Options) *Model {
	logger := opts.logger()
	return &Model{
		doc:     doc,
		history: history.NewEngine(opts.HistoryLimit, logger),
		logger:  logger.With(slog.String("component", "model")),
	}
}

// Document returns the edited document.
func (m *Model) Document() *document.Document {
	return m.doc
}

// ActiveSheet returns the sheet currently being edited.
func (m *Model) ActiveSheet() *document.Sheet {
	return m.doc.Active()
}

// Snapshot returns a deep copy of the document for persistence.
func (m *Model) Snapshot() (*document.Document, error) {
	return m.doc.Clone()
}

// RowCount returns the logical number of rows.
func (m *Model) RowCount() int {
	return grid.MaxRows
}

// ColumnCount returns the logical number of columns.
func (m *Model) ColumnCount() int {
	return grid.MaxColumns
}

// ColumnLabel returns the header label for col.
func (m *Model) ColumnLabel(col int) string {
	return grid.ColumnName(col)
}

// RowLabel returns the header label for row.
func (m *Model) RowLabel(row int) string {
	return grid.RowName(row)
}

// Cell returns the value at addr on the active sheet, or "".
func (m *Model) Cell(addr models.Address) string {
	return m.cells().Get(addr)
}

// HasData reports whether any of addrs holds a value.
func (m *Model) HasData(addrs []models.Address) bool {
	cells := m.cells()
	for _, addr := range addrs {
		if cells.Has(addr) {
			return true
		}
	}
	return false
}

func (m *Model) cells() grid.Grid {
	return m.doc.Active().Cells
}

func (m *Model) activeHistory() *history.State {
	return m.history.State(m.doc.Active().ID)
}

// record files cs with the active sheet's history and announces a change in
// undo availability.
func (m *Model) record(cs history.ChangeSet, layout bool) {
	if m.activeHistory().Record(cs, layout) {
		m.emitUndoState()
	}
}
