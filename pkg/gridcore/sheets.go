package gridcore

import (
	"log/slog"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/document"
)

// SwitchSheet makes the sheet at index active. Each sheet keeps its own
// undo history.
func (m *Model) SwitchSheet(index int) error {
	if err := m.doc.SetActive(index); err != nil {
		return err
	}
	m.activeChanged()
	return nil
}

// AddSheet appends a sheet and makes it active. A blank name yields the
// default "SheetN" name.
func (m *Model) AddSheet(name string) *document.Sheet {
	s := m.doc.AddSheet(name)
	if err := m.doc.SetActive(m.doc.Len() - 1); err != nil {
		m.logger.Error("activate new sheet", slog.String("error", err.Error()))
	}
	m.activeChanged()
	m.emitSaveRequested()
	return s
}

// RenameSheet renames the sheet at index.
func (m *Model) RenameSheet(index int, name string) error {
	if err := m.doc.RenameSheet(index, name); err != nil {
		return err
	}
	m.emitSaveRequested()
	return nil
}

// RemoveSheet deletes the sheet at index along with its history. The last
// remaining sheet cannot be removed.
func (m *Model) RemoveSheet(index int) error {
	removed, err := m.doc.RemoveSheet(index)
	if err != nil {
		return err
	}
	m.history.Forget(removed.ID)
	m.activeChanged()
	m.emitSaveRequested()
	return nil
}

// SetRowHeight overrides the height of row on the active sheet.
func (m *Model) SetRowHeight(row, height int) {
	m.doc.Active().SetRowHeight(row, height)
	m.emitSaveRequested()
}

// SetColumnWidth overrides the width of col on the active sheet.
func (m *Model) SetColumnWidth(col, width int) {
	m.doc.Active().SetColumnWidth(col, width)
	m.emitSaveRequested()
}

func (m *Model) activeChanged() {
	m.logger.Debug("active sheet changed",
		slog.Int("index", m.doc.ActiveIndex()),
		slog.String("sheet", m.doc.Active().Name))
	m.emitLayoutChanged()
	m.emitUndoState()
}
