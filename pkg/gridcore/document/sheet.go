package document

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/grid"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

const (
	// DefaultRowHeight is the row height in pixels when no override is set.
	DefaultRowHeight = 24
	// DefaultColumnWidth is the column width in pixels when no override is set.
	DefaultColumnWidth = 100
)

// Sheet is one grid page of a document.
type Sheet struct {
	// ID is a stable identifier generated on creation. It is not persisted.
	ID string
	// Name is the display name.
	Name string
	// Cells is the sparse cell store.
	Cells grid.Grid
	// RowHeights holds overridden row heights in pixels.
	RowHeights map[int]int
	// ColWidths holds overridden column widths in pixels.
	ColWidths map[int]int
}

// NewSheet creates an empty sheet.
func NewSheet(name string) *Sheet {
	return &Sheet{
		ID:         uuid.NewString(),
		Name:       name,
		Cells:      grid.New(),
		RowHeights: make(map[int]int),
		ColWidths:  make(map[int]int),
	}
}

// DefaultSheetName returns the name given to the n-th sheet (1-based).
func DefaultSheetName(n int) string {
	return "Sheet" + strconv.Itoa(n)
}

// RowHeight returns the height of row, falling back to DefaultRowHeight.
func (s *Sheet) RowHeight(row int) int {
	if h, ok := s.RowHeights[row]; ok {
		return h
	}
	return DefaultRowHeight
}

// SetRowHeight overrides the height of row. The default height or a
// non-positive height removes the override.
func (s *Sheet) SetRowHeight(row, height int) {
	if height <= 0 || height == DefaultRowHeight {
		delete(s.RowHeights, row)
		return
	}
	s.RowHeights[row] = height
}

// ColumnWidth returns the width of col, falling back to DefaultColumnWidth.
func (s *Sheet) ColumnWidth(col int) int {
	if w, ok := s.ColWidths[col]; ok {
		return w
	}
	return DefaultColumnWidth
}

// SetColumnWidth overrides the width of col. The default width or a
// non-positive width removes the override.
func (s *Sheet) SetColumnWidth(col, width int) {
	if width <= 0 || width == DefaultColumnWidth {
		delete(s.ColWidths, col)
		return
	}
	s.ColWidths[col] = width
}

// Data converts the sheet to its persisted form.
func (s *Sheet) Data() models.SheetData {
	return models.SheetData{
		Name:       s.Name,
		Cells:      s.Cells.Data(),
		RowHeights: sizesToData(s.RowHeights),
		ColWidths:  sizesToData(s.ColWidths),
	}
}

// SheetFromData restores a sheet from its persisted form with a fresh ID.
func SheetFromData(data models.SheetData) (*Sheet, error) {
	cells, err := grid.FromData(data.Cells)
	if err != nil {
		return nil, err
	}
	rowHeights, err := sizesFromData(data.RowHeights)
	if err != nil {
		return nil, err
	}
	colWidths, err := sizesFromData(data.ColWidths)
	if err != nil {
		return nil, err
	}
	s := NewSheet(data.Name)
	s.Cells = cells
	for row, h := range rowHeights {
		s.SetRowHeight(row, h)
	}
	for col, w := range colWidths {
		s.SetColumnWidth(col, w)
	}
	return s, nil
}

func sizesToData(sizes map[int]int) map[string]int {
	if len(sizes) == 0 {
		return nil
	}
	out := make(map[string]int, len(sizes))
	for index, size := range sizes {
		out[strconv.Itoa(index)] = size
	}
	return out
}

func sizesFromData(data map[string]int) (map[int]int, error) {
	out := make(map[int]int, len(data))
	for key, size := range data {
		index, err := grid.ParseIndex(key)
		if err != nil {
			return nil, err
		}
		out[index] = size
	}
	return out, nil
}
