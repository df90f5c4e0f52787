// Package document holds the sheet and document model owned by the grid core.
//
// A Document always holds at least one Sheet. The active index is clamped
// whenever the sheet list shrinks.
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tiendc/go-deepcopy"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

var (
	// ErrLastSheet is returned when removing the only remaining sheet.
	ErrLastSheet = errors.New("a document must have at least one sheet")
	// ErrSheetIndex is returned for a sheet index outside the document.
	ErrSheetIndex = errors.New("sheet index out of range")
	// ErrEmptyName is returned when renaming to a blank name.
	ErrEmptyName = errors.New("name must not be empty")
)

// Document is a named, ordered collection of sheets with one active sheet.
type Document struct {
	// Name is the document display name.
	Name string

	sheets []*Sheet
	active int
}

// New creates a document holding one default sheet.
func New(name string) *Document {
	return &Document{
		Name:   name,
		sheets: []*Sheet{NewSheet(DefaultSheetName(1))},
	}
}

// FromSheets creates a document from existing sheets. An empty list is
// replaced by one default sheet.
func FromSheets(name string, sheets []*Sheet) *Document {
	d := &Document{Name: name, sheets: sheets}
	if len(d.sheets) == 0 {
		d.sheets = []*Sheet{NewSheet(DefaultSheetName(1))}
	}
	return d
}

// Len returns the number of sheets.
func (d *Document) Len() int {
	return len(d.sheets)
}

// Sheets returns the sheets in order. The slice is a copy; the sheets are not.
func (d *Document) Sheets() []*Sheet {
	out := make([]*Sheet, len(d.sheets))
	copy(out, d.sheets)
	return out
}

// Sheet returns the sheet at index.
func (d *Document) Sheet(index int) (*Sheet, error) {
	if index < 0 || index >= len(d.sheets) {
		return nil, fmt.Errorf("%w: %d", ErrSheetIndex, index)
	}
	return d.sheets[index], nil
}

// SheetByID returns the sheet with the given ID, if present.
func (d *Document) SheetByID(id string) (*Sheet, bool) {
	for _, s := range d.sheets {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Active returns the sheet selected for editing.
func (d *Document) Active() *Sheet {
	return d.sheets[d.active]
}

// ActiveIndex returns the index of the active sheet.
func (d *Document) ActiveIndex() int {
	return d.active
}

// SetActive selects the sheet at index.
func (d *Document) SetActive(index int) error {
	if index < 0 || index >= len(d.sheets) {
		return fmt.Errorf("%w: %d", ErrSheetIndex, index)
	}
	d.active = index
	return nil
}

// AddSheet appends a sheet. A blank name becomes "Sheet{N}" where N is the
// new sheet count.
func (d *Document) AddSheet(name string) *Sheet {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSheetName(len(d.sheets) + 1)
	}
	s := NewSheet(name)
	d.sheets = append(d.sheets, s)
	return s
}

// RenameSheet changes the display name of the sheet at index.
func (d *Document) RenameSheet(index int, name string) error {
	s, err := d.Sheet(index)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	s.Name = name
	return nil
}

// RemoveSheet deletes the sheet at index and returns it.
func (d *Document) RemoveSheet(index int) (*Sheet, error) {
	s, err := d.Sheet(index)
	if err != nil {
		return nil, err
	}
	if len(d.sheets) == 1 {
		return nil, ErrLastSheet
	}
	d.sheets = append(d.sheets[:index], d.sheets[index+1:]...)
	d.clampActive()
	return s, nil
}

func (d *Document) clampActive() {
	if d.active >= len(d.sheets) {
		d.active = len(d.sheets) - 1
	}
	if d.active < 0 {
		d.active = 0
	}
}

// Clone returns a deep copy of the document. Sheet IDs are preserved.
func (d *Document) Clone() (*Document, error) {
	var sheets []*Sheet
	if err := deepcopy.Copy(&sheets, d.sheets); err != nil {
		return nil, fmt.Errorf("clone document %q: %w", d.Name, err)
	}
	return &Document{Name: d.Name, sheets: sheets, active: d.active}, nil
}

// Data converts the document to its persisted form.
func (d *Document) Data() models.DocumentData {
	data := models.DocumentData{
		Name:             d.Name,
		ActiveSheetIndex: d.active,
		Sheets:           make([]models.SheetData, 0, len(d.sheets)),
	}
	for _, s := range d.sheets {
		data.Sheets = append(data.Sheets, s.Data())
	}
	return data
}

// FromData restores a document from its persisted form. An empty sheet list
// is replaced by one default sheet with the active index reset to 0; an out of
// range active index is clamped.
func FromData(data models.DocumentData) (*Document, error) {
	sheets := make([]*Sheet, 0, len(data.Sheets))
	for i, sd := range data.Sheets {
		s, err := SheetFromData(sd)
		if err != nil {
			return nil, fmt.Errorf("document %q sheet %d (%q): %w", data.Name, i, sd.Name, err)
		}
		sheets = append(sheets, s)
	}
	d := FromSheets(data.Name, sheets)
	if len(sheets) > 0 {
		d.active = data.ActiveSheetIndex
	}
	d.clampActive()
	return d, nil
}
