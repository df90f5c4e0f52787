package document

import (
	"errors"
	"testing"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

func TestNewDocument(t *testing.T) {
	d := New("Budget")
	if d.Len() != 1 {
		t.Fatalf("Expected 1 sheet, got %d", d.Len())
	}
	if d.Active().Name != "Sheet1" {
		t.Errorf("Expected 'Sheet1', got %q", d.Active().Name)
	}
	if d.Active().ID == "" {
		t.Errorf("Expected a generated sheet ID")
	}
}

func TestAddRenameRemoveSheets(t *testing.T) {
	d := New("Doc")
	s2 := d.AddSheet("")
	if s2.Name != "Sheet2" {
		t.Errorf("Expected 'Sheet2', got %q", s2.Name)
	}
	s3 := d.AddSheet("  Totals ")
	if s3.Name != "Totals" {
		t.Errorf("Expected 'Totals', got %q", s3.Name)
	}
	if s2.ID == s3.ID {
		t.Errorf("Expected distinct sheet IDs")
	}

	if err := d.RenameSheet(1, "   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if err := d.RenameSheet(1, " Inputs "); err != nil {
		t.Fatalf("RenameSheet failed: %v", err)
	}
	if s2.Name != "Inputs" {
		t.Errorf("Expected 'Inputs', got %q", s2.Name)
	}
	if err := d.RenameSheet(9, "x"); !errors.Is(err, ErrSheetIndex) {
		t.Errorf("Expected ErrSheetIndex, got %v", err)
	}

	if err := d.SetActive(2); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	removed, err := d.RemoveSheet(2)
	if err != nil {
		t.Fatalf("RemoveSheet failed: %v", err)
	}
	if removed != s3 {
		t.Errorf("Expected removed sheet to be 'Totals'")
	}
	if d.ActiveIndex() != 1 {
		t.Errorf("Expected active index clamped to 1, got %d", d.ActiveIndex())
	}

	if _, err := d.RemoveSheet(0); err != nil {
		t.Fatalf("RemoveSheet failed: %v", err)
	}
	if _, err := d.RemoveSheet(0); !errors.Is(err, ErrLastSheet) {
		t.Errorf("Expected ErrLastSheet, got %v", err)
	}
	if d.Len() != 1 || d.ActiveIndex() != 0 {
		t.Errorf("Expected one sheet at index 0, got len=%d active=%d", d.Len(), d.ActiveIndex())
	}

	if err := d.SetActive(-1); !errors.Is(err, ErrSheetIndex) {
		t.Errorf("Expected ErrSheetIndex, got %v", err)
	}
}

func TestSheetByID(t *testing.T) {
	d := New("Doc")
	s := d.AddSheet("B")
	got, ok := d.SheetByID(s.ID)
	if !ok || got != s {
		t.Errorf("Expected to find sheet by ID")
	}
	if _, ok := d.SheetByID("missing"); ok {
		t.Errorf("Expected lookup of unknown ID to fail")
	}
}

func TestSizeOverrides(t *testing.T) {
	s := NewSheet("S")
	s.SetRowHeight(3, 40)
	s.SetColumnWidth(2, 150)
	if s.RowHeight(3) != 40 || s.ColumnWidth(2) != 150 {
		t.Errorf("Expected overrides to apply")
	}
	if s.RowHeight(4) != DefaultRowHeight || s.ColumnWidth(0) != DefaultColumnWidth {
		t.Errorf("Expected defaults for unset sizes")
	}

	s.SetRowHeight(3, DefaultRowHeight)
	s.SetColumnWidth(2, 0)
	if len(s.RowHeights) != 0 || len(s.ColWidths) != 0 {
		t.Errorf("Expected overrides removed, got rows=%v cols=%v", s.RowHeights, s.ColWidths)
	}
}

func TestDataRoundTrip(t *testing.T) {
	d := New("Doc")
	s1 := d.Active()
	s1.Cells.Set(models.At(0, 0), "a")
	s1.Cells.Set(models.At(10, 3), "b")
	s1.SetRowHeight(10, 30)
	s2 := d.AddSheet("Other")
	s2.SetColumnWidth(1, 80)
	if err := d.SetActive(1); err != nil {
		t.Fatal(err)
	}

	data := d.Data()
	if data.ActiveSheetIndex != 1 || len(data.Sheets) != 2 {
		t.Fatalf("Unexpected data: %+v", data)
	}
	if data.Sheets[0].Cells["10,3"] != "b" {
		t.Errorf("Expected cell key '10,3', got %v", data.Sheets[0].Cells)
	}
	if data.Sheets[0].RowHeights["10"] != 30 {
		t.Errorf("Expected row height key '10', got %v", data.Sheets[0].RowHeights)
	}

	restored, err := FromData(data)
	if err != nil {
		t.Fatalf("FromData failed: %v", err)
	}
	if restored.ActiveIndex() != 1 || restored.Active().Name != "Other" {
		t.Errorf("Expected active sheet 'Other', got %q", restored.Active().Name)
	}
	first, _ := restored.Sheet(0)
	if first.Cells.Get(models.At(10, 3)) != "b" || first.RowHeight(10) != 30 {
		t.Errorf("Expected cells and sizes restored")
	}
	if restored.Active().ColumnWidth(1) != 80 {
		t.Errorf("Expected column width restored")
	}
}

func TestFromDataFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		data       models.DocumentData
		wantSheets int
		wantActive int
	}{
		{"empty sheet list", models.DocumentData{Name: "x", ActiveSheetIndex: 3}, 1, 0},
		{"active out of range", models.DocumentData{
			Name:             "y",
			ActiveSheetIndex: 5,
			Sheets:           []models.SheetData{{Name: "A"}, {Name: "B"}},
		}, 2, 1},
	}

	for _, tt := range tests {
		d, err := FromData(tt.data)
		if err != nil {
			t.Fatalf("%s: FromData failed: %v", tt.name, err)
		}
		if d.Len() != tt.wantSheets || d.ActiveIndex() != tt.wantActive {
			t.Errorf("%s: got len=%d active=%d, expected len=%d active=%d",
				tt.name, d.Len(), d.ActiveIndex(), tt.wantSheets, tt.wantActive)
		}
	}

	_, err := FromData(models.DocumentData{Sheets: []models.SheetData{{Name: "bad", Cells: map[string]string{"r1c1": "x"}}}})
	if err == nil {
		t.Errorf("Expected error for malformed cell key")
	}
}

func TestClone(t *testing.T) {
	d := New("Doc")
	d.Active().Cells.Set(models.At(1, 1), "orig")
	d.Active().SetRowHeight(1, 50)

	c, err := d.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	if c.Active().ID != d.Active().ID {
		t.Errorf("Expected sheet IDs preserved")
	}
	if c.Active().Cells.Get(models.At(1, 1)) != "orig" {
		t.Errorf("Expected cloned cell value")
	}

	c.Active().Cells.Set(models.At(1, 1), "changed")
	c.Active().SetRowHeight(1, 60)
	c.AddSheet("extra")
	if d.Active().Cells.Get(models.At(1, 1)) != "orig" {
		t.Errorf("Expected original cells untouched by clone edits")
	}
	if d.Active().RowHeight(1) != 50 {
		t.Errorf("Expected original sizes untouched by clone edits")
	}
	if d.Len() != 1 {
		t.Errorf("Expected original sheet list untouched, got %d", d.Len())
	}
}
