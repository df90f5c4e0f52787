package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/document"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/grid"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

func TestLoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing.json"), nil)
	state, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(state.Documents) != 0 {
		t.Errorf("Expected no documents, got %d", len(state.Documents))
	}
}

func TestSaveAndLoadDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app_state.json")
	s := NewFileStore(path, nil)

	doc := document.New("Notes")
	doc.Active().Cells.Set(models.At(0, 1), "hello")
	doc.Active().SetRowHeight(2, 48)
	second := doc.AddSheet("Plan")
	second.Cells.Set(models.At(5, 5), "x")
	second.SetColumnWidth(3, 180)
	if err := doc.SetActive(1); err != nil {
		t.Fatal(err)
	}

	if err := s.SaveDocuments([]*document.Document{doc, document.New("Empty")}); err != nil {
		t.Fatalf("SaveDocuments failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("Expected temporary file to be renamed away, got %v", err)
	}

	docs, err := s.LoadDocuments()
	if err != nil {
		t.Fatalf("LoadDocuments failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(docs))
	}
	got := docs[0]
	if got.Name != "Notes" || got.ActiveIndex() != 1 || got.Len() != 2 {
		t.Errorf("Unexpected document %q active=%d sheets=%d", got.Name, got.ActiveIndex(), got.Len())
	}
	first, _ := got.Sheet(0)
	if v := first.Cells.Get(models.At(0, 1)); v != "hello" {
		t.Errorf("Expected 'hello', got %q", v)
	}
	if h := first.RowHeight(2); h != 48 {
		t.Errorf("Expected row height 48, got %d", h)
	}
	plan, _ := got.Sheet(1)
	if w := plan.ColumnWidth(3); w != 180 {
		t.Errorf("Expected column width 180, got %d", w)
	}
	if docs[1].Len() != 1 {
		t.Errorf("Expected empty document to keep its default sheet, got %d sheets", docs[1].Len())
	}
}

func TestSavedShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_state.json")
	s := NewFileStore(path, nil)

	doc := document.New("Doc")
	doc.Active().Cells.Set(models.At(3, 7), "v")
	if err := s.Save(State([]*document.Document{doc})); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Documents []struct {
			Name             string `json:"name"`
			ActiveSheetIndex int    `json:"active_sheet_index"`
			Sheets           []struct {
				Name  string            `json:"name"`
				Cells map[string]string `json:"cells"`
			} `json:"sheets"`
		} `json:"documents"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(decoded.Documents) != 1 || len(decoded.Documents[0].Sheets) != 1 {
		t.Fatalf("Unexpected shape: %s", raw)
	}
	if v := decoded.Documents[0].Sheets[0].Cells["3,7"]; v != "v" {
		t.Errorf("Expected cell key \"3,7\", got %v", decoded.Documents[0].Sheets[0].Cells)
	}
}

func TestSaveEmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_state.json")
	s := NewFileStore(path, nil)
	if err := s.Save(models.StateData{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "{\n  \"documents\": []\n}" {
		t.Errorf("Unexpected empty state %q", raw)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "malformed.json")
	if err := os.WriteFile(malformed, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(malformed, nil).Load(); err == nil {
		t.Error("Expected decode error for malformed JSON")
	}

	badKey := filepath.Join(dir, "bad_key.json")
	content := `{"documents":[{"name":"d","active_sheet_index":0,"sheets":[{"name":"s","cells":{"a,b":"x"}}]}]}`
	if err := os.WriteFile(badKey, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewFileStore(badKey, nil).LoadDocuments()
	if !errors.Is(err, grid.ErrInvalidKey) {
		t.Errorf("Expected ErrInvalidKey, got %v", err)
	}
}

func TestNewFileStoreDefaultPath(t *testing.T) {
	if s := NewFileStore("  ", nil); s.Path != DefaultPath {
		t.Errorf("Expected default path, got %q", s.Path)
	}
}
