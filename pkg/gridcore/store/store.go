// Package store persists the document library as a single JSON state file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/document"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

// DefaultPath is the conventional location of the state file.
const DefaultPath = "./data/app_state.json"

// FileStore reads and writes the {"documents": [...]} state file.
type FileStore struct {
	Path   string
	logger *slog.Logger
}

// NewFileStore creates a store backed by path. If logger is nil,
// slog.Default() is used.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{
		Path:   path,
		logger: logger.With(slog.String("component", "store")),
	}
}

// Load reads the state file. A missing file yields an empty state.
func (s *FileStore) Load() (models.StateData, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("no state file", slog.String("path", s.Path))
			return models.StateData{}, nil
		}
		return models.StateData{}, fmt.Errorf("read state %s: %w", s.Path, err)
	}
	var state models.StateData
	if err := json.Unmarshal(data, &state); err != nil {
		return models.StateData{}, fmt.Errorf("decode state %s: %w", s.Path, err)
	}
	return state, nil
}

// Save writes state atomically by renaming a temporary file over the target.
func (s *FileStore) Save(state models.StateData) error {
	if state.Documents == nil {
		state.Documents = []models.DocumentData{}
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	s.logger.Debug("state saved", slog.String("path", s.Path), slog.Int("documents", len(state.Documents)))
	return nil
}

// LoadDocuments reads the state file and rebuilds every document.
func (s *FileStore) LoadDocuments() ([]*document.Document, error) {
	state, err := s.Load()
	if err != nil {
		return nil, err
	}
	return Documents(state)
}

// SaveDocuments writes docs as the complete state.
func (s *FileStore) SaveDocuments(docs []*document.Document) error {
	return s.Save(State(docs))
}

// State converts documents to their persisted form.
func State(docs []*document.Document) models.StateData {
	state := models.StateData{Documents: make([]models.DocumentData, 0, len(docs))}
	for _, doc := range docs {
		state.Documents = append(state.Documents, doc.Data())
	}
	return state
}

// Documents rebuilds documents from their persisted form.
func Documents(state models.StateData) ([]*document.Document, error) {
	docs := make([]*document.Document, 0, len(state.Documents))
	for i, data := range state.Documents {
		doc, err := document.FromData(data)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
