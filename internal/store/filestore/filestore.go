// Package filestore implements the persistence backend over a single JSON
// document on disk. Every mutation is a whole-document load→mutate→save
// cycle; a process-wide mutex keeps at most one cycle in flight at a time
// so concurrent creates cannot overwrite each other's inserts. Saves go
// through a temp file and rename so a crash mid-write never leaves a
// half-written document behind.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/partnerdesk/partner-api/internal/domain"
	"go.uber.org/zap"
)

// document is the on-disk shape. The masterRegister key name is the
// historical one for the partner array and is kept for file compatibility.
type document struct {
	MasterRegister []domain.Partner     `json:"masterRegister"`
	Personnel      []domain.Personnel   `json:"personnel"`
	Deliverables   []domain.Deliverable `json:"deliverables"`
}

func emptyDocument() *document {
	return &document{
		MasterRegister: []domain.Partner{},
		Personnel:      []domain.Personnel{},
		Deliverables:   []domain.Deliverable{},
	}
}

// Store is the JSON-document persistence backend
type Store struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// New creates a Store for the document at path
func New(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Connect verifies the document directory is writable and the document, if
// present, is readable. Safe to call repeatedly.
func (s *Store) Connect(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: cannot create store directory %s: %v", domain.ErrBackendUnavailable, dir, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.load()
	return nil
}

// Disconnect is a no-op for the file backend. Safe to call repeatedly.
func (s *Store) Disconnect() error {
	return nil
}

// Path returns the document location
func (s *Store) Path() string {
	return s.path
}

// load reads the whole document. Absent or corrupt files yield an empty
// store rather than an error; a corrupt file is logged and set aside.
func (s *Store) load() *document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("store document unreadable, starting empty",
				zap.String("path", s.path),
				zap.Error(err),
			)
		}
		return emptyDocument()
	}

	doc := emptyDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		s.logger.Warn("store document corrupt, starting empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return emptyDocument()
	}
	if doc.MasterRegister == nil {
		doc.MasterRegister = []domain.Partner{}
	}
	if doc.Personnel == nil {
		doc.Personnel = []domain.Personnel{}
	}
	if doc.Deliverables == nil {
		doc.Deliverables = []domain.Deliverable{}
	}
	return doc
}

// save serializes the whole document atomically via temp file + rename
func (s *Store) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize store document: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write store document: %v", domain.ErrBackendUnavailable, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to replace store document: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

// mutate runs one serialized load→mutate→save cycle. The callback returns
// false to skip the save (read-only or no-op outcomes).
func (s *Store) mutate(fn func(doc *document) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	dirty, err := fn(doc)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}
	return s.save(doc)
}

// view runs a read-only pass over a freshly loaded document
func (s *Store) view(fn func(doc *document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.load())
}

// Snapshot returns the current document serialized as indented JSON,
// suitable for archiving.
func (s *Store) Snapshot(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.load(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize store document: %w", err)
	}
	return data, nil
}
