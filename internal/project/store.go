package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

const documentFileName = "project.yaml"

// ErrNotFound is returned when a project id has no stored document.
var ErrNotFound = errors.New("project not found")

// Store reads and writes project documents under a root directory,
// one subdirectory per project id.
type Store struct {
	root string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

func (s *Store) docPath(id string) string {
	return filepath.Join(s.root, id, documentFileName)
}

// Save writes the document to disk, creating its directory if needed.
func (s *Store) Save(doc *Document) error {
	dir := filepath.Join(s.root, doc.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal project document: %w", err)
	}

	tmp := s.docPath(doc.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project document: %w", err)
	}
	if err := os.Rename(tmp, s.docPath(doc.ID)); err != nil {
		return fmt.Errorf("failed to replace project document: %w", err)
	}
	return nil
}

// Load reads the document for a project id.
func (s *Store) Load(id string) (*Document, error) {
	data, err := os.ReadFile(s.docPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to read project document: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project document: %w", err)
	}
	return &doc, nil
}

// List returns summaries for all stored projects, most recently updated first.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	var out []Summary
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		doc, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		out = append(out, doc.Summarize())
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// Delete removes a project and its directory.
func (s *Store) Delete(id string) error {
	if _, err := os.Stat(s.docPath(id)); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return os.RemoveAll(filepath.Join(s.root, id))
}
