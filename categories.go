package hexpress

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// DefaultCategories seeds the category file on first use. "All" is the
// reserved sentinel meaning "no filter" and can never be removed.
var DefaultCategories = []string{"All", "Mental Health", "Fitness", "Career", "AI", "Cloud", "Technology"}

// CategoryStore keeps the ordered category name list in a single JSON
// document. Order is insertion order, never sorted; uniqueness is a
// pre-insert membership check, case-sensitive.
type CategoryStore struct {
	mu   sync.Mutex
	path string
}

// NewCategoryStore creates a store over the JSON file at path. The file is
// seeded with DefaultCategories on first access.
func NewCategoryStore(path string) *CategoryStore {
	return &CategoryStore{path: path}
}

type categoriesFile struct {
	Categories []string `json:"categories"`
}

// List returns the ordered category names, seeding the default set when the
// backing file does not exist yet.
func (s *CategoryStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.Categories, nil
}

// Add appends name to the end of the list. Returns ErrAlreadyExists when the
// exact name is already present.
func (s *CategoryStore) Add(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	for _, c := range data.Categories {
		if c == name {
			return ErrAlreadyExists
		}
	}
	data.Categories = append(data.Categories, name)
	return s.write(data)
}

// Remove deletes name from the list. Returns ErrProtected for the reserved
// "All" entry. Posts referencing a removed category keep their dangling
// reference; nothing cascades.
func (s *CategoryStore) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "All" {
		return ErrProtected
	}
	data, err := s.load()
	if err != nil {
		return err
	}
	kept := data.Categories[:0]
	for _, c := range data.Categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	data.Categories = kept
	return s.write(data)
}

// Replace overwrites the whole list with names, in the given order.
func (s *CategoryStore) Replace(names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFile(); err != nil {
		return err
	}
	return s.write(categoriesFile{Categories: names})
}

func (s *CategoryStore) load() (categoriesFile, error) {
	if err := s.ensureFile(); err != nil {
		return categoriesFile{}, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return categoriesFile{}, err
	}
	var data categoriesFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return categoriesFile{}, err
	}
	return data, nil
}

func (s *CategoryStore) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return s.write(categoriesFile{Categories: append([]string(nil), DefaultCategories...)})
}

func (s *CategoryStore) write(data categoriesFile) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, out, 0o644)
}
