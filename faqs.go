package hexpress

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const faqExt = ".mdx"

// FAQStore reads and writes FAQs as frontmatter-only .mdx files. The filename
// minus extension is the id, derived from the slugified question when the FAQ
// is created. Saving under an existing id silently overwrites it.
type FAQStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFAQStore creates a store over dir. The directory is created lazily on
// first access.
func NewFAQStore(dir string) *FAQStore {
	return &FAQStore{dir: dir}
}

func (s *FAQStore) ensureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

func (s *FAQStore) path(id string) string {
	return filepath.Join(s.dir, id+faqExt)
}

// List returns every FAQ sorted ascending by order. Entries with equal order
// keep directory order. A missing directory is created and treated as empty.
func (s *FAQStore) List() ([]FAQ, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	faqs := make([]FAQ, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), faqExt) {
			continue
		}
		f, err := s.read(strings.TrimSuffix(e.Name(), faqExt))
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	sort.SliceStable(faqs, func(i, j int) bool {
		return faqs[i].Order < faqs[j].Order
	})
	return faqs, nil
}

// ListPublished returns only published FAQs in order.
func (s *FAQStore) ListPublished() ([]FAQ, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	var published []FAQ
	for _, f := range all {
		if f.Published {
			published = append(published, f)
		}
	}
	return published, nil
}

// ListByPage returns published FAQs associated with the given display surface
// ("homepage" or a post slug).
func (s *FAQStore) ListByPage(pageName string) ([]FAQ, error) {
	published, err := s.ListPublished()
	if err != nil {
		return nil, err
	}
	var out []FAQ
	for _, f := range published {
		if f.RelatedTo == pageName {
			out = append(out, f)
		}
	}
	return out, nil
}

// ListByCategory returns published FAQs in the given category. The reserved
// "All" category passes everything through unfiltered.
func (s *FAQStore) ListByCategory(category string) ([]FAQ, error) {
	published, err := s.ListPublished()
	if err != nil {
		return nil, err
	}
	if category == "All" {
		return published, nil
	}
	var out []FAQ
	for _, f := range published {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out, nil
}

// Categories returns "All" followed by the sorted distinct categories used by
// any FAQ, published or not.
func (s *FAQStore) Categories() ([]string, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, f := range all {
		seen[f.Category] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for c := range seen {
		names = append(names, c)
	}
	sort.Strings(names)
	return append([]string{"All"}, names...), nil
}

// GetByID returns the FAQ stored under id. Absent or unreadable files both
// yield ErrNotFound.
func (s *FAQStore) GetByID(id string) (FAQ, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ensureDir(); err != nil {
		return FAQ{}, err
	}
	f, err := s.read(id)
	if err != nil {
		return FAQ{}, ErrNotFound
	}
	return f, nil
}

// Save creates or fully overwrites the FAQ stored under id. Any id field on
// faq is ignored; the storage key is authoritative.
func (s *FAQStore) Save(id string, faq FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(id, faq)
}

// Delete removes the FAQ stored under id. Deleting a missing FAQ is a no-op.
func (s *FAQStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// TogglePublish flips the published flag of the FAQ stored under id,
// preserving every other field. Returns ErrNotFound when the FAQ does not exist.
func (s *FAQStore) TogglePublish(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read(id)
	if err != nil {
		return ErrNotFound
	}
	f.Published = !f.Published
	return s.write(id, f)
}

func (s *FAQStore) read(id string) (FAQ, error) {
	raw, err := os.ReadFile(s.path(id))
	if err != nil {
		return FAQ{}, err
	}
	var f FAQ
	if _, err := parseFrontmatter(raw, &f); err != nil {
		return FAQ{}, err
	}
	f.ID = id
	if f.Category == "" {
		f.Category = "General"
	}
	if f.RelatedTo == "" {
		f.RelatedTo = "homepage"
	}
	if f.CreatedAt == "" {
		f.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return f, nil
}

func (s *FAQStore) write(id string, faq FAQ) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	out, err := renderFrontmatter(faq, "")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(id), out, 0o644)
}
