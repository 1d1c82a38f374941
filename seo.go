package hexpress

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const seoExt = ".json"

// SEOStore reads and writes per-page SEO records as flat JSON documents. The
// filename minus extension is the page key; the key is never stored inside
// the document. Open Graph and Twitter card fallbacks are baked in at write
// time, so readers always see fully resolved records.
type SEOStore struct {
	mu  sync.RWMutex
	dir string
}

// NewSEOStore creates a store over dir. The directory is created lazily on
// first access.
func NewSEOStore(dir string) *SEOStore {
	return &SEOStore{dir: dir}
}

func (s *SEOStore) ensureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

func (s *SEOStore) path(page string) string {
	return filepath.Join(s.dir, page+seoExt)
}

// List returns every page record sorted alphabetically by page key.
func (s *SEOStore) List() ([]SEOMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	pages := make([]SEOMetadata, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), seoExt) {
			continue
		}
		meta, err := s.read(strings.TrimSuffix(e.Name(), seoExt))
		if err != nil {
			return nil, err
		}
		pages = append(pages, meta)
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Page < pages[j].Page
	})
	return pages, nil
}

// GetByPage returns the record for page. Absent or unreadable files both
// yield ErrNotFound; callers fall back to Default.
func (s *SEOStore) GetByPage(page string) (SEOMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ensureDir(); err != nil {
		return SEOMetadata{}, err
	}
	meta, err := s.read(page)
	if err != nil {
		return SEOMetadata{}, ErrNotFound
	}
	return meta, nil
}

// Save creates or fully overwrites the record for page, resolving the
// fallback chains (ogTitle←title, twitterImage←ogImage, and so on) and
// stamping updatedAt with the current time.
func (s *SEOStore) Save(page string, meta SEOMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureDir(); err != nil {
		return err
	}
	meta = applySEOFallbacks(meta)
	meta.Page = "" // the filename is the key
	meta.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	out, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(page), out, 0o644)
}

// Delete removes the record for page. Deleting a missing record is a no-op.
func (s *SEOStore) Delete(page string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(page))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Default returns the built-in record used whenever GetByPage finds nothing,
// so the presentation layer always has a definite title/description/card set.
func (s *SEOStore) Default() SEOMetadata {
	return SEOMetadata{
		Title:              "Hexpertify - Connect with Certified Experts",
		Description:        "Connect with certified experts across AI, Cloud Computing, Mental Health, Fitness, and Career Development. Get personalized consulting and expert guidance.",
		OGTitle:            "Hexpertify - Connect with Certified Experts",
		OGDescription:      "Connect with certified experts across AI, Cloud Computing, Mental Health, Fitness, and Career Development.",
		OGImage:            "https://bolt.new/static/og_default.png",
		OGType:             "website",
		TwitterCard:        "summary_large_image",
		TwitterTitle:       "Hexpertify - Connect with Certified Experts",
		TwitterDescription: "Connect with certified experts across AI, Cloud Computing, Mental Health, Fitness, and Career Development.",
		TwitterImage:       "https://bolt.new/static/og_default.png",
		Keywords:           "experts, consulting, AI, cloud computing, mental health, fitness, career development",
		Robots:             "index, follow",
		UpdatedAt:          time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *SEOStore) read(page string) (SEOMetadata, error) {
	raw, err := os.ReadFile(s.path(page))
	if err != nil {
		return SEOMetadata{}, err
	}
	var meta SEOMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return SEOMetadata{}, err
	}
	meta.Page = page
	return meta, nil
}

func applySEOFallbacks(meta SEOMetadata) SEOMetadata {
	if meta.OGTitle == "" {
		meta.OGTitle = meta.Title
	}
	if meta.OGDescription == "" {
		meta.OGDescription = meta.Description
	}
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	if meta.TwitterCard == "" {
		meta.TwitterCard = "summary_large_image"
	}
	if meta.TwitterTitle == "" {
		meta.TwitterTitle = meta.Title
	}
	if meta.TwitterDescription == "" {
		meta.TwitterDescription = meta.Description
	}
	if meta.TwitterImage == "" {
		meta.TwitterImage = meta.OGImage
	}
	if meta.Robots == "" {
		meta.Robots = "index, follow"
	}
	return meta
}
