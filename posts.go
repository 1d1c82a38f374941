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

const postExt = ".mdx"

// PostStore reads and writes blog posts as frontmatter+body .mdx files in a
// single directory. The filename minus extension is the slug and the sole
// identity of a post; no two posts can share one because the filesystem
// enforces filename uniqueness.
//
// The mutex serializes writers so read-modify-write operations like
// TogglePublish cannot interleave with a concurrent Save.
type PostStore struct {
	mu  sync.RWMutex
	dir string
}

// NewPostStore creates a store over dir. The directory is created lazily on
// first access.
func NewPostStore(dir string) *PostStore {
	return &PostStore{dir: dir}
}

func (s *PostStore) ensureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

func (s *PostStore) path(slug string) string {
	return filepath.Join(s.dir, slug+postExt)
}

// List returns every post sorted by date, newest first. Posts with equal
// dates keep directory order. A missing directory is created and treated as
// empty rather than an error; a malformed file fails the whole listing.
func (s *PostStore) List() ([]Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	posts := make([]Post, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), postExt) {
			continue
		}
		p, err := s.read(strings.TrimSuffix(e.Name(), postExt))
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return parsePostDate(posts[i].Date).After(parsePostDate(posts[j].Date))
	})
	return posts, nil
}

// ListPublished returns only published posts, newest first.
func (s *PostStore) ListPublished() ([]Post, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	var published []Post
	for _, p := range all {
		if p.Published {
			published = append(published, p)
		}
	}
	return published, nil
}

// GetBySlug returns the post stored under slug. Absent or unreadable files
// both yield ErrNotFound.
func (s *PostStore) GetBySlug(slug string) (Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.ensureDir(); err != nil {
		return Post{}, err
	}
	p, err := s.read(slug)
	if err != nil {
		return Post{}, ErrNotFound
	}
	return p, nil
}

// Save creates or fully overwrites the post stored under slug. The slug
// inside metadata is written as-is and is not checked against the storage
// key; the filename wins again at read time.
func (s *PostStore) Save(slug string, meta PostMetadata, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(slug, meta, content)
}

// Delete removes the post stored under slug. Deleting a missing post is a no-op.
func (s *PostStore) Delete(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(slug))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// TogglePublish flips the published flag of the post stored under slug,
// preserving every other field and the body. Returns ErrNotFound when the
// post does not exist.
func (s *PostStore) TogglePublish(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.read(slug)
	if err != nil {
		return ErrNotFound
	}
	p.Published = !p.Published
	return s.write(slug, p.PostMetadata, p.Content)
}

func (s *PostStore) read(slug string) (Post, error) {
	raw, err := os.ReadFile(s.path(slug))
	if err != nil {
		return Post{}, err
	}
	var meta PostMetadata
	body, err := parseFrontmatter(raw, &meta)
	if err != nil {
		return Post{}, err
	}
	// The filename is the identity; the frontmatter copy may diverge.
	meta.Slug = slug
	return Post{PostMetadata: meta, Content: string(body)}, nil
}

func (s *PostStore) write(slug string, meta PostMetadata, content string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if meta.TableOfContents == nil {
		meta.TableOfContents = []TOCEntry{}
	}
	out, err := renderFrontmatter(meta, content)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(slug), out, 0o644)
}

// parsePostDate accepts the two date shapes found in post frontmatter:
// RFC 3339 timestamps and plain YYYY-MM-DD dates. Anything else sorts last.
func parsePostDate(date string) time.Time {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02", date)
	return t
}
