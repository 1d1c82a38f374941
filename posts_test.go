package hexpress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func setupPostStore(t *testing.T) *PostStore {
	t.Helper()
	return NewPostStore(filepath.Join(t.TempDir(), "posts"))
}

func testPostMeta(slug, date string) PostMetadata {
	return PostMetadata{
		Title:       "Test Post",
		Slug:        slug,
		Description: "A test post",
		Author:      "Tester",
		Category:    "Technology",
		Published:   true,
		Date:        date,
	}
}

func TestSaveAndGetPost(t *testing.T) {
	s := setupPostStore(t)

	meta := testPostMeta("test-post", "2024-01-15")
	content := "# Heading\n\nSome body text."
	if err := s.Save("test-post", meta, content); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.GetBySlug("test-post")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if got.Title != meta.Title {
		t.Errorf("Title = %q, want %q", got.Title, meta.Title)
	}
	if got.Slug != "test-post" {
		t.Errorf("Slug = %q, want %q", got.Slug, "test-post")
	}
	if got.Date != meta.Date {
		t.Errorf("Date = %q, want %q", got.Date, meta.Date)
	}
	if got.Content != content {
		t.Errorf("Content = %q, want %q", got.Content, content)
	}
	if !got.Published {
		t.Error("Published should be true")
	}
}

func TestGetPostNotFound(t *testing.T) {
	s := setupPostStore(t)

	if _, err := s.GetBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBySlug error = %v, want ErrNotFound", err)
	}
}

func TestListPostsEmptyDirBootstrap(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "posts")
	s := NewPostStore(dir)

	posts, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("List returned %d posts, want 0", len(posts))
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("List should create the directory: %v", err)
	}
}

func TestListPostsSortedNewestFirst(t *testing.T) {
	s := setupPostStore(t)

	dates := map[string]string{
		"oldest": "2024-01-01",
		"newest": "2024-06-01T12:00:00Z",
		"middle": "2024-03-15",
	}
	for slug, date := range dates {
		if err := s.Save(slug, testPostMeta(slug, date), "body"); err != nil {
			t.Fatalf("Save %s failed: %v", slug, err)
		}
	}

	posts, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("List returned %d posts, want 3", len(posts))
	}
	want := []string{"newest", "middle", "oldest"}
	for i, slug := range want {
		if posts[i].Slug != slug {
			t.Errorf("posts[%d].Slug = %q, want %q", i, posts[i].Slug, slug)
		}
	}
}

func TestListPublishedFiltersDrafts(t *testing.T) {
	s := setupPostStore(t)

	draft := testPostMeta("draft", "2024-02-01")
	draft.Published = false
	if err := s.Save("draft", draft, ""); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("live", testPostMeta("live", "2024-01-01"), ""); err != nil {
		t.Fatal(err)
	}

	posts, err := s.ListPublished()
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "live" {
		t.Errorf("ListPublished = %v, want only live", posts)
	}
}

func TestPostFilenameWinsOverFrontmatterSlug(t *testing.T) {
	s := setupPostStore(t)

	meta := testPostMeta("frontmatter-slug", "2024-01-01")
	if err := s.Save("file-slug", meta, ""); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetBySlug("file-slug")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if got.Slug != "file-slug" {
		t.Errorf("Slug = %q, want filename slug %q", got.Slug, "file-slug")
	}
}

func TestTogglePublishPost(t *testing.T) {
	s := setupPostStore(t)

	if err := s.Save("toggle", testPostMeta("toggle", "2024-01-01"), "body"); err != nil {
		t.Fatal(err)
	}

	if err := s.TogglePublish("toggle"); err != nil {
		t.Fatalf("TogglePublish failed: %v", err)
	}
	got, _ := s.GetBySlug("toggle")
	if got.Published {
		t.Error("Published should be false after first toggle")
	}
	if got.Content != "body" {
		t.Errorf("Content = %q, toggle must preserve the body", got.Content)
	}

	if err := s.TogglePublish("toggle"); err != nil {
		t.Fatalf("second TogglePublish failed: %v", err)
	}
	got, _ = s.GetBySlug("toggle")
	if !got.Published {
		t.Error("Published should be true after second toggle")
	}
}

func TestTogglePublishMissingPost(t *testing.T) {
	s := setupPostStore(t)

	if err := s.TogglePublish("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("TogglePublish error = %v, want ErrNotFound", err)
	}
}

func TestDeletePost(t *testing.T) {
	s := setupPostStore(t)

	if err := s.Save("gone", testPostMeta("gone", "2024-01-01"), ""); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("gone"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.GetBySlug("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBySlug after delete = %v, want ErrNotFound", err)
	}

	// Deleting again is a no-op.
	if err := s.Delete("gone"); err != nil {
		t.Errorf("Delete of missing post = %v, want nil", err)
	}
}

func TestParsePostDate(t *testing.T) {
	tests := []struct {
		in   string
		zero bool
	}{
		{"2024-01-15", false},
		{"2024-06-01T12:00:00Z", false},
		{"not-a-date", true},
		{"", true},
	}
	for _, tt := range tests {
		got := parsePostDate(tt.in)
		if got.IsZero() != tt.zero {
			t.Errorf("parsePostDate(%q).IsZero() = %v, want %v", tt.in, got.IsZero(), tt.zero)
		}
	}
}
