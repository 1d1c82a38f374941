package hexpress

import (
	"reflect"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"What is AI?", "what-is-ai"},
		{"  Cost?! ", "cost"},
		{"already-slugged", "already-slugged"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"MixedCASE123", "mixedcase123"},
		{"---", ""},
		{"", ""},
		{"C++ & Go: a comparison", "c-go-a-comparison"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", []string{"blog", "post-1"}, "https://example.com/blog/post-1/"},
		{"https://example.com/", []string{"about"}, "https://example.com/about/"},
		{"https://example.com", nil, "https://example.com"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"a", "", "  ", "b", "\t"})
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterEmpty = %v, want %v", got, want)
	}
}

func TestRelatedPosts(t *testing.T) {
	current := Post{PostMetadata: PostMetadata{Slug: "current", Category: "AI", Published: true}}
	posts := []Post{
		current,
		{PostMetadata: PostMetadata{Slug: "same-cat", Category: "AI", Published: true}},
		{PostMetadata: PostMetadata{Slug: "draft", Category: "AI", Published: false}},
		{PostMetadata: PostMetadata{Slug: "other-cat", Category: "Cloud", Published: true}},
	}

	got := RelatedPosts(current, posts)
	if len(got) != 1 || got[0].Slug != "same-cat" {
		t.Errorf("RelatedPosts = %v, want only same-cat", got)
	}
}
