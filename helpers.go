package hexpress

import (
	"net/url"
	"path"
	"strings"
)

// Slugify converts free text to a URL-safe identifier: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, edges trimmed.
// FAQ ids are derived from their question with this function.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// RelatedPosts finds published posts sharing a category with current.
func RelatedPosts(current Post, posts []Post) []Post {
	var related []Post
	for _, p := range posts {
		if p.Slug == current.Slug || !p.Published {
			continue
		}
		if p.Category == current.Category {
			related = append(related, p)
		}
	}
	return related
}
