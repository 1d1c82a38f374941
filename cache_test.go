package hexpress

import (
	"testing"
	"time"
)

func TestPageCachePutGet(t *testing.T) {
	c := NewPageCache(time.Minute)

	c.Put("/api/posts", "application/json", []byte(`[]`))
	body, ct, ok := c.Get("/api/posts")
	if !ok {
		t.Fatal("Get should hit after Put")
	}
	if string(body) != `[]` {
		t.Errorf("body = %q, want %q", body, `[]`)
	}
	if ct != "application/json" {
		t.Errorf("contentType = %q, want %q", ct, "application/json")
	}
}

func TestPageCacheMiss(t *testing.T) {
	c := NewPageCache(time.Minute)

	if _, _, ok := c.Get("/nope"); ok {
		t.Error("Get on empty cache should miss")
	}
}

func TestPageCacheExpiry(t *testing.T) {
	c := NewPageCache(time.Millisecond)

	c.Put("/api/posts", "application/json", []byte(`[]`))
	time.Sleep(5 * time.Millisecond)
	if _, _, ok := c.Get("/api/posts"); ok {
		t.Error("Get should miss after the TTL elapses")
	}
}

func TestPageCacheInvalidatePrefixes(t *testing.T) {
	c := NewPageCache(time.Minute)

	c.Put("/api/faqs", "application/json", []byte(`a`))
	c.Put("/api/faqs?page=homepage", "application/json", []byte(`b`))
	c.Put("/api/posts/hello", "application/json", []byte(`c`))
	c.Put("/api/postscript", "application/json", []byte(`d`))

	c.Invalidate("/api/faqs", "/api/posts")

	if _, _, ok := c.Get("/api/faqs"); ok {
		t.Error("exact key should be invalidated")
	}
	if _, _, ok := c.Get("/api/faqs?page=homepage"); ok {
		t.Error("query variant should be invalidated")
	}
	if _, _, ok := c.Get("/api/posts/hello"); ok {
		t.Error("sub-path should be invalidated")
	}
	if _, _, ok := c.Get("/api/postscript"); !ok {
		t.Error("sibling path sharing a prefix string must survive")
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	c := NewPageCache(time.Minute)

	c.Put("/a", "text/plain", []byte(`a`))
	c.Put("/b", "text/plain", []byte(`b`))
	c.InvalidateAll()

	if _, _, ok := c.Get("/a"); ok {
		t.Error("InvalidateAll should drop every entry")
	}
	if _, _, ok := c.Get("/b"); ok {
		t.Error("InvalidateAll should drop every entry")
	}
}
