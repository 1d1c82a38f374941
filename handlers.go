package hexpress

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// cachedJSON serves the current route from the page cache, building and
// caching the payload on a miss. The cache key includes the query string so
// filtered listings are cached independently.
func (a *App) cachedJSON(c echo.Context, build func() (any, error)) error {
	key := c.Request().URL.RequestURI()
	if body, ct, ok := a.Cache.Get(key); ok {
		return c.Blob(http.StatusOK, ct, body)
	}
	v, err := build()
	if err != nil {
		return err
	}
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	a.Cache.Put(key, echo.MIMEApplicationJSON, body)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
}

// handleListPosts serves published posts, newest first, optionally filtered
// by category. "All" and an empty category both mean no filter.
func (a *App) handleListPosts(c echo.Context) error {
	category := c.QueryParam("category")
	return a.cachedJSON(c, func() (any, error) {
		posts, err := a.Posts.ListPublished()
		if err != nil {
			return nil, err
		}
		if category != "" && category != "All" {
			filtered := make([]Post, 0, len(posts))
			for _, p := range posts {
				if p.Category == category {
					filtered = append(filtered, p)
				}
			}
			posts = filtered
		}
		if posts == nil {
			posts = []Post{}
		}
		return posts, nil
	})
}

// handleGetPost serves a single published post by slug.
func (a *App) handleGetPost(c echo.Context) error {
	slug := c.Param("slug")
	key := "/api/posts/" + slug
	if body, ct, ok := a.Cache.Get(key); ok {
		return c.Blob(http.StatusOK, ct, body)
	}
	post, err := a.Posts.GetBySlug(slug)
	if err != nil || !post.Published {
		return echo.ErrNotFound
	}
	body, err := json.Marshal(post)
	if err != nil {
		return err
	}
	a.Cache.Put(key, echo.MIMEApplicationJSON, body)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
}

// handleListFAQs serves published FAQs. ?page= narrows to a display surface
// ("homepage" or a post slug); ?category= narrows by FAQ category.
func (a *App) handleListFAQs(c echo.Context) error {
	page := c.QueryParam("page")
	category := c.QueryParam("category")
	return a.cachedJSON(c, func() (any, error) {
		var (
			faqs []FAQ
			err  error
		)
		switch {
		case page != "":
			faqs, err = a.FAQs.ListByPage(page)
		case category != "":
			faqs, err = a.FAQs.ListByCategory(category)
		default:
			faqs, err = a.FAQs.ListPublished()
		}
		if err != nil {
			return nil, err
		}
		if faqs == nil {
			faqs = []FAQ{}
		}
		return faqs, nil
	})
}

func (a *App) handleListCategories(c echo.Context) error {
	return a.cachedJSON(c, func() (any, error) {
		return a.Categories.List()
	})
}

// handleGetSEO serves the SEO record for a page key, falling back to the
// built-in default so callers always receive a complete record.
func (a *App) handleGetSEO(c echo.Context) error {
	page := c.Param("page")
	return a.cachedJSON(c, func() (any, error) {
		meta, err := a.SEO.GetByPage(page)
		if errors.Is(err, ErrNotFound) {
			meta = a.SEO.Default()
			meta.Page = page
			return meta, nil
		}
		if err != nil {
			return nil, err
		}
		return meta, nil
	})
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	key := "/sitemap.xml"
	if body, ct, ok := a.Cache.Get(key); ok {
		return c.Blob(http.StatusOK, ct, body)
	}
	posts, err := a.Posts.ListPublished()
	if err != nil {
		return err
	}
	body, err := a.renderSitemap(posts)
	if err != nil {
		return err
	}
	a.Cache.Put(key, sitemapContentType, body)
	return c.Blob(http.StatusOK, sitemapContentType, body)
}

func (a *App) handleFeed(c echo.Context) error {
	key := "/feed.xml"
	if body, ct, ok := a.Cache.Get(key); ok {
		return c.Blob(http.StatusOK, ct, body)
	}
	posts, err := a.Posts.ListPublished()
	if err != nil {
		return err
	}
	body, err := a.renderRSS(posts)
	if err != nil {
		return err
	}
	a.Cache.Put(key, rssContentType, body)
	return c.Blob(http.StatusOK, rssContentType, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	if errors.Is(err, ErrNotFound) || code == http.StatusNotFound {
		code, msg = http.StatusNotFound, "not found"
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	_ = c.JSON(code, Result{Error: msg})
}
