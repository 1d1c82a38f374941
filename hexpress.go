// Package hexpress is a flat-file blog and marketing content engine with a
// companion admin API, built with Go and Echo. Posts, FAQs, categories, and
// per-page SEO records live on local disk as MDX frontmatter and JSON
// documents; the admin surface provides session-gated CRUD over all four,
// with rendered-route cache invalidation after every mutation.
package hexpress

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hexpertify/hexpress/analytics"
)

// App is the central hexpress application. It wires together the content
// stores, the action layer, the page cache, handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo

	Posts      *PostStore
	FAQs       *FAQStore
	Categories *CategoryStore
	SEO        *SEOStore
	Actions    *Actions
	Cache      *PageCache

	loginLimiter   *LoginLimiter
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
}

// New creates a new hexpress App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the stores, cache, middleware, and routes, then starts
// the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("hexpress: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("hexpress: SessionSecret is required")
	}

	a.initContent()
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("hexpress: init analytics: %w", err)
		}
		a.analyticsStore = store
		stopCleanup := store.StartCleanupScheduler(365, 24*time.Hour)
		defer stopCleanup()
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// initContent builds the four stores over the content root, the page cache,
// and the action layer on top of them.
func (a *App) initContent() {
	dir := a.Config.ContentDir
	a.Posts = NewPostStore(filepath.Join(dir, "posts"))
	a.FAQs = NewFAQStore(filepath.Join(dir, "faqs"))
	a.Categories = NewCategoryStore(filepath.Join(dir, "categories.json"))
	a.SEO = NewSEOStore(filepath.Join(dir, "seo"))
	a.Cache = NewPageCache(a.Config.PageCacheTTL)
	a.Actions = NewActions(a.Posts, a.FAQs, a.Categories, a.SEO, a.Cache)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public content API consumed by the presentation layer.
	e.GET("/api/posts", a.handleListPosts)
	e.GET("/api/posts/:slug", a.handleGetPost)
	e.GET("/api/faqs", a.handleListFAQs)
	e.GET("/api/categories", a.handleListCategories)
	e.GET("/api/seo/:page", a.handleGetSEO)

	// Admin API - session-gated CRUD over the four stores.
	e.GET("/admin/", a.handleAdminSession)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)

	e.GET("/admin/posts/", a.handleAdminListPosts)
	e.GET("/admin/posts/:slug/", a.handleAdminGetPost)
	e.POST("/admin/posts/", a.handleAdminSavePost)
	e.POST("/admin/posts/:slug/toggle/", a.handleAdminTogglePost)
	e.DELETE("/admin/posts/:slug/", a.handleAdminDeletePost)

	e.GET("/admin/faqs/", a.handleAdminListFAQs)
	e.GET("/admin/faqs/:id/", a.handleAdminGetFAQ)
	e.POST("/admin/faqs/", a.handleAdminSaveFAQ)
	e.POST("/admin/faqs/:id/toggle/", a.handleAdminToggleFAQ)
	e.DELETE("/admin/faqs/:id/", a.handleAdminDeleteFAQ)

	e.GET("/admin/categories/", a.handleAdminListCategories)
	e.POST("/admin/categories/", a.handleAdminAddCategory)
	e.POST("/admin/categories/remove/", a.handleAdminRemoveCategory)
	e.PUT("/admin/categories/", a.handleAdminReplaceCategories)

	e.GET("/admin/seo/", a.handleAdminListSEO)
	e.GET("/admin/seo/:page/", a.handleAdminGetSEO)
	e.POST("/admin/seo/", a.handleAdminSaveSEO)
	e.DELETE("/admin/seo/:page/", a.handleAdminDeleteSEO)

	e.POST("/admin/preview/", a.handleMarkdownPreview)

	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)

	if a.Config.AnalyticsEnabled && a.analyticsStore != nil {
		h, err := analytics.NewHandler(a.analyticsStore)
		if err != nil {
			e.Logger.Errorf("analytics disabled: %v", err)
			return
		}
		e.POST("/api/analytics/track", h.HandleTrack)
		e.GET("/admin/analytics/stats/", func(c echo.Context) error {
			if !IsAdmin(c) {
				return c.JSON(http.StatusUnauthorized, Result{Error: "unauthorized"})
			}
			return h.HandleStats(c)
		})
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("hexpress: required environment variable %s is not set", key)
	}
	return v
}
