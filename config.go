package hexpress

import "time"

// SiteConfig holds all configuration for a hexpress site.
type SiteConfig struct {
	Name        string // Site name (default "Hexpertify")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for feed metadata

	Addr       string // Listen address (default ":3000")
	ContentDir string // Flat-file content root (default "content")
	StaticDir  string // User-owned static assets (default "public")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	PageCacheTTL time.Duration // Rendered-route cache TTL (default 5min)

	AnalyticsEnabled      bool   // Enable page-view analytics
	AnalyticsDatabasePath string // Analytics SQLite path (default "data/analytics.db")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Hexpertify"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 5 * time.Minute
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
