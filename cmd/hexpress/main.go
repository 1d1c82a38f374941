package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hexpertify/hexpress"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("hexpress %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	cfg := hexpress.SiteConfig{
		Name:        hexpress.EnvOr("SITE_NAME", "Hexpertify"),
		URL:         hexpress.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: hexpress.EnvOr("SITE_DESCRIPTION", "Connect with certified experts for 1-on-1 consultations"),
		Author:      hexpress.EnvOr("SITE_AUTHOR", "Hexpertify"),

		Addr:       hexpress.EnvOr("ADDR", ":3000"),
		ContentDir: hexpress.EnvOr("CONTENT_DIR", "content"),
		StaticDir:  hexpress.EnvOr("STATIC_DIR", "public"),

		AdminPassword: hexpress.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: hexpress.MustEnv("ADMIN_SESSION_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",

		AnalyticsEnabled:      os.Getenv("ANALYTICS_ENABLED") != "false",
		AnalyticsDatabasePath: hexpress.EnvOr("ANALYTICS_DB_PATH", "data/analytics.db"),
	}

	if v := os.Getenv("PAGE_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid PAGE_CACHE_TTL %q: %v", v, err)
		}
		cfg.PageCacheTTL = ttl
	}

	app := hexpress.New(cfg)
	defer app.Close()
	return app.Start()
}

func printUsage() {
	fmt.Println(`hexpress - A flat-file blog and marketing content engine

Usage:
  hexpress <command>

Commands:
  serve         Start the content server (default)
  version       Print the hexpress version
  help          Show this help message

Environment:
  ADMIN_PASSWORD         Admin login password (required)
  ADMIN_SESSION_SECRET   Session encryption secret (required)
  SITE_NAME, SITE_URL, SITE_DESCRIPTION, SITE_AUTHOR
  ADDR, CONTENT_DIR, STATIC_DIR, COOKIE_SECURE
  PAGE_CACHE_TTL         e.g. "5m"
  ANALYTICS_ENABLED, ANALYTICS_DB_PATH`)
}
