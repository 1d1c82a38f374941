// Package analytics provides lightweight, privacy-preserving page-view
// analytics backed by SQLite. Visitors are identified by a salted hash of
// their IP and user agent; raw addresses are never stored.
package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Visit is a single tracked page view.
type Visit struct {
	VisitorID string
	IPHash    string
	Browser   string
	OS        string
	Device    string
	Path      string
	Referrer  string
	Timestamp time.Time
}

// Stats is the aggregate view served to the admin dashboard.
type Stats struct {
	Period         string      `json:"period"`
	TotalViews     int         `json:"totalViews"`
	UniqueVisitors int         `json:"uniqueVisitors"`
	TopPages       []PageStat  `json:"topPages"`
	DailyViews     []DailyView `json:"dailyViews"`
}

// PageStat is the view count for one path.
type PageStat struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

// DailyView is the view count for one day.
type DailyView struct {
	Day   string `json:"day"`
	Views int    `json:"views"`
}

// InitSalt ensures a random hashing salt exists in the settings table and
// returns it. The salt persists across restarts so visitor ids stay stable.
func InitSalt(s *Store) (string, error) {
	salt, err := s.GetSetting("salt")
	if err != nil {
		return "", err
	}
	if salt != "" {
		return salt, nil
	}
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt = hex.EncodeToString(raw)
	if err := s.SetSetting("salt", salt); err != nil {
		return "", err
	}
	return salt, nil
}

// HashIdentity derives a stable visitor id from the salt, IP, and user agent.
func HashIdentity(salt, ip, userAgent string) string {
	sum := sha256.Sum256([]byte(salt + "|" + ip + "|" + userAgent))
	return hex.EncodeToString(sum[:])
}

// HashIP hashes just the IP with the salt.
func HashIP(salt, ip string) string {
	sum := sha256.Sum256([]byte(salt + "|" + ip))
	return hex.EncodeToString(sum[:])
}

// ClassifyUserAgent extracts coarse browser, OS, and device labels from a
// user agent string. Good enough for dashboard breakdowns, not fingerprinting.
func ClassifyUserAgent(ua string) (browser, os, device string) {
	lower := strings.ToLower(ua)

	switch {
	case strings.Contains(lower, "edg/"):
		browser = "Edge"
	case strings.Contains(lower, "firefox/"):
		browser = "Firefox"
	case strings.Contains(lower, "chrome/"):
		browser = "Chrome"
	case strings.Contains(lower, "safari/"):
		browser = "Safari"
	default:
		browser = "Other"
	}

	switch {
	case strings.Contains(lower, "windows"):
		os = "Windows"
	case strings.Contains(lower, "android"):
		os = "Android"
	case strings.Contains(lower, "iphone"), strings.Contains(lower, "ipad"):
		os = "iOS"
	case strings.Contains(lower, "mac os"):
		os = "macOS"
	case strings.Contains(lower, "linux"):
		os = "Linux"
	default:
		os = "Other"
	}

	switch {
	case strings.Contains(lower, "mobile"), strings.Contains(lower, "iphone"), strings.Contains(lower, "android"):
		device = "Mobile"
	case strings.Contains(lower, "ipad"), strings.Contains(lower, "tablet"):
		device = "Tablet"
	default:
		device = "Desktop"
	}
	return browser, os, device
}
