package analytics

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testVisit(visitorID, path string, ts time.Time) *Visit {
	return &Visit{
		VisitorID: visitorID,
		IPHash:    "iphash",
		Browser:   "Chrome",
		OS:        "Linux",
		Device:    "Desktop",
		Path:      path,
		Referrer:  "",
		Timestamp: ts,
	}
}

func TestSaveVisitAndGetStats(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now()

	visits := []*Visit{
		testVisit("v1", "/blog/post-1", now),
		testVisit("v1", "/blog/post-1", now.Add(-time.Hour)),
		testVisit("v2", "/blog/post-2", now.Add(-2*time.Hour)),
	}
	for _, v := range visits {
		if err := s.SaveVisit(v); err != nil {
			t.Fatalf("SaveVisit failed: %v", err)
		}
	}

	stats, err := s.GetStats(now.AddDate(0, 0, -1), now.Add(time.Minute))
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalViews != 3 {
		t.Errorf("TotalViews = %d, want 3", stats.TotalViews)
	}
	if stats.UniqueVisitors != 2 {
		t.Errorf("UniqueVisitors = %d, want 2", stats.UniqueVisitors)
	}
	if len(stats.TopPages) != 2 {
		t.Fatalf("TopPages has %d entries, want 2", len(stats.TopPages))
	}
	if stats.TopPages[0].Path != "/blog/post-1" || stats.TopPages[0].Views != 2 {
		t.Errorf("TopPages[0] = %+v, want /blog/post-1 with 2 views", stats.TopPages[0])
	}
}

func TestGetStatsExcludesOutsidePeriod(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now()

	if err := s.SaveVisit(testVisit("v1", "/", now.AddDate(0, 0, -10))); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveVisit(testVisit("v2", "/", now)); err != nil {
		t.Fatal(err)
	}

	stats, err := s.GetStats(now.AddDate(0, 0, -1), now.Add(time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalViews != 1 {
		t.Errorf("TotalViews = %d, want 1", stats.TotalViews)
	}
}

func TestDeleteOlderThan(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now()

	if err := s.SaveVisit(testVisit("old", "/", now.AddDate(0, 0, -400))); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveVisit(testVisit("new", "/", now)); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteOlderThan(365); err != nil {
		t.Fatalf("DeleteOlderThan failed: %v", err)
	}

	stats, err := s.GetStats(now.AddDate(-2, 0, 0), now.Add(time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalViews != 1 {
		t.Errorf("TotalViews = %d after cleanup, want 1", stats.TotalViews)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	got, err := s.GetSetting("missing")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if got != "" {
		t.Errorf("GetSetting(missing) = %q, want empty", got)
	}

	if err := s.SetSetting("salt", "abc"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := s.SetSetting("salt", "def"); err != nil {
		t.Fatalf("SetSetting upsert failed: %v", err)
	}
	got, err = s.GetSetting("salt")
	if err != nil {
		t.Fatal(err)
	}
	if got != "def" {
		t.Errorf("GetSetting(salt) = %q, want def", got)
	}
}

func TestInitSaltIsStable(t *testing.T) {
	s := setupTestStore(t)

	first, err := InitSalt(s)
	if err != nil {
		t.Fatalf("InitSalt failed: %v", err)
	}
	if first == "" {
		t.Fatal("salt should not be empty")
	}
	second, err := InitSalt(s)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("salt changed between calls: %q vs %q", first, second)
	}
}
