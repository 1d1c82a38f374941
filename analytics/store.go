package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides database operations for analytics.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visitor_id TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			browser TEXT NOT NULL,
			os TEXT NOT NULL,
			device TEXT NOT NULL,
			path TEXT NOT NULL,
			referrer TEXT,
			timestamp DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
		CREATE INDEX IF NOT EXISTS idx_visits_visitor_id ON visits(visitor_id);
		CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// GetSetting retrieves a setting value by key. Returns empty string if not found.
func (s *Store) GetSetting(key string) (string, error) {
	var val string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&val)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return val, err
}

// SetSetting stores a setting value by key (upsert).
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// SaveVisit stores a new visit.
func (s *Store) SaveVisit(v *Visit) error {
	_, err := s.db.Exec(`INSERT INTO visits (visitor_id, ip_hash, browser, os, device, path, referrer, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.VisitorID, v.IPHash, v.Browser, v.OS, v.Device, v.Path, v.Referrer, v.Timestamp.UTC())
	return err
}

// GetStats returns aggregated statistics for the given time period.
func (s *Store) GetStats(from, to time.Time) (*Stats, error) {
	stats := &Stats{
		Period:     from.Format("2006-01-02") + " to " + to.Format("2006-01-02"),
		TopPages:   []PageStat{},
		DailyViews: []DailyView{},
	}

	err := s.db.QueryRow(`SELECT COUNT(*), COUNT(DISTINCT visitor_id) FROM visits
		WHERE timestamp BETWEEN ? AND ?`, from.UTC(), to.UTC()).
		Scan(&stats.TotalViews, &stats.UniqueVisitors)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT path, COUNT(*) AS views FROM visits
		WHERE timestamp BETWEEN ? AND ?
		GROUP BY path ORDER BY views DESC LIMIT 10`, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var p PageStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			return nil, err
		}
		stats.TopPages = append(stats.TopPages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	daily, err := s.db.Query(`SELECT date(timestamp) AS day, COUNT(*) AS views FROM visits
		WHERE timestamp BETWEEN ? AND ?
		GROUP BY day ORDER BY day`, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer daily.Close()
	for daily.Next() {
		var d DailyView
		if err := daily.Scan(&d.Day, &d.Views); err != nil {
			return nil, err
		}
		stats.DailyViews = append(stats.DailyViews, d)
	}
	return stats, daily.Err()
}

// DeleteOlderThan removes visits older than the given number of days.
func (s *Store) DeleteOlderThan(days int) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	_, err := s.db.Exec(`DELETE FROM visits WHERE timestamp < ?`, cutoff)
	return err
}

// StartCleanupScheduler periodically prunes visits past the retention window.
// The returned function stops the scheduler.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration) func() {
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = s.DeleteOlderThan(retentionDays)
			case <-stop:
				return
			}
		}
	}()
	return func() { close(stop) }
}
