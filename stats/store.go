package stats

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists page views in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at path and ensures the schema.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("stats: create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("stats: open db: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("stats: pragmas: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("stats: ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS views (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			lang TEXT NOT NULL DEFAULT '',
			referrer TEXT NOT NULL DEFAULT '',
			bot INTEGER NOT NULL DEFAULT 0,
			timestamp DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_views_timestamp ON views(timestamp);
		CREATE INDEX IF NOT EXISTS idx_views_path ON views(path);
	`)
	return err
}

// RecordView stores v. A zero Timestamp is replaced with the current time.
func (s *Store) RecordView(ctx context.Context, v View) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	bot := 0
	if v.Bot {
		bot = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO views (path, lang, referrer, bot, timestamp) VALUES (?, ?, ?, ?, ?)`,
		v.Path, v.Lang, CleanReferrer(v.Referrer), bot, v.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("stats: record view: %w", err)
	}
	return nil
}

// TopPages returns up to limit paths ordered by human view count.
func (s *Store) TopPages(ctx context.Context, limit int) ([]PageCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, COUNT(*) AS n FROM views WHERE bot = 0 GROUP BY path ORDER BY n DESC, path ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("stats: top pages: %w", err)
	}
	defer rows.Close()

	var out []PageCount
	for rows.Next() {
		var pc PageCount
		if err := rows.Scan(&pc.Path, &pc.Views); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// CountByLanguage returns human view counts grouped by language.
func (s *Store) CountByLanguage(ctx context.Context) ([]LangCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT lang, COUNT(*) AS n FROM views WHERE bot = 0 GROUP BY lang ORDER BY n DESC, lang ASC`)
	if err != nil {
		return nil, fmt.Errorf("stats: count by language: %w", err)
	}
	defer rows.Close()

	var out []LangCount
	for rows.Next() {
		var lc LangCount
		if err := rows.Scan(&lc.Lang, &lc.Views); err != nil {
			return nil, err
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

// Summarize collects the totals, the top pages and the language breakdown.
func (s *Store) Summarize(ctx context.Context, limit int) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(CASE WHEN bot = 0 THEN 1 ELSE 0 END), 0), COALESCE(SUM(bot), 0) FROM views`).
		Scan(&sum.Total, &sum.Bots)
	if err != nil {
		return Summary{}, fmt.Errorf("stats: totals: %w", err)
	}
	if sum.Pages, err = s.TopPages(ctx, limit); err != nil {
		return Summary{}, err
	}
	if sum.Languages, err = s.CountByLanguage(ctx); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// DeleteBefore removes views older than cutoff.
func (s *Store) DeleteBefore(ctx context.Context, cutoff time.Time) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM views WHERE timestamp < ?`, cutoff.UTC()); err != nil {
		return fmt.Errorf("stats: cleanup: %w", err)
	}
	return nil
}

// StartCleanup deletes views older than retention every interval until the
// returned stop function is called.
func (s *Store) StartCleanup(retention, interval time.Duration, onErr func(error)) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ticker.C:
				if err := s.DeleteBefore(context.Background(), time.Now().Add(-retention)); err != nil && onErr != nil {
					onErr(err)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
