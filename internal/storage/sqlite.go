// Package storage provides SQLite-based persistence for render history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the CLI keeps its history.
const DefaultPath = "~/.sudokugfx/history.db"

// Store manages the SQLite database connection for render history.
type Store struct {
	db *sql.DB
}

// Render is one recorded export.
type Render struct {
	ID        int64
	Scene     string
	Output    string
	Format    string
	Width     int
	Height    int
	Templates int
	Items     int
	Duration  time.Duration
	CreatedAt time.Time
}

// SceneStats aggregates the renders of one scene.
type SceneStats struct {
	Scene        string
	Renders      int
	AvgDuration  time.Duration
	LastRendered time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS renders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene TEXT NOT NULL,
			output TEXT NOT NULL,
			format TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			templates INTEGER NOT NULL DEFAULT 0,
			items INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_renders_scene ON renders(scene);
		CREATE INDEX IF NOT EXISTS idx_renders_created ON renders(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRender records a render. Returns the ID of the inserted record.
func (s *Store) SaveRender(r Render) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO renders (scene, output, format, width, height, templates, items, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Scene, r.Output, r.Format, r.Width, r.Height, r.Templates, r.Items, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save render: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const renderColumns = `id, scene, output, format, width, height, templates, items, duration_ms, created_at`

// Recent retrieves the latest renders, newest first.
func (s *Store) Recent(limit int) ([]Render, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRenders(
		`SELECT `+renderColumns+` FROM renders ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// ByScene retrieves the latest renders of one scene, newest first.
func (s *Store) ByScene(scene string, limit int) ([]Render, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRenders(
		`SELECT `+renderColumns+` FROM renders WHERE scene = ? ORDER BY id DESC LIMIT ?`,
		scene, limit,
	)
}

// Clear deletes the history of one scene, or all history when scene is empty.
func (s *Store) Clear(scene string) error {
	var err error
	if scene == "" {
		_, err = s.db.Exec("DELETE FROM renders")
	} else {
		_, err = s.db.Exec("DELETE FROM renders WHERE scene = ?", scene)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for every rendered scene.
func (s *Store) Stats() (map[string]*SceneStats, error) {
	rows, err := s.db.Query(
		`SELECT scene, COUNT(*), AVG(duration_ms), MAX(created_at)
		 FROM renders
		 GROUP BY scene`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SceneStats)
	for rows.Next() {
		var st SceneStats
		var avgMillis float64
		var last any
		if err := rows.Scan(&st.Scene, &st.Renders, &avgMillis, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.AvgDuration = time.Duration(avgMillis * float64(time.Millisecond))
		st.LastRendered = parseTime(last)
		stats[st.Scene] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Get retrieves one render by ID.
func (s *Store) Get(id int64) (*Render, error) {
	renders, err := s.queryRenders(`SELECT `+renderColumns+` FROM renders WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(renders) == 0 {
		return nil, fmt.Errorf("storage: render %d: %w", id, sql.ErrNoRows)
	}
	return &renders[0], nil
}

func (s *Store) queryRenders(query string, args ...any) ([]Render, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query renders: %w", err)
	}
	defer rows.Close()

	var renders []Render
	for rows.Next() {
		var r Render
		var millis int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Scene, &r.Output, &r.Format, &r.Width, &r.Height,
			&r.Templates, &r.Items, &millis, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(millis) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		renders = append(renders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return renders, nil
}

// IsNotFound reports whether err means a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
