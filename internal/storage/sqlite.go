// Package storage provides SQLite-based persistence for camera positions:
// the last position per level, restored when a level is reopened, and
// named bookmarks. Rows belong to an owner, so SSH users keep their own
// positions; local use is the empty owner.
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

// Store manages the SQLite database connection.
type Store struct {
	db    *sql.DB
	owner string
}

// Position is a camera centre in world pixels.
type Position struct {
	LevelID   string
	X         float64
	Y         float64
	UpdatedAt time.Time
}

// Bookmark is a named camera position within a level.
type Bookmark struct {
	ID        int64
	LevelID   string
	Name      string
	X         float64
	Y         float64
	CreatedAt time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ForUser returns a store over the same database whose positions and
// bookmarks belong to user. Only the store returned by Open should be closed.
func (s *Store) ForUser(user string) *Store {
	return &Store{db: s.db, owner: user}
}

// Owner returns the user this store reads and writes for.
func (s *Store) Owner() string {
	return s.owner
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS positions (
			owner TEXT NOT NULL DEFAULT '',
			level_id TEXT NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY(owner, level_id)
		);

		CREATE TABLE IF NOT EXISTS bookmarks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner TEXT NOT NULL DEFAULT '',
			level_id TEXT NOT NULL,
			name TEXT NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(owner, level_id, name)
		);
		CREATE INDEX IF NOT EXISTS idx_bookmarks_owner_level ON bookmarks(owner, level_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection shared with every ForUser store.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePosition records the camera centre for a level, replacing any
// previous position.
func (s *Store) SavePosition(levelID string, x, y float64) error {
	_, err := s.db.Exec(
		`INSERT INTO positions (owner, level_id, x, y, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(owner, level_id) DO UPDATE SET x = excluded.x, y = excluded.y, updated_at = excluded.updated_at`,
		s.owner, levelID, x, y,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save position: %w", err)
	}
	return nil
}

// LastPosition returns the saved camera centre for a level.
// The boolean is false when the level has no saved position.
func (s *Store) LastPosition(levelID string) (Position, bool, error) {
	p := Position{LevelID: levelID}
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT x, y, updated_at FROM positions WHERE owner = ? AND level_id = ?",
		s.owner, levelID,
	).Scan(&p.X, &p.Y, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Position{}, false, nil
	}
	if err != nil {
		return Position{}, false, fmt.Errorf("storage: cannot query position: %w", err)
	}

	p.UpdatedAt = parseTime(updatedAt)
	return p, true, nil
}

// SaveBookmark stores a named position. Saving an existing name moves it.
// Returns the ID of the bookmark.
func (s *Store) SaveBookmark(levelID, name string, x, y float64) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("storage: bookmark name is empty")
	}

	var id int64
	err := s.db.QueryRow(
		`INSERT INTO bookmarks (owner, level_id, name, x, y)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(owner, level_id, name) DO UPDATE SET x = excluded.x, y = excluded.y
		 RETURNING id`,
		s.owner, levelID, name, x, y,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save bookmark: %w", err)
	}

	return id, nil
}

// Bookmarks retrieves all bookmarks for a level, oldest first.
func (s *Store) Bookmarks(levelID string) ([]Bookmark, error) {
	rows, err := s.db.Query(
		`SELECT id, level_id, name, x, y, created_at
		 FROM bookmarks
		 WHERE owner = ? AND level_id = ?
		 ORDER BY id`,
		s.owner, levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []Bookmark
	for rows.Next() {
		var b Bookmark
		var createdAt any
		if err := rows.Scan(&b.ID, &b.LevelID, &b.Name, &b.X, &b.Y, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.CreatedAt = parseTime(createdAt)
		bookmarks = append(bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return bookmarks, nil
}

// DeleteBookmark removes a bookmark by name.
// Returns false if no such bookmark existed.
func (s *Store) DeleteBookmark(levelID, name string) (bool, error) {
	res, err := s.db.Exec(
		"DELETE FROM bookmarks WHERE owner = ? AND level_id = ? AND name = ?",
		s.owner, levelID, name,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete bookmark: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
