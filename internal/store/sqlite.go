package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yzke/dlog/internal/domain"
)

//go:embed schema.sql
var schema string

// Store handles database operations against the local dlog database.
type Store struct {
	db *sql.DB
}

// Open opens (and if necessary creates) the database at dbPath and
// applies the schema. The schema uses IF NOT EXISTS throughout, so
// opening an already-initialized store is a no-op.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append inserts one entry stamped with the current UTC time and
// returns its assigned id. Empty tags are stored as NULL.
func (s *Store) Append(dir, content, tags string) (int64, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	var tagsVal any
	if tags != "" {
		tagsVal = tags
	}

	res, err := s.db.Exec(
		"INSERT INTO logs (timestamp, directory, content, tags) VALUES (?, ?, ?, ?)",
		timestamp, dir, content, tagsVal,
	)
	if err != nil {
		return 0, fmt.Errorf("insert log: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert log id: %w", err)
	}
	return id, nil
}

// Fetch returns the entries matching f, newest first. An empty result
// is not an error.
func (s *Store) Fetch(f Filter) ([]domain.LogEntry, error) {
	query, args := f.build()

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch logs: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetContent returns the current content of one entry, or
// domain.ErrNotFound when no entry has the given id.
func (s *Store) GetContent(id int64) (string, error) {
	var content string
	err := s.db.QueryRow("SELECT content FROM logs WHERE id = ?", id).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get log content: %w", err)
	}
	return content, nil
}

// UpdateContent replaces the content of one entry. Updating an id that
// does not exist returns domain.ErrNotFound.
func (s *Store) UpdateContent(id int64, content string) error {
	res, err := s.db.Exec("UPDATE logs SET content = ? WHERE id = ?", content, id)
	if err != nil {
		return fmt.Errorf("update log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update log: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByIDs removes every entry whose id is in ids and reports how
// many rows were actually deleted, which may be fewer than len(ids)
// when some ids do not exist. An empty list deletes nothing.
func (s *Store) DeleteByIDs(ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	res, err := s.db.Exec("DELETE FROM logs WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return 0, fmt.Errorf("delete logs: %w", err)
	}
	return res.RowsAffected()
}

// DeleteByDirectories removes every entry whose directory exactly
// equals one of dirs. Used for orphan cleanup, so matching is exact,
// not prefix-based.
func (s *Store) DeleteByDirectories(dirs []string) (int64, error) {
	if len(dirs) == 0 {
		return 0, nil
	}

	placeholders := strings.Repeat("?,", len(dirs)-1) + "?"
	args := make([]any, len(dirs))
	for i, dir := range dirs {
		args[i] = dir
	}

	res, err := s.db.Exec("DELETE FROM logs WHERE directory IN ("+placeholders+")", args...)
	if err != nil {
		return 0, fmt.Errorf("delete logs by directory: %w", err)
	}
	return res.RowsAffected()
}

// DistinctDirectories returns every unique directory currently holding
// at least one entry.
func (s *Store) DistinctDirectories() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT directory FROM logs")
	if err != nil {
		return nil, fmt.Errorf("list directories: %w", err)
	}
	defer rows.Close()

	var dirs []string
	for rows.Next() {
		var dir string
		if err := rows.Scan(&dir); err != nil {
			return nil, fmt.Errorf("scan directory: %w", err)
		}
		dirs = append(dirs, dir)
	}
	return dirs, rows.Err()
}

func scanEntries(rows *sql.Rows) ([]domain.LogEntry, error) {
	var entries []domain.LogEntry
	for rows.Next() {
		var e domain.LogEntry
		var tags sql.NullString
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Directory, &e.Content, &tags); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		e.Tags = tags.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
