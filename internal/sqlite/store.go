// Package sqlite persists design sessions in a SQLite database under the
// data directory. Sessions are stored in their range-string form (CONTIGS
// and INPAINT_SEQ); residue state maps are reconstructed on load by
// re-reading the structure file and applying the stored strings.
package sqlite

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/foldworks/contigctl/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created inside the data directory.
const dbFileName = "contigctl.db"

// timeLayout is the timestamp format stored in the database.
const timeLayout = time.RFC3339Nano

// SessionRecord is the persisted form of a design session.
type SessionRecord struct {
	SessionID     string    `json:"session_id"`
	Name          string    `json:"name"`
	StructurePath string    `json:"structure_path"`
	Contigs       string    `json:"contigs"`
	InpaintSeq    string    `json:"inpaint_seq"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Store is a SQLite-backed session store.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates the data directory if needed, opens the database inside it,
// and applies the schema.
func Open(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection. Safe to call more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Put inserts the record, or replaces the row with the same session ID.
func (s *Store) Put(rec SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO sessions
		(session_id, name, structure_path, contigs, inpaint_seq, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			name = excluded.name,
			structure_path = excluded.structure_path,
			contigs = excluded.contigs,
			inpaint_seq = excluded.inpaint_seq,
			updated_at = excluded.updated_at`,
		rec.SessionID, rec.Name, rec.StructurePath, rec.Contigs, rec.InpaintSeq,
		rec.CreatedAt.UTC().Format(timeLayout), rec.UpdatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// Get returns the session with the given ID, or types.ErrNotFound.
func (s *Store) Get(sessionID string) (SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`SELECT session_id, name, structure_path, contigs,
		inpaint_seq, created_at, updated_at
		FROM sessions WHERE session_id = ?`, sessionID)
	return scanSession(row)
}

// Latest returns the most recently updated session, or types.ErrNotFound if
// the store is empty.
func (s *Store) Latest() (SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`SELECT session_id, name, structure_path, contigs,
		inpaint_seq, created_at, updated_at
		FROM sessions ORDER BY updated_at DESC LIMIT 1`)
	return scanSession(row)
}

// List returns all sessions, most recently updated first.
func (s *Store) List() ([]SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT session_id, name, structure_path, contigs,
		inpaint_seq, created_at, updated_at
		FROM sessions ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Delete removes the session with the given ID. Returns types.ErrNotFound
// if no such session exists.
func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM sessions WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanSession reads one sessions row into a SessionRecord.
func scanSession(row scanner) (SessionRecord, error) {
	var rec SessionRecord
	var createdAt, updatedAt string

	err := row.Scan(&rec.SessionID, &rec.Name, &rec.StructurePath,
		&rec.Contigs, &rec.InpaintSeq, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionRecord{}, types.ErrNotFound
	}
	if err != nil {
		return SessionRecord{}, fmt.Errorf("scan session: %w", err)
	}

	if rec.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return SessionRecord{}, fmt.Errorf("parse created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return SessionRecord{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return rec, nil
}
