// Package sqlite implements the repository as a single-row SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"club-transfer-ledger/config"
	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/repository/document"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS ledger_document (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	payload BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`
	selectDocumentQuery = `SELECT payload FROM ledger_document WHERE id = 1`
	upsertDocumentQuery = `INSERT INTO ledger_document(id, payload, updated_at) VALUES (1, ?, ?)
ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
)

// SQLite stores the ledger document in a local database file.
type SQLite struct {
	log  *zap.SugaredLogger
	db   *sql.DB
	path string
}

// New creates a SQLite repository instance.
func New(log *zap.SugaredLogger, cfg config.SQLiteConfig) *SQLite {
	return &SQLite{
		log:  log.Named("repo.sqlite"),
		path: cfg.Path,
	}
}

// OnStart opens the database and creates the document table.
func (s *SQLite) OnStart(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, createTableQuery); err != nil {
		_ = db.Close()
		return fmt.Errorf("create ledger_document table: %w", err)
	}

	s.db = db
	s.log.Infow("sqlite ready", "path", s.path)
	return nil
}

// OnStop closes the database.
func (s *SQLite) OnStop(_ context.Context) error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the stored document, if any.
func (s *SQLite) Load(ctx context.Context) (entities.Snapshot, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, selectDocumentQuery).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Snapshot{}, false, nil
	}
	if err != nil {
		return entities.Snapshot{}, false, fmt.Errorf("select ledger document: %w", err)
	}

	snapshot, err := document.Decode(payload)
	if err != nil {
		return entities.Snapshot{}, false, err
	}
	return snapshot, true, nil
}

// Save overwrites the document inside a transaction.
func (s *SQLite) Save(ctx context.Context, snapshot entities.Snapshot) (retErr error) {
	payload, err := document.Encode(snapshot)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, upsertDocumentQuery, payload, document.FormatTime(time.Now())); err != nil {
		return fmt.Errorf("upsert ledger document: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
