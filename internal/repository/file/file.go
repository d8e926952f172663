// Package file implements the repository as a JSON document on local disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"club-transfer-ledger/config"
	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/repository/document"

	"go.uber.org/zap"
)

// File keeps the ledger document at a single path.
type File struct {
	log  *zap.SugaredLogger
	path string
}

// New creates a file repository instance.
func New(log *zap.SugaredLogger, cfg config.FileConfig) *File {
	return &File{
		log:  log.Named("repo.file"),
		path: cfg.Path,
	}
}

// OnStart makes sure the parent directory exists.
func (f *File) OnStart(_ context.Context) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o750); err != nil {
		return fmt.Errorf("create dirs: %w", err)
	}
	f.log.Infow("file storage ready", "path", f.path)
	return nil
}

// OnStop is a no-op; every save is already durable.
func (f *File) OnStop(_ context.Context) error {
	return nil
}

// Load reads and decodes the document.
func (f *File) Load(_ context.Context) (entities.Snapshot, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return entities.Snapshot{}, false, nil
	}
	if err != nil {
		return entities.Snapshot{}, false, fmt.Errorf("read %s: %w", f.path, err)
	}

	s, err := document.Decode(data)
	if err != nil {
		return entities.Snapshot{}, false, err
	}
	return s, true, nil
}

// Save writes the document to a temp file and renames it over the target.
func (f *File) Save(ctx context.Context, s entities.Snapshot) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := document.Encode(s)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
