package postgres

import (
	"context"
	"errors"
	"fmt"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/repository/document"

	"github.com/jackc/pgx/v5"
)

const (
	selectDocumentQuery = `SELECT payload FROM ledger_document WHERE id = 1`
	upsertDocumentQuery = `
INSERT INTO ledger_document(id, payload, updated_at)
VALUES (1, $1::jsonb, NOW())
ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
`
)

// Load returns the stored ledger document, if any.
func (p *Postgres) Load(ctx context.Context) (entities.Snapshot, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	var payload []byte
	if err := p.db.QueryRow(ctx, selectDocumentQuery).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Snapshot{}, false, nil
		}
		p.log.Errorw("failed to load ledger document", "error", err)
		return entities.Snapshot{}, false, fmt.Errorf("select ledger document: %w", err)
	}

	snapshot, err := document.Decode(payload)
	if err != nil {
		return entities.Snapshot{}, false, err
	}
	return snapshot, true, nil
}

// Save overwrites the ledger document.
func (p *Postgres) Save(ctx context.Context, snapshot entities.Snapshot) error {
	payload, err := document.Encode(snapshot)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	if _, err := p.db.Exec(ctx, upsertDocumentQuery, string(payload)); err != nil {
		p.log.Errorw("failed to save ledger document", "error", err)
		return fmt.Errorf("upsert ledger document: %w", err)
	}
	return nil
}
