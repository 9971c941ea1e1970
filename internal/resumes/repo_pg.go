package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo on Postgres. Content is stored as a single JSONB
// value so a record round-trips losslessly.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new record.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO resumes (id, owner_id, title, template, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	payload, err := json.Marshal(rec.Content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.OwnerID,
		rec.Title,
		rec.Template,
		payload,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

// GetByID fetches a record by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Record, error) {
	const query = `
SELECT id, owner_id, title, template, content, created_at, updated_at
FROM resumes
WHERE id = $1`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

// ListByOwner lists an owner's records newest first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Record, error) {
	const query = `
SELECT id, owner_id, title, template, content, created_at, updated_at
FROM resumes
WHERE owner_id = $1
ORDER BY created_at DESC, id`

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		var payload []byte
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Title, &rec.Template, &payload, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &rec.Content); err != nil {
			return nil, fmt.Errorf("unmarshal content for %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update merges non-nil patch fields and bumps updated_at. The whole record
// is written in one statement, so a partial write is never visible.
func (r *PGRepo) Update(ctx context.Context, id string, patch Patch) (Record, error) {
	const query = `
UPDATE resumes
SET title = COALESCE($2, title),
    template = COALESCE($3, template),
    content = COALESCE($4, content),
    updated_at = $5
WHERE id = $1
RETURNING id, owner_id, title, template, content, created_at, updated_at`

	var title, template sql.NullString
	if patch.Title != nil {
		title = sql.NullString{String: *patch.Title, Valid: true}
	}
	if patch.Template != nil {
		template = sql.NullString{String: *patch.Template, Valid: true}
	}
	var payload any
	if patch.Content != nil {
		b, err := json.Marshal(*patch.Content)
		if err != nil {
			return Record{}, fmt.Errorf("marshal content: %w", err)
		}
		payload = b
	}

	return r.scanOne(r.DB.QueryRowContext(ctx, query, id, title, template, payload, time.Now().UTC()))
}

// Delete removes a record; an unknown id is a silent no-op.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM resumes WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

func (r *PGRepo) scanOne(row *sql.Row) (Record, error) {
	var rec Record
	var payload []byte
	err := row.Scan(&rec.ID, &rec.OwnerID, &rec.Title, &rec.Template, &payload, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if err := json.Unmarshal(payload, &rec.Content); err != nil {
		return Record{}, fmt.Errorf("unmarshal content for %s: %w", rec.ID, err)
	}
	return rec, nil
}

var _ Repo = (*PGRepo)(nil)
