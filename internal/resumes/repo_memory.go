package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores resume records in memory and is safe for concurrent use.
// It backs dev mode and tests when no database is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Record)}
}

// Create stores the record.
func (r *MemoryRepo) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[rec.ID] = rec.clone()
	return nil
}

// GetByID returns a record by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec.clone(), nil
}

// ListByOwner returns all records for an owner, newest first. Ties break on
// id so the order is stable across calls within one store instance.
func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	records := make([]Record, 0)
	for _, rec := range r.byID {
		if rec.OwnerID == ownerID {
			records = append(records, rec.clone())
		}
	}
	r.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// Update merges the patch into the stored record and bumps UpdatedAt.
func (r *MemoryRepo) Update(ctx context.Context, id string, patch Patch) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}

	if patch.Title != nil {
		rec.Title = *patch.Title
	}
	if patch.Template != nil {
		rec.Template = *patch.Template
	}
	if patch.Content != nil {
		rec.Content = patch.Content.Clone()
	}

	now := time.Now().UTC()
	if !now.After(rec.UpdatedAt) {
		// UpdatedAt must strictly advance even within clock resolution.
		now = rec.UpdatedAt.Add(time.Nanosecond)
	}
	rec.UpdatedAt = now

	r.byID[id] = rec.clone()
	return rec.clone(), nil
}

// Delete removes a record. Deleting an unknown id is a no-op.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}
