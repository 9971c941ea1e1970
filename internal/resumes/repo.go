package resumes

import "context"

// Repo defines persistence operations for resume records. Implementations
// trust the OwnerID they are given; ownership checks live in the service
// layer. Every operation hands back values, never aliases into stored state.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	// ListByOwner returns the owner's complete set, newest first by CreatedAt.
	ListByOwner(ctx context.Context, ownerID string) ([]Record, error)
	// Update merges the non-nil patch fields into the record and bumps
	// UpdatedAt. Returns ErrNotFound for an unknown id.
	Update(ctx context.Context, id string, patch Patch) (Record, error)
	// Delete is idempotent: removing an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
