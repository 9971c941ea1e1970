package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/haseeb-240/AiResume/internal/shared/metrics"
	"github.com/haseeb-240/AiResume/resume/content"
)

// Service contains business logic for resume records. It applies the
// ownership predicate before any record is returned or mutated; the repo
// below it trusts the ids it is given.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create validates and stores a new record for the owner.
func (s *Service) Create(ctx context.Context, ownerID, title, template string, c content.ResumeContent) (Record, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Record{}, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(title) == "" {
		return Record{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !ValidTemplate(template) {
		return Record{}, fmt.Errorf("%w: unknown template %q", ErrInvalidInput, template)
	}
	if errs := content.Validate(c); errs != nil {
		return Record{}, errs
	}

	now := time.Now().UTC()
	rec := Record{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		Template:  template,
		Content:   c,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	metrics.IncResumeCreated()
	return rec, nil
}

// List returns the owner's records, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]Record, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}
	return s.Repo.ListByOwner(ctx, ownerID)
}

// Get returns the record if it exists and belongs to the caller. A record
// owned by someone else is reported as not found, never as forbidden.
func (s *Service) Get(ctx context.Context, callerID, id string) (Record, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if !BelongsTo(rec, callerID) {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Update validates the patch and merges it into the caller's record.
func (s *Service) Update(ctx context.Context, callerID, id string, patch Patch) (Record, error) {
	if _, err := s.Get(ctx, callerID, id); err != nil {
		return Record{}, err
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return Record{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if patch.Template != nil && !ValidTemplate(*patch.Template) {
		return Record{}, fmt.Errorf("%w: unknown template %q", ErrInvalidInput, *patch.Template)
	}
	if patch.Content != nil {
		if errs := content.Validate(*patch.Content); errs != nil {
			return Record{}, errs
		}
	}
	rec, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return Record{}, err
	}
	metrics.IncResumeUpdated()
	return rec, nil
}

// Delete removes the caller's record. The repo-level delete is idempotent;
// not-found (including owner mismatch) surfaces here, mirroring update.
func (s *Service) Delete(ctx context.Context, callerID, id string) error {
	if _, err := s.Get(ctx, callerID, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.IncResumeDeleted()
	return nil
}
