package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Repo persists user accounts.
type Repo interface {
	// Create stores a new user. A duplicate email returns ErrEmailTaken.
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// Upsert inserts or refreshes a user keyed by ID, used by OAuth sign-in.
	Upsert(ctx context.Context, user User) error
}
