package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/haseeb-240/AiResume/internal/shared/auth"
)

// Service handles account registration and login.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Register creates a local account and returns the user with a signed token.
func (s *Service) Register(ctx context.Context, email, name, password string) (User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, "", errors.New("a valid email is required")
	}
	if len(password) < 8 {
		return User{}, "", errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, "", err
	}

	token, err := auth.IssueUserToken(user.ID, user.Email, user.Name)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token. A
// wrong password and an unknown email are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}
	if user.PasswordHash == "" {
		return User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := auth.IssueUserToken(user.ID, user.Email, user.Name)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// UpsertFromGoogle persists an OAuth identity so resume ownership is stable
// across sign-ins.
func (s *Service) UpsertFromGoogle(ctx context.Context, sub, email, name, picture string) (User, error) {
	if strings.TrimSpace(sub) == "" || strings.TrimSpace(email) == "" {
		return User{}, errors.New("google sub and email are required")
	}
	user := User{
		ID:        "google:" + sub,
		Email:     strings.ToLower(email),
		Name:      name,
		GoogleSub: sub,
		Picture:   picture,
	}
	if err := s.Repo.Upsert(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}
