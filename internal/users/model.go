package users

import "time"

// User is an account holder. PasswordHash is empty for OAuth-only accounts
// and GoogleSub is empty for local accounts.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	GoogleSub    string
	Picture      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
