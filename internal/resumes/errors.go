package resumes

import "errors"

var (
	// ErrNotFound indicates the record does not exist or does not belong to
	// the caller. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("resume not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
