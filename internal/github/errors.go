package github

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidURL = errors.New("invalid GitHub URL")
	ErrNotFound   = errors.New("not found")

	ErrUserNotFound error = &NotFoundError{Message: "User not found"}
	ErrRepoNotFound error = &NotFoundError{Message: "repository not found"}
)

// NotFoundError is a 404 from GitHub. It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// APIError carries a non-2xx GitHub response and its "message" field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github api request failed (%d)", e.StatusCode)
	}
	return fmt.Sprintf("github api request failed (%d): %s", e.StatusCode, e.Message)
}
