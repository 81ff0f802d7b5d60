package github

import (
	"fmt"
	"time"
)

// APIError is any non-success GitHub response that is not a rate limit.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github api error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("github api error (%d): %s", e.StatusCode, e.Message)
}

// NotFoundError marks a missing resource (404).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("github: %s not found", e.Resource)
}

// RateLimitError carries the instant the quota resets.
type RateLimitError struct {
	Reset time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.Reset.Format(time.RFC3339))
}
