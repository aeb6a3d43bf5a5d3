package github

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var (
	ErrUnauthorized      = errors.New("github rejected the credentials")
	ErrRateLimited       = errors.New("github rate limit exceeded")
	ErrUnknownCollection = errors.New("unknown collection")
)

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode       int
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("github api returned status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known statuses to sentinel errors
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden, http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return nil
}

// retryable reports whether a request that failed with err may be repeated
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
