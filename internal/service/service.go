package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperr "floodwatch/internal/errors"
	"floodwatch/internal/repository"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

// load maps a repository miss to NotFound("<what> not found") and wraps anything else.
func load[T any](v *T, err error, what string) (*T, error) {
	if err == nil {
		return v, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound(what + " not found")
	}
	return nil, fmt.Errorf("load %s: %w", what, err)
}

// requiredText trims v and rejects it when empty.
func requiredText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", apperr.BadRequest(field + " is required")
	}
	return v, nil
}

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return defaultListLimit
	case n > maxListLimit:
		return maxListLimit
	default:
		return n
	}
}
