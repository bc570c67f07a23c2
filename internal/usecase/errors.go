package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("resource not found")
	ErrDataStoreUnavailable = errors.New("data store unavailable")
)

var (
	ErrUnknownLeague  = fmt.Errorf("%w: unknown league", ErrNotFound)
	ErrPlayerNotFound = fmt.Errorf("%w: player not found", ErrNotFound)
)

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDataStoreUnavailable, op, err)
}
