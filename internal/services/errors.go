package services

import (
	"errors"
	"fmt"
)

// Ledger error kinds. Every error returned by the transaction and summary
// services matches exactly one of these under errors.Is.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

func invalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

func backendUnavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
}
