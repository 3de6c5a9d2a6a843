package service

import (
	"errors"
	"fmt"

	"rentacar-backend/internal/repository"
)

// Validation failures are returned to the caller as one of these kinds and
// never retried. Anything else coming out of the storage layer is wrapped
// in a PersistenceError.
var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidWindow          = errors.New("invalid rental window")
	ErrVehicleUnavailable     = errors.New("vehicle unavailable")
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// PersistenceError marks a storage-layer failure. Multi-write operations
// roll back before surfacing one.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// storeErr classifies an error returned by a repository: missing rows map
// to ErrNotFound, everything else becomes a PersistenceError.
func storeErr(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return &PersistenceError{Op: op, Err: err}
}
