package repositories

import (
	"errors"
	"fmt"
)

// InvalidDataError represents an error indicating that the provided data is invalid.
var InvalidDataError = errors.New("Invalid data given")

// DuplicateKeyError represents an error indicating that a record with the same key already exists.
var DuplicateKeyError = errors.New("Record already exists")

// NotFoundError represents an error indicating that the requested record was not found.
var NotFoundError = errors.New("Record not found")

// DatabaseError represents a general error related to database operations.
var DatabaseError = errors.New("Database error")

// WrapError tags err with one of the repository error kinds. Both the kind and
// the original store error stay reachable through errors.Is and errors.As.
func WrapError(kind, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", kind, err)
}
