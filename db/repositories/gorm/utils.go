package repositories_gorm

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"gitlab.com/nunet/sample-store/db/repositories"
)

// handleDBError is a utility function that translates GORM database errors into custom repository errors.
// The original error stays wrapped so callers can still inspect it.
func handleDBError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.WrapError(repositories.NotFoundError, err)
	case errors.Is(err, gorm.ErrInvalidData),
		errors.Is(err, gorm.ErrInvalidField),
		errors.Is(err, gorm.ErrInvalidValue):
		return repositories.WrapError(repositories.InvalidDataError, err)
	case errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint:
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return repositories.WrapError(repositories.DuplicateKeyError, err)
		default:
			return repositories.WrapError(repositories.InvalidDataError, err)
		}
	default:
		return repositories.WrapError(repositories.DatabaseError, err)
	}
}
