package repositories

import (
	"context"
	"time"

	"gitlab.com/nunet/sample-store/models"
)

// SampleSortBy is the order every SampleRepository returns records in:
// oldest first, ties broken by ID.
const SampleSortBy = "CreatedAt,ID"

// SampleRepository is the gateway to the stored Sample records.
type SampleRepository interface {
	// Insert persists a single record. The record is stored as given;
	// a zero CreatedAt is stamped with the current time.
	Insert(ctx context.Context, sample models.Sample) error
	// SelectAll returns every stored record ordered by SampleSortBy.
	// An empty store yields an empty slice, not an error.
	SelectAll(ctx context.Context) ([]models.Sample, error)
	// Delete removes the records whose ID equals id and returns how many were removed.
	// Zero means nothing matched and is not an error.
	Delete(ctx context.Context, id string) (int64, error)
}

// StampCreatedAt returns createdAt in UTC, or the current UTC time when createdAt is zero.
// Backends store creation times in UTC so that they compare in a single zone.
func StampCreatedAt(createdAt time.Time) time.Time {
	if createdAt.IsZero() {
		return time.Now().UTC()
	}
	return createdAt.UTC()
}
