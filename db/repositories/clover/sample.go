package repositories_clover

import (
	"context"

	clover "github.com/ostafen/clover/v2"

	"gitlab.com/nunet/sample-store/db/repositories"
	"gitlab.com/nunet/sample-store/models"
)

// SampleRepositoryClover is a Clover implementation of the SampleRepository interface.
// Clover assigns its own document keys, so sample IDs are not unique here.
type SampleRepositoryClover struct {
	repositories.GenericRepository[models.Sample]
}

// NewSampleRepository creates a new instance of SampleRepositoryClover.
// It creates the sample collection when missing.
func NewSampleRepository(db *clover.DB) (repositories.SampleRepository, error) {
	if err := EnsureCollection[models.Sample](db); err != nil {
		return nil, err
	}
	return &SampleRepositoryClover{
		NewGenericRepository[models.Sample](db),
	}, nil
}

// Insert stores sample as a new document.
func (repo *SampleRepositoryClover) Insert(ctx context.Context, sample models.Sample) error {
	sample.CreatedAt = repositories.StampCreatedAt(sample.CreatedAt)
	_, err := repo.Create(ctx, sample)
	return err
}

// SelectAll returns every stored sample, oldest first.
func (repo *SampleRepositoryClover) SelectAll(ctx context.Context) ([]models.Sample, error) {
	query := repo.GetQuery()
	query.SortBy = repositories.SampleSortBy
	return repo.FindAll(ctx, query)
}

// Delete removes every document whose id equals id and returns how many were removed.
func (repo *SampleRepositoryClover) Delete(ctx context.Context, id string) (int64, error) {
	query := repo.GetQuery()
	query.Conditions = append(query.Conditions, repositories.EQ("ID", id))
	return repo.DeleteAll(ctx, query)
}
