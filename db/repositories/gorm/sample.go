package repositories_gorm

import (
	"context"

	"gorm.io/gorm"

	"gitlab.com/nunet/sample-store/db/repositories"
	"gitlab.com/nunet/sample-store/models"
)

// SampleRepositoryGORM is a GORM implementation of the SampleRepository interface.
type SampleRepositoryGORM struct {
	repositories.GenericRepository[models.Sample]
}

// NewSampleRepository creates a new instance of SampleRepositoryGORM.
// It initializes and returns a GORM-based repository for Sample entities.
func NewSampleRepository(db *gorm.DB) repositories.SampleRepository {
	return &SampleRepositoryGORM{
		NewGenericRepository[models.Sample](db),
	}
}

// Insert stores sample. The ID is the primary key, inserting an ID twice fails with DuplicateKeyError.
func (repo *SampleRepositoryGORM) Insert(ctx context.Context, sample models.Sample) error {
	sample.CreatedAt = repositories.StampCreatedAt(sample.CreatedAt)
	_, err := repo.Create(ctx, sample)
	return err
}

// SelectAll returns every stored sample, oldest first.
func (repo *SampleRepositoryGORM) SelectAll(ctx context.Context) ([]models.Sample, error) {
	query := repo.GetQuery()
	query.SortBy = repositories.SampleSortBy
	return repo.FindAll(ctx, query)
}

// Delete removes the samples with the given ID and returns how many rows went away.
func (repo *SampleRepositoryGORM) Delete(ctx context.Context, id string) (int64, error) {
	query := repo.GetQuery()
	query.Conditions = append(query.Conditions, repositories.EQ("ID", id))
	return repo.DeleteAll(ctx, query)
}
