package repositories_clover

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"gitlab.com/nunet/sample-store/db/repositories"
	"gitlab.com/nunet/sample-store/db/repositories/repositorytest"
	"gitlab.com/nunet/sample-store/models"
)

func newTestRepository(t *testing.T) repositories.SampleRepository {
	repo, err := NewSampleRepository(setup(t))
	require.NoError(t, err)
	return repo
}

func TestSampleRepository(t *testing.T) {
	suite.Run(t, repositorytest.NewSampleRepositorySuite(newTestRepository))
}

func TestSampleRepositoryProperties(t *testing.T) {
	repositorytest.CheckProperties(t, newTestRepository)
}

func TestCollectionName(t *testing.T) {
	assert.Equal(t, "sample", CollectionName[models.Sample]())
}

func TestEnsureCollectionIsIdempotent(t *testing.T) {
	db := setup(t)
	require.NoError(t, EnsureCollection[models.Sample](db))
	require.NoError(t, EnsureCollection[models.Sample](db))

	exists, err := db.HasCollection(CollectionName[models.Sample]())
	require.NoError(t, err)
	assert.True(t, exists)
}

// TestSampleRepositoryRepeatedID shows that clover keeps both copies of an ID
// and that Delete reports each of them.
func TestSampleRepositoryRepeatedID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	sample := repositorytest.NewSample()
	require.NoError(t, repo.Insert(ctx, sample))
	require.NoError(t, repo.Insert(ctx, sample))

	deleted, err := repo.Delete(ctx, sample.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	samples, err := repo.SelectAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestSampleRepositoryCancelledContext(t *testing.T) {
	repo := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Insert(ctx, repositorytest.NewSample()), context.Canceled)
	_, err := repo.SelectAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.Delete(ctx, "a1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenericRepository(t *testing.T) {
	db := setup(t)
	require.NoError(t, EnsureCollection[models.Sample](db))
	repo := NewGenericRepository[models.Sample](db)
	ctx := context.Background()
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"s1", "s2", "s3", "s4"} {
		sample := repositorytest.NewSampleAt(id, base.Add(time.Duration(i)*time.Hour))
		if id == "s2" || id == "s4" {
			sample.Name = "even"
		}
		_, err := repo.Create(ctx, sample)
		require.NoError(t, err)
	}

	query := repo.GetQuery()
	query.Conditions = append(query.Conditions, repositories.EQ("ID", "s3"))
	found, err := repo.Find(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "s3", found.ID)

	query = repo.GetQuery()
	query.Conditions = append(query.Conditions, repositories.EQ("ID", "nope"))
	_, err = repo.Find(ctx, query)
	assert.ErrorIs(t, err, repositories.NotFoundError)

	query = repo.GetQuery()
	query.Instance = models.Sample{Name: "even"}
	query.SortBy = "-CreatedAt"
	evens, err := repo.FindAll(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, []string{"s4", "s2"}, repositorytest.IDs(evens))

	query = repo.GetQuery()
	query.SortBy = "ID"
	query.Limit = 2
	query.Offset = 1
	page, err := repo.FindAll(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, []string{"s2", "s3"}, repositorytest.IDs(page))

	query = repo.GetQuery()
	query.Conditions = append(query.Conditions,
		repositories.IN("ID", []interface{}{"s1", "s2", "s3"}),
		repositories.NEQ("Name", "even"),
	)
	count, err := repo.Count(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	query = repo.GetQuery()
	query.Conditions = append(query.Conditions, repositories.LIKE("Name", "ev_%"))
	deleted, err := repo.DeleteAll(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = repo.DeleteAll(ctx, repo.GetQuery())
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestLikeToRegexp(t *testing.T) {
	assert.Equal(t, "^ev.*$", likeToRegexp("ev%"))
	assert.Equal(t, "^a.c$", likeToRegexp("a_c"))
	assert.Equal(t, `^1\.5$`, likeToRegexp("1.5"))
}
