package repositories_memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"gitlab.com/nunet/sample-store/db/repositories"
	"gitlab.com/nunet/sample-store/db/repositories/repositorytest"
)

func newTestRepository(*testing.T) repositories.SampleRepository {
	return NewSampleRepository()
}

func TestSampleRepository(t *testing.T) {
	suite.Run(t, repositorytest.NewSampleRepositorySuite(newTestRepository))
}

func TestSampleRepositoryProperties(t *testing.T) {
	repositorytest.CheckProperties(t, newTestRepository)
}

func TestSampleRepositoryConcurrentAccess(t *testing.T) {
	repo := NewSampleRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sample := repositorytest.NewSample()
			assert.NoError(t, repo.Insert(ctx, sample))
			_, err := repo.SelectAll(ctx)
			assert.NoError(t, err)
			deleted, err := repo.Delete(ctx, sample.ID)
			assert.NoError(t, err)
			assert.Equal(t, int64(1), deleted)
		}()
	}
	wg.Wait()

	samples, err := repo.SelectAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestSampleRepositoryCancelledContext(t *testing.T) {
	repo := NewSampleRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Insert(ctx, repositorytest.NewSample()), context.Canceled)
	_, err := repo.SelectAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.Delete(ctx, "a1")
	assert.ErrorIs(t, err, context.Canceled)
}
