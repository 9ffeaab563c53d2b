package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/nunet/sample-store/db/repositories/repositorytest"
	"gitlab.com/nunet/sample-store/internal/config"
	"gitlab.com/nunet/sample-store/models"
)

func TestNewSampleRepository(t *testing.T) {
	drivers := []string{DriverSQLite, DriverClover, DriverMemory}

	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			dataDir := t.TempDir()
			repo, closer, err := NewSampleRepository(config.DB{Driver: driver}, dataDir)
			require.NoError(t, err)
			defer closer()

			ctx := context.Background()
			sample := repositorytest.NewSample()
			require.NoError(t, repo.Insert(ctx, sample))

			samples, err := repo.SelectAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{sample.ID}, repositorytest.IDs(samples))
		})
	}
}

// TestSQLiteStorePersists reopens the same file and expects the records to still be there.
func TestSQLiteStorePersists(t *testing.T) {
	cfg := config.DB{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "nested", "store.db")}
	ctx := context.Background()

	repo, closer, err := NewSampleRepository(cfg, "")
	require.NoError(t, err)
	require.NoError(t, repo.Insert(ctx, models.Sample{ID: "kept", Name: "kept"}))
	require.NoError(t, closer())

	repo, closer, err = NewSampleRepository(cfg, "")
	require.NoError(t, err)
	defer closer()

	samples, err := repo.SelectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, repositorytest.IDs(samples))
}

func TestNewSampleRepositoryUnknownDriver(t *testing.T) {
	_, _, err := NewSampleRepository(config.DB{Driver: "mongo"}, t.TempDir())
	assert.ErrorContains(t, err, "unknown database driver")
}

func TestCloverStoreHeldByAnotherOpen(t *testing.T) {
	cfg := config.DB{Driver: DriverClover, Path: t.TempDir(), LockTimeout: 100 * time.Millisecond}

	_, closer, err := NewSampleRepository(cfg, "")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, second, err := NewSampleRepository(cfg, "")
		if err == nil {
			second()
		}
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrStoreLocked)
	case <-time.After(5 * time.Second):
		t.Fatal("second open of a held clover store did not return")
	}

	require.NoError(t, closer())

	repo, closer, err := NewSampleRepository(cfg, "")
	require.NoError(t, err)
	defer closer()
	require.NoError(t, repo.Insert(context.Background(), models.Sample{ID: "after", Name: "after"}))
}
