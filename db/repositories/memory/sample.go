package repositories_memory

import (
	"context"
	"sort"
	"sync"

	"gitlab.com/nunet/sample-store/db/repositories"
	"gitlab.com/nunet/sample-store/models"
)

// SampleRepositoryMemory keeps samples in process memory. It does not enforce
// unique IDs. Contents are lost when the process exits.
type SampleRepositoryMemory struct {
	mu      sync.RWMutex
	samples []models.Sample
}

// NewSampleRepository returns an empty in-memory SampleRepository.
func NewSampleRepository() repositories.SampleRepository {
	return &SampleRepositoryMemory{}
}

func (repo *SampleRepositoryMemory) Insert(ctx context.Context, sample models.Sample) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sample.CreatedAt = repositories.StampCreatedAt(sample.CreatedAt)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.samples = append(repo.samples, sample)
	return nil
}

func (repo *SampleRepositoryMemory) SelectAll(ctx context.Context) ([]models.Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	samples := make([]models.Sample, len(repo.samples))
	copy(samples, repo.samples)
	repo.mu.RUnlock()

	sort.SliceStable(samples, func(i, j int) bool {
		if !samples[i].CreatedAt.Equal(samples[j].CreatedAt) {
			return samples[i].CreatedAt.Before(samples[j].CreatedAt)
		}
		return samples[i].ID < samples[j].ID
	})
	return samples, nil
}

func (repo *SampleRepositoryMemory) Delete(ctx context.Context, id string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	kept := repo.samples[:0]
	var deleted int64
	for _, sample := range repo.samples {
		if sample.ID == id {
			deleted++
			continue
		}
		kept = append(kept, sample)
	}
	repo.samples = kept
	return deleted, nil
}
