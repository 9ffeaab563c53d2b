package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.com/nunet/sample-store/db/repositories"
	"gitlab.com/nunet/sample-store/models"
)

// SampleService is the application side of the sample store. It fills in
// what callers may leave out and hands records to the repository.
type SampleService struct {
	repo repositories.SampleRepository
	now  func() time.Time
}

// NewSampleService returns a SampleService backed by repo.
func NewSampleService(repo repositories.SampleRepository) *SampleService {
	return &SampleService{repo: repo, now: time.Now}
}

// Add stores sample and returns it as stored. A missing ID is replaced with a
// random UUID and a zero CreatedAt with the current time.
func (s *SampleService) Add(ctx context.Context, sample models.Sample) (models.Sample, error) {
	if sample.ID == "" {
		sample.ID = uuid.NewString()
	}
	if sample.CreatedAt.IsZero() {
		sample.CreatedAt = s.now()
	}
	sample.CreatedAt = sample.CreatedAt.UTC()

	if err := s.repo.Insert(ctx, sample); err != nil {
		zlog.Ctx(ctx).Error("failed to insert sample", zap.String("id", sample.ID), zap.Error(err))
		return models.Sample{}, err
	}

	zlog.Ctx(ctx).Info("sample added", zap.String("id", sample.ID))
	return sample, nil
}

// List returns every stored sample, oldest first.
func (s *SampleService) List(ctx context.Context) ([]models.Sample, error) {
	samples, err := s.repo.SelectAll(ctx)
	if err != nil {
		zlog.Ctx(ctx).Error("failed to list samples", zap.Error(err))
		return nil, err
	}
	if samples == nil {
		samples = []models.Sample{}
	}
	return samples, nil
}

// Remove deletes the samples with the given ID and returns how many were removed.
func (s *SampleService) Remove(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		zlog.Ctx(ctx).Error("failed to delete sample", zap.String("id", id), zap.Error(err))
		return 0, err
	}

	zlog.Ctx(ctx).Info("sample delete", zap.String("id", id), zap.Int64("deleted", deleted))
	return deleted, nil
}
