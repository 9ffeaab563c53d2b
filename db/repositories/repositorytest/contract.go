// Package repositorytest holds the behavior every SampleRepository backend
// must show, packaged as a testify suite and a rapid property check.
package repositorytest

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"gitlab.com/nunet/sample-store/db/repositories"
	"gitlab.com/nunet/sample-store/models"
)

// Factory returns an empty repository. It is called once per test and once
// per property check iteration; cleanup goes through t.Cleanup.
type Factory func(t *testing.T) repositories.SampleRepository

// SampleRepositorySuite runs the SampleRepository contract against the
// repository built by NewRepository.
type SampleRepositorySuite struct {
	suite.Suite
	NewRepository Factory

	repo repositories.SampleRepository
	ctx  context.Context
}

// NewSampleRepositorySuite returns a suite ready for suite.Run.
func NewSampleRepositorySuite(factory Factory) *SampleRepositorySuite {
	return &SampleRepositorySuite{NewRepository: factory}
}

func (s *SampleRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.NewRepository(s.T())
}

func (s *SampleRepositorySuite) TestSelectAllOnEmptyStore() {
	samples, err := s.repo.SelectAll(s.ctx)
	s.Require().NoError(err)
	s.NotNil(samples)
	s.Empty(samples)
}

func (s *SampleRepositorySuite) TestInsertThenSelectAll() {
	sample := NewSample()
	s.Require().NoError(s.repo.Insert(s.ctx, sample))

	samples, err := s.repo.SelectAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(samples, 1)
	s.Equal(sample.ID, samples[0].ID)
	s.Equal(sample.Name, samples[0].Name)
	s.Equal(sample.Description, samples[0].Description)
	s.False(samples[0].CreatedAt.IsZero())
}

func (s *SampleRepositorySuite) TestInsertKeepsCreatedAt() {
	createdAt := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	s.Require().NoError(s.repo.Insert(s.ctx, NewSampleAt("fixed", createdAt)))

	samples, err := s.repo.SelectAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(samples, 1)
	s.True(createdAt.Equal(samples[0].CreatedAt), "got %s", samples[0].CreatedAt)
}

func (s *SampleRepositorySuite) TestSelectAllOrder() {
	base := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.repo.Insert(s.ctx, NewSampleAt("c", base.Add(2*time.Hour))))
	s.Require().NoError(s.repo.Insert(s.ctx, NewSampleAt("b", base)))
	s.Require().NoError(s.repo.Insert(s.ctx, NewSampleAt("a", base)))
	s.Require().NoError(s.repo.Insert(s.ctx, NewSampleAt("d", base.Add(time.Hour))))

	samples, err := s.repo.SelectAll(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "d", "c"}, IDs(samples))
}

func (s *SampleRepositorySuite) TestDeleteMissingIdentifier() {
	sample := NewSample()
	s.Require().NoError(s.repo.Insert(s.ctx, sample))

	deleted, err := s.repo.Delete(s.ctx, "does-not-exist")
	s.Require().NoError(err)
	s.Equal(int64(0), deleted)

	samples, err := s.repo.SelectAll(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{sample.ID}, IDs(samples))
}

func (s *SampleRepositorySuite) TestDeleteOnEmptyStore() {
	deleted, err := s.repo.Delete(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal(int64(0), deleted)
}

func (s *SampleRepositorySuite) TestDeleteExistingIdentifier() {
	base := time.Now()
	keep := NewSampleAt("keep", base)
	drop := NewSampleAt("drop", base.Add(time.Second))
	s.Require().NoError(s.repo.Insert(s.ctx, keep))
	s.Require().NoError(s.repo.Insert(s.ctx, drop))

	deleted, err := s.repo.Delete(s.ctx, drop.ID)
	s.Require().NoError(err)
	s.GreaterOrEqual(deleted, int64(1))

	samples, err := s.repo.SelectAll(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{keep.ID}, IDs(samples))

	deleted, err = s.repo.Delete(s.ctx, drop.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), deleted)
}

// TestRoundTrip is the example exchange: insert a1, list it, delete it, list nothing.
func (s *SampleRepositorySuite) TestRoundTrip() {
	s.Require().NoError(s.repo.Insert(s.ctx, models.Sample{ID: "a1", Name: "first"}))

	samples, err := s.repo.SelectAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(samples, 1)
	s.Equal("a1", samples[0].ID)
	s.Equal("first", samples[0].Name)

	deleted, err := s.repo.Delete(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	samples, err = s.repo.SelectAll(s.ctx)
	s.Require().NoError(err)
	s.NotNil(samples)
	s.Empty(samples)
}

// CheckProperties draws random sets of samples and random deletions and
// checks select-all and delete counts against a model of the expected contents.
func CheckProperties(t *testing.T, factory Factory) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		repo := factory(t)

		ids := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[a-z0-9]{1,12}`), 0, 12, rapid.ID[string],
		).Draw(rt, "ids")

		base := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
		expected := map[string]bool{}
		for i, id := range ids {
			offset := rapid.IntRange(0, 5).Draw(rt, "offset")
			sample := NewSampleAt(id, base.Add(time.Duration(offset)*time.Minute+time.Duration(i)))
			require.NoError(rt, repo.Insert(ctx, sample))
			expected[id] = true
		}

		stored, err := repo.SelectAll(ctx)
		require.NoError(rt, err)
		require.NotNil(rt, stored)
		require.ElementsMatch(rt, ids, IDs(stored))
		requireOrdered(rt, stored)

		for _, id := range ids {
			if !rapid.Bool().Draw(rt, "delete "+id) {
				continue
			}
			deleted, err := repo.Delete(ctx, id)
			require.NoError(rt, err)
			require.Equal(rt, int64(1), deleted)
			delete(expected, id)

			deleted, err = repo.Delete(ctx, id)
			require.NoError(rt, err)
			require.Equal(rt, int64(0), deleted)
		}

		missing := rapid.StringMatching(`[A-Z]{1,8}`).Draw(rt, "missing")
		deleted, err := repo.Delete(ctx, missing)
		require.NoError(rt, err)
		require.Equal(rt, int64(0), deleted)

		remaining, err := repo.SelectAll(ctx)
		require.NoError(rt, err)
		want := make([]string, 0, len(expected))
		for id := range expected {
			want = append(want, id)
		}
		require.ElementsMatch(rt, want, IDs(remaining))
		requireOrdered(rt, remaining)
	})
}

func requireOrdered(t require.TestingT, samples []models.Sample) {
	ordered := sort.SliceIsSorted(samples, func(i, j int) bool {
		if !samples[i].CreatedAt.Equal(samples[j].CreatedAt) {
			return samples[i].CreatedAt.Before(samples[j].CreatedAt)
		}
		return samples[i].ID < samples[j].ID
	})
	require.True(t, ordered, "samples out of order: %v", IDs(samples))
}
