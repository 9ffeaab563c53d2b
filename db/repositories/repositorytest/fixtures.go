package repositorytest

import (
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"

	"gitlab.com/nunet/sample-store/models"
)

// NewSample returns a populated sample with a random ID.
func NewSample() models.Sample {
	return models.Sample{
		ID:          uuid.NewString(),
		Name:        randomdata.SillyName(),
		Description: randomdata.Paragraph(),
	}
}

// NewSampleAt returns a populated sample with the given ID and creation time.
func NewSampleAt(id string, createdAt time.Time) models.Sample {
	sample := NewSample()
	sample.ID = id
	sample.CreatedAt = createdAt
	return sample
}

// IDs returns the IDs of samples in order.
func IDs(samples []models.Sample) []string {
	ids := make([]string, 0, len(samples))
	for _, sample := range samples {
		ids = append(ids, sample.ID)
	}
	return ids
}
