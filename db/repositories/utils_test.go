package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gitlab.com/nunet/sample-store/models"
)

// TestEmptyValue tests the IsEmptyValue function for checking if a struct has non zero value.
// It asserts that the function correctly identifies empty and non-empty structs (or a pointer to a struct).
func TestEmptyValue(t *testing.T) {
	// nil and nil pointers are empty
	assert.Equal(t, true, IsEmptyValue(nil))
	assert.Equal(t, true, IsEmptyValue((*models.Sample)(nil)))

	// Empty struct and its pointer should be considered empty
	assert.Equal(t, true, IsEmptyValue(models.Sample{}))
	assert.Equal(t, true, IsEmptyValue(&models.Sample{}))

	// Struct and its pointer with non-zero field should not be considered empty
	assert.Equal(t, false, IsEmptyValue(models.Sample{ID: "a1"}))
	assert.Equal(t, false, IsEmptyValue(&models.Sample{CreatedAt: time.Now()}))
}

func TestFieldJSONTag(t *testing.T) {
	assert.Equal(t, "id", FieldJSONTag[models.Sample]("ID"))
	assert.Equal(t, "description", FieldJSONTag[models.Sample]("Description"))
	assert.Equal(t, "created_at", FieldJSONTag[models.Sample]("CreatedAt"))
	assert.Equal(t, "Unknown", FieldJSONTag[models.Sample]("Unknown"))
	assert.Equal(t, "ID", FieldJSONTag[int]("ID"))
}

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		sortBy string
		want   []SortField
	}{
		{sortBy: "", want: nil},
		{sortBy: "ID", want: []SortField{{Field: "ID"}}},
		{sortBy: "-CreatedAt", want: []SortField{{Field: "CreatedAt", Desc: true}}},
		{
			sortBy: "CreatedAt, -ID,,",
			want:   []SortField{{Field: "CreatedAt"}, {Field: "ID", Desc: true}},
		},
		{sortBy: "-", want: nil},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseSortBy(tc.sortBy), tc.sortBy)
	}
}

func TestWrapError(t *testing.T) {
	cause := assert.AnError

	err := WrapError(DatabaseError, cause)
	assert.ErrorIs(t, err, DatabaseError)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, NotFoundError)

	assert.NoError(t, WrapError(DatabaseError, nil))
}

func TestStampCreatedAt(t *testing.T) {
	before := time.Now()
	stamped := StampCreatedAt(time.Time{})
	assert.False(t, stamped.Before(before.Add(-time.Second)))
	assert.Equal(t, time.UTC, stamped.Location())

	zone := time.FixedZone("UTC+2", 2*60*60)
	given := time.Date(2020, 5, 6, 9, 0, 0, 0, zone)
	stamped = StampCreatedAt(given)
	assert.True(t, given.Equal(stamped))
	assert.Equal(t, time.UTC, stamped.Location())
}
