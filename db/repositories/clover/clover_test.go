package repositories_clover

import (
	"testing"

	clover "github.com/ostafen/clover/v2"
	"github.com/stretchr/testify/require"
)

// setup opens a clover database (bbolt under the hood) in a temporary directory
// that is removed when the test ends.
func setup(t *testing.T) *clover.DB {
	db, err := clover.Open(t.TempDir())
	require.NoError(t, err, "failed to connect to database")

	t.Cleanup(func() { teardown(db) })
	return db
}

// teardown closes the clover database.
func teardown(db *clover.DB) {
	db.Close()
}
