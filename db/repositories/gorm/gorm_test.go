package repositories_gorm

import (
	"fmt"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gitlab.com/nunet/sample-store/models"
)

// setup opens a private in-memory SQLite database for a single test.
// Additionally, it automatically migrates the necessary models to ensure the schema is up-to-date.
func setup(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", randomdata.RandStringRunes(16))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect to database")

	require.NoError(t, db.AutoMigrate(&models.Sample{}))

	t.Cleanup(func() { teardown(db) })
	return db
}

// teardown closes the underlying connection pool, which drops the in-memory database.
func teardown(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
