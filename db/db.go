package db

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	clover "github.com/ostafen/clover/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.etcd.io/bbolt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gitlab.com/nunet/sample-store/db/repositories"
	repositories_clover "gitlab.com/nunet/sample-store/db/repositories/clover"
	repositories_gorm "gitlab.com/nunet/sample-store/db/repositories/gorm"
	repositories_memory "gitlab.com/nunet/sample-store/db/repositories/memory"
	"gitlab.com/nunet/sample-store/internal/config"
	"gitlab.com/nunet/sample-store/models"
)

// Supported values of db.driver.
const (
	DriverSQLite = "sqlite"
	DriverClover = "clover"
	DriverMemory = "memory"
)

const (
	// cloverDataFile is the bbolt file clover keeps inside its directory.
	cloverDataFile     = "data.db"
	defaultLockTimeout = 5 * time.Second
)

// ErrStoreLocked is returned when another process, usually a running
// server, holds the clover store.
var ErrStoreLocked = errors.New("store is in use by another process")

// ConnectDatabase opens the SQLite database at path with tracing enabled and
// creates the samples table when it does not exist yet.
func ConnectDatabase(path string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Use(otelgorm.NewPlugin()); err != nil {
		return nil, fmt.Errorf("failed to register tracing plugin: %w", err)
	}

	if err := database.AutoMigrate(&models.Sample{}); err != nil {
		return nil, fmt.Errorf("failed to create samples table: %w", err)
	}

	return database, nil
}

// ConnectClover opens the clover database stored in the directory dir.
// It fails with ErrStoreLocked when the store stays held by another process
// for longer than lockTimeout.
func ConnectClover(dir string, lockTimeout time.Duration) (*clover.DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := waitForCloverLock(dir, lockTimeout); err != nil {
		return nil, err
	}

	database, err := clover.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// waitForCloverLock takes and releases a shared lock on the clover data
// file. clover.Open itself waits forever on a held lock.
func waitForCloverLock(dir string, timeout time.Duration) error {
	path := filepath.Join(dir, cloverDataFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if timeout <= 0 {
		timeout = defaultLockTimeout
	}
	readOnly, err := bbolt.Open(path, 0o666, &bbolt.Options{Timeout: timeout, ReadOnly: true})
	if errors.Is(err, bbolt.ErrTimeout) {
		return fmt.Errorf("%w: %s", ErrStoreLocked, dir)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return readOnly.Close()
}

// NewSampleRepository builds the SampleRepository selected by cfg.Driver.
// The returned func releases the underlying store.
func NewSampleRepository(cfg config.DB, dataDir string) (repositories.SampleRepository, func() error, error) {
	path := cfg.Path

	switch cfg.Driver {
	case DriverSQLite, "":
		if path == "" {
			path = filepath.Join(dataDir, "samples.db")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
		}

		database, err := ConnectDatabase(path)
		if err != nil {
			return nil, nil, err
		}
		zlog.Sugar().Infof("using sqlite sample store at %s", path)

		closer := func() error {
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return repositories_gorm.NewSampleRepository(database), closer, nil

	case DriverClover:
		if path == "" {
			path = filepath.Join(dataDir, "samples.clover")
		}

		database, err := ConnectClover(path, cfg.LockTimeout)
		if err != nil {
			return nil, nil, err
		}

		repo, err := repositories_clover.NewSampleRepository(database)
		if err != nil {
			database.Close()
			return nil, nil, err
		}
		zlog.Sugar().Infof("using clover sample store at %s", path)
		return repo, database.Close, nil

	case DriverMemory:
		zlog.Sugar().Warn("using in-memory sample store, records are lost on exit")
		return repositories_memory.NewSampleRepository(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
