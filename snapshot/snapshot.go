// Package snapshot dumps the sample store into gzip compressed NDJSON files
// and loads them back.
package snapshot

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gitlab.com/nunet/sample-store/db/repositories"
	"gitlab.com/nunet/sample-store/models"
)

const (
	filePrefix = "samples-"
	fileSuffix = ".ndjson.gz"
	timeLayout = "20060102T150405.000000000Z"
)

// FileName returns the snapshot file name for a snapshot taken at t.
// Names sort in the order the snapshots were taken.
func FileName(t time.Time) string {
	return filePrefix + t.UTC().Format(timeLayout) + fileSuffix
}

// IsSnapshotFile reports whether name follows the FileName pattern.
func IsSnapshotFile(name string) bool {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	_, err := time.Parse(timeLayout, stamp)
	return err == nil
}

// Export writes every stored sample to w, one JSON document per line, through
// a gzip compressor. It returns the number of samples written.
func Export(ctx context.Context, repo repositories.SampleRepository, w io.Writer) (int, error) {
	samples, err := repo.SelectAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "could not read samples")
	}

	compressor, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return 0, errors.Wrap(err, "could not create compressor")
	}
	encoder := json.NewEncoder(compressor)
	for i, sample := range samples {
		if err := encoder.Encode(sample); err != nil {
			return i, multierr.Append(errors.Wrap(err, "could not encode sample"), compressor.Close())
		}
	}

	if err := compressor.Close(); err != nil {
		return len(samples), errors.Wrap(err, "could not flush compressor")
	}
	return len(samples), nil
}

// Import reads a stream produced by Export and inserts every sample into repo.
// It stops at the first failure and returns the number of samples inserted so far.
func Import(ctx context.Context, repo repositories.SampleRepository, r io.Reader) (int, error) {
	uncompressor, err := gzip.NewReader(r)
	if err != nil {
		return 0, errors.Wrap(err, "could not create uncompressor")
	}
	defer uncompressor.Close()

	decoder := json.NewDecoder(uncompressor)
	count := 0
	for {
		var sample models.Sample
		if err := decoder.Decode(&sample); err != nil {
			if err == io.EOF {
				return count, nil
			}
			return count, errors.Wrapf(err, "could not decode sample %d", count+1)
		}
		if err := repo.Insert(ctx, sample); err != nil {
			return count, errors.Wrapf(err, "could not insert sample %q", sample.ID)
		}
		count++
	}
}

// ExportFile writes a new snapshot file into dir and returns its path and the
// number of samples written. A failed export leaves no file behind.
func ExportFile(ctx context.Context, fs afero.Fs, repo repositories.SampleRepository, dir string) (string, int, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", 0, errors.Wrap(err, "could not create snapshot directory")
	}

	path := filepath.Join(dir, FileName(time.Now()))
	n, err := WriteFile(ctx, fs, repo, path)
	if err != nil {
		return "", n, err
	}
	return path, n, nil
}

// WriteFile exports repo into the file at path.
func WriteFile(ctx context.Context, fs afero.Fs, repo repositories.SampleRepository, path string) (n int, err error) {
	file, err := fs.Create(path)
	if err != nil {
		return 0, errors.Wrap(err, "could not create snapshot file")
	}
	defer func() {
		err = multierr.Append(err, file.Close())
		if err != nil {
			err = multierr.Append(err, fs.Remove(path))
		}
	}()

	n, err = Export(ctx, repo, file)
	if err != nil {
		return n, err
	}
	zlog.Info("snapshot written", zap.String("path", path), zap.Int("samples", n))
	return n, nil
}

// ImportFile loads the snapshot file at path into repo.
func ImportFile(ctx context.Context, fs afero.Fs, repo repositories.SampleRepository, path string) (int, error) {
	file, err := fs.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "could not open snapshot file")
	}
	defer file.Close()

	n, err := Import(ctx, repo, file)
	zlog.Info("snapshot loaded", zap.String("path", path), zap.Int("samples", n), zap.Error(err))
	return n, err
}

// Prune removes the oldest snapshot files in dir so that at most keep remain.
// Files not named by FileName are left alone. keep <= 0 keeps everything.
func Prune(fs afero.Fs, dir string, keep int) ([]string, error) {
	if keep <= 0 {
		return nil, nil
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrap(err, "could not list snapshot directory")
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && IsSnapshotFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return nil, nil
	}
	sort.Strings(names)

	var removed []string
	var errs error
	for _, name := range names[:len(names)-keep] {
		path := filepath.Join(dir, name)
		if err := fs.Remove(path); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		removed = append(removed, path)
	}
	return removed, errs
}
