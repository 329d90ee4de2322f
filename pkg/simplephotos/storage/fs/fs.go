package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tendant/simple-photos/pkg/simplephotos"
)

// Backend is a filesystem implementation of the simplephotos.ObjectStore
// interface, useful for development without a bucket.
type Backend struct {
	baseDir string
}

// Config options for the filesystem backend
type Config struct {
	BaseDir string // Base directory for storing objects
}

// New creates a new filesystem storage backend
func New(config Config) (simplephotos.ObjectStore, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}

	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &Backend{
		baseDir: config.BaseDir,
	}, nil
}

// Upload stores the reader's bytes under objectKey
func (b *Backend) Upload(ctx context.Context, objectKey string, reader io.Reader) error {
	filePath := filepath.Join(b.baseDir, filepath.FromSlash(objectKey))

	// Foldered keys need their directory created first
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return &simplephotos.StorageError{Backend: "fs", Key: objectKey, Op: "upload", Err: err}
	}

	file, err := os.Create(filePath)
	if err != nil {
		return &simplephotos.StorageError{Backend: "fs", Key: objectKey, Op: "upload", Err: err}
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return &simplephotos.StorageError{Backend: "fs", Key: objectKey, Op: "upload", Err: err}
	}

	return nil
}

// Download returns a reader over the bytes stored under objectKey
func (b *Backend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	filePath := filepath.Join(b.baseDir, filepath.FromSlash(objectKey))

	file, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return nil, &simplephotos.StorageError{Backend: "fs", Key: objectKey, Op: "download", Err: simplephotos.ErrObjectNotFound}
	} else if err != nil {
		return nil, &simplephotos.StorageError{Backend: "fs", Key: objectKey, Op: "download", Err: err}
	}

	return file, nil
}

// ListKeys walks the base directory and returns every stored key
func (b *Backend) ListKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(b.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(b.baseDir, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, &simplephotos.StorageError{Backend: "fs", Op: "list", Err: err}
	}

	return keys, nil
}

// Delete removes the object stored under objectKey
func (b *Backend) Delete(ctx context.Context, objectKey string) error {
	filePath := filepath.Join(b.baseDir, filepath.FromSlash(objectKey))

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return &simplephotos.StorageError{Backend: "fs", Key: objectKey, Op: "delete", Err: simplephotos.ErrObjectNotFound}
	}

	if err := os.Remove(filePath); err != nil {
		return &simplephotos.StorageError{Backend: "fs", Key: objectKey, Op: "delete", Err: err}
	}

	// Clean up empty directories left behind by foldered keys
	b.cleanupEmptyDirectories(filepath.Dir(filePath))

	return nil
}

// cleanupEmptyDirectories recursively removes empty directories up to baseDir
func (b *Backend) cleanupEmptyDirectories(dir string) {
	if dir == b.baseDir {
		return
	}

	if entries, err := os.ReadDir(dir); err == nil && len(entries) == 0 {
		if os.Remove(dir) == nil {
			b.cleanupEmptyDirectories(filepath.Dir(dir))
		}
	}
}
