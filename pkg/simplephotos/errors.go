package simplephotos

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrUserNotFound indicates a user row was not found
	ErrUserNotFound = errors.New("user not found")

	// ErrAssetNotFound indicates an asset row was not found
	ErrAssetNotFound = errors.New("asset not found")

	// ErrObjectNotFound indicates no object exists under a bucket key
	ErrObjectNotFound = errors.New("object not found")

	// ErrLocalFileNotFound indicates the local file to upload does not exist
	ErrLocalFileNotFound = errors.New("local file not found")
)

// StoreError represents an error from a metadata store write
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("metadata operation %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// StorageError represents an error related to object storage operations
type StorageError struct {
	Backend string
	Key     string
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s on backend %s: %v", e.Op, e.Key, e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
