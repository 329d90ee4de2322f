package simplephotos

import (
	"context"
	"io"
)

// ObjectStore defines the interface for bucket storage backends
type ObjectStore interface {
	// Upload stores the reader's bytes under objectKey
	Upload(ctx context.Context, objectKey string, reader io.Reader) error

	// Download returns a reader over the bytes stored under objectKey.
	// A missing key yields an error wrapping ErrObjectNotFound.
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// ListKeys returns every key currently in the bucket
	ListKeys(ctx context.Context) ([]string, error)

	// Delete removes the object stored under objectKey
	Delete(ctx context.Context, objectKey string) error
}

// MetadataStore defines the interface for user and asset persistence.
//
// List methods return rows in descending identifier order (newest first).
// Point lookups yield ErrUserNotFound / ErrAssetNotFound for missing rows.
// Create methods assign the store-generated identifier on the passed value.
type MetadataStore interface {
	// User operations
	CountUsers(ctx context.Context) (int64, error)
	ListUsers(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, userID int64) (*User, error)
	CreateUser(ctx context.Context, user *User) error

	// Asset operations
	CountAssets(ctx context.Context) (int64, error)
	ListAssets(ctx context.Context) ([]*Asset, error)
	GetAsset(ctx context.Context, assetID int64) (*Asset, error)
	CreateAsset(ctx context.Context, asset *Asset) error
}
