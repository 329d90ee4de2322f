package simplephotos

import "context"

// Service defines the main interface for the simple-photos library
type Service interface {
	// Store inspection
	GetStats(ctx context.Context) (*StoreStats, error)

	// Listings (descending identifier order, newest first)
	ListUsers(ctx context.Context) ([]*User, error)
	ListAssets(ctx context.Context) ([]*Asset, error)

	// Asset transfer
	DownloadAsset(ctx context.Context, req DownloadAssetRequest) (*DownloadResult, error)
	UploadAsset(ctx context.Context, req UploadAssetRequest) (*Asset, error)

	// User registration
	AddUser(ctx context.Context, req AddUserRequest) (*User, error)
}
