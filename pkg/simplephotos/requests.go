package simplephotos

// Request/Response DTOs

// DownloadAssetRequest contains parameters for downloading an asset
type DownloadAssetRequest struct {
	AssetID int64

	// Dir is the destination directory for the saved file. Empty means the
	// current working directory.
	Dir string
}

// DownloadResult reports where a downloaded asset was saved
type DownloadResult struct {
	Asset     *Asset
	SavedPath string
}

// UploadAssetRequest contains parameters for uploading a local file
type UploadAssetRequest struct {
	LocalPath string
	UserID    int64
}

// AddUserRequest contains parameters for registering a new user
type AddUserRequest struct {
	Email     string
	LastName  string
	FirstName string
}
