package simplephotos

// User represents a registered owner of photo assets.
//
// UserID is assigned by the metadata store on creation. BucketFolder is a
// generated namespace identifier recorded for the user; object keys remain
// flat, the folder is bookkeeping for tools that partition by owner.
type User struct {
	UserID       int64  `json:"userid"`
	Email        string `json:"email"`
	LastName     string `json:"lastname"`
	FirstName    string `json:"firstname"`
	BucketFolder string `json:"bucketfolder"`
}

// Asset represents one stored photo: the database half of a blob.
//
// AssetID is assigned by the metadata store on creation. AssetName is the
// original filename as supplied at upload time; BucketKey is the opaque
// generated key the image bytes live under in the object store.
type Asset struct {
	AssetID   int64  `json:"assetid"`
	UserID    int64  `json:"userid"`
	AssetName string `json:"assetname"`
	BucketKey string `json:"bucketkey"`
}

// StoreStats summarizes both stores at a single point in time.
//
// ObjectCount is a live listing count, not a cached value.
type StoreStats struct {
	BucketName       string `json:"bucket_name"`
	ObjectCount      int64  `json:"object_count"`
	DatabaseEndpoint string `json:"database_endpoint"`
	UserCount        int64  `json:"user_count"`
	AssetCount       int64  `json:"asset_count"`
}
