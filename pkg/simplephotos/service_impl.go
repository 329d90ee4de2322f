package simplephotos

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tendant/simple-photos/pkg/simplephotos/objectkey"
)

// service implements the Service interface
type service struct {
	metadataStore MetadataStore
	objectStore   ObjectStore
	keys          objectkey.Generator
	logger        *zap.SugaredLogger

	bucketName       string
	databaseEndpoint string
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithMetadataStore sets the metadata store for the service
func WithMetadataStore(store MetadataStore) Option {
	return func(s *service) {
		s.metadataStore = store
	}
}

// WithObjectStore sets the object store for the service
func WithObjectStore(store ObjectStore) Option {
	return func(s *service) {
		s.objectStore = store
	}
}

// WithKeyGenerator sets the bucket key generation strategy
func WithKeyGenerator(gen objectkey.Generator) Option {
	return func(s *service) {
		s.keys = gen
	}
}

// WithLogger sets the diagnostic logger for the service
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// WithBucketName records the bucket name reported by GetStats
func WithBucketName(name string) Option {
	return func(s *service) {
		s.bucketName = name
	}
}

// WithDatabaseEndpoint records the database endpoint reported by GetStats
func WithDatabaseEndpoint(endpoint string) Option {
	return func(s *service) {
		s.databaseEndpoint = endpoint
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		keys:   objectkey.NewRecommendedGenerator(),
		logger: zap.NewNop().Sugar(),
	}

	for _, option := range options {
		option(s)
	}

	if s.metadataStore == nil {
		return nil, fmt.Errorf("metadata store is required")
	}
	if s.objectStore == nil {
		return nil, fmt.Errorf("object store is required")
	}

	return s, nil
}

func (s *service) GetStats(ctx context.Context) (*StoreStats, error) {
	keys, err := s.objectStore.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bucket keys: %w", err)
	}

	userCount, err := s.metadataStore.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	assetCount, err := s.metadataStore.CountAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("count assets: %w", err)
	}

	stats := &StoreStats{
		BucketName:       s.bucketName,
		ObjectCount:      int64(len(keys)),
		DatabaseEndpoint: s.databaseEndpoint,
		UserCount:        userCount,
		AssetCount:       assetCount,
	}

	s.logger.Debugw("collected store stats",
		"objects", stats.ObjectCount,
		"users", stats.UserCount,
		"assets", stats.AssetCount)

	return stats, nil
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	users, err := s.metadataStore.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *service) ListAssets(ctx context.Context) ([]*Asset, error) {
	assets, err := s.metadataStore.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

func (s *service) DownloadAsset(ctx context.Context, req DownloadAssetRequest) (*DownloadResult, error) {
	asset, err := s.metadataStore.GetAsset(ctx, req.AssetID)
	if err != nil {
		return nil, fmt.Errorf("get asset %d: %w", req.AssetID, err)
	}

	reader, err := s.objectStore.Download(ctx, asset.BucketKey)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	// Base strips any path components a caller smuggled into the asset
	// name, so the file always lands inside the requested directory.
	savedPath := filepath.Join(req.Dir, filepath.Base(asset.AssetName))
	file, err := os.Create(savedPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", savedPath, err)
	}

	if _, err := io.Copy(file, reader); err != nil {
		file.Close()
		os.Remove(savedPath)
		return nil, fmt.Errorf("write %s: %w", savedPath, err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("close %s: %w", savedPath, err)
	}

	s.logger.Debugw("downloaded asset",
		"assetid", asset.AssetID,
		"bucketkey", asset.BucketKey,
		"saved", savedPath)

	return &DownloadResult{Asset: asset, SavedPath: savedPath}, nil
}

func (s *service) UploadAsset(ctx context.Context, req UploadAssetRequest) (*Asset, error) {
	if _, err := os.Stat(req.LocalPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", req.LocalPath, ErrLocalFileNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", req.LocalPath, err)
	}

	user, err := s.metadataStore.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", req.UserID, err)
	}

	file, err := os.Open(req.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", req.LocalPath, err)
	}
	defer file.Close()

	// Bytes go to the bucket first. If the upload fails the database is
	// untouched; if the insert below fails the orphaned blob is accepted.
	bucketKey := s.keys.GenerateKey(req.LocalPath)
	if err := s.objectStore.Upload(ctx, bucketKey, file); err != nil {
		return nil, err
	}

	asset := &Asset{
		UserID:    user.UserID,
		AssetName: req.LocalPath,
		BucketKey: bucketKey,
	}
	if err := s.metadataStore.CreateAsset(ctx, asset); err != nil {
		return nil, &StoreError{Op: "create_asset", Err: err}
	}

	s.logger.Infow("uploaded asset",
		"assetid", asset.AssetID,
		"userid", asset.UserID,
		"bucketkey", asset.BucketKey)

	return asset, nil
}

func (s *service) AddUser(ctx context.Context, req AddUserRequest) (*User, error) {
	user := &User{
		Email:        req.Email,
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		BucketFolder: uuid.NewString(),
	}
	if err := s.metadataStore.CreateUser(ctx, user); err != nil {
		return nil, &StoreError{Op: "create_user", Err: err}
	}

	s.logger.Infow("added user",
		"userid", user.UserID,
		"email", user.Email,
		"folder", user.BucketFolder)

	return user, nil
}
