// Package config loads and validates the photo client configuration and
// builds the wired service from it.
//
// Configuration comes from a YAML file with storage and database sections,
// with PHOTOAPP_* environment variables taking precedence over file values.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tendant/simple-photos/pkg/simplephotos"
	repomemory "github.com/tendant/simple-photos/pkg/simplephotos/repo/memory"
	repopg "github.com/tendant/simple-photos/pkg/simplephotos/repo/postgres"
	fsstorage "github.com/tendant/simple-photos/pkg/simplephotos/storage/fs"
	memorystorage "github.com/tendant/simple-photos/pkg/simplephotos/storage/memory"
	s3storage "github.com/tendant/simple-photos/pkg/simplephotos/storage/s3"
)

// DefaultPath is the config file read when the startup prompt is answered
// with a bare ENTER.
const DefaultPath = "photoapp.yaml"

// AppConfig represents the photo client configuration
type AppConfig struct {
	LogLevel string         `yaml:"log_level" env:"PHOTOAPP_LOG_LEVEL" env-default:"info"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
}

// StorageConfig configures the object store backend
type StorageConfig struct {
	Backend         string `yaml:"backend" env:"PHOTOAPP_STORAGE_BACKEND" env-default:"s3"`
	BucketName      string `yaml:"bucket_name" env:"PHOTOAPP_BUCKET_NAME"`
	Region          string `yaml:"region" env:"PHOTOAPP_S3_REGION" env-default:"us-east-1"`
	Endpoint        string `yaml:"endpoint" env:"PHOTOAPP_S3_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id" env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"AWS_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `yaml:"use_path_style" env:"PHOTOAPP_S3_USE_PATH_STYLE" env-default:"false"`
	BaseDir         string `yaml:"base_dir" env:"PHOTOAPP_STORAGE_BASE_DIR" env-default:"./photoapp-data"`
}

// DatabaseConfig configures the metadata store
type DatabaseConfig struct {
	Type     string `yaml:"type" env:"PHOTOAPP_DB_TYPE" env-default:"postgres"`
	Host     string `yaml:"host" env:"PHOTOAPP_DB_HOST" env-default:"localhost"`
	Port     uint16 `yaml:"port" env:"PHOTOAPP_DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"PHOTOAPP_DB_USER"`
	Password string `yaml:"password" env:"PHOTOAPP_DB_PASSWORD"`
	Name     string `yaml:"name" env:"PHOTOAPP_DB_NAME"`
}

// Load reads the configuration file at path, applies environment overrides,
// and validates the result.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *AppConfig) Validate() error {
	switch c.Storage.Backend {
	case "s3":
		if c.Storage.BucketName == "" {
			return errors.New("storage.bucket_name is required for the s3 backend")
		}
	case "fs":
		if c.Storage.BaseDir == "" {
			return errors.New("storage.base_dir is required for the fs backend")
		}
	case "memory":
	default:
		return fmt.Errorf("storage.backend must be 's3', 'fs' or 'memory', got %q", c.Storage.Backend)
	}

	switch c.Database.Type {
	case "postgres":
		if c.Database.User == "" {
			return errors.New("database.user is required for postgres")
		}
		if c.Database.Name == "" {
			return errors.New("database.name is required for postgres")
		}
	case "memory":
	default:
		return fmt.Errorf("database.type must be 'postgres' or 'memory', got %q", c.Database.Type)
	}

	return nil
}

func (c DatabaseConfig) toDatabaseUrl() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}
	return u.String()
}

// NewDbPool opens a pgx pool and verifies connectivity with a short ping.
func NewDbPool(ctx context.Context, dbConfig DatabaseConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dbConfig.toDatabaseUrl())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// BuildMetadataStore creates a MetadataStore based on the configuration
func (c *AppConfig) BuildMetadataStore(ctx context.Context) (simplephotos.MetadataStore, error) {
	switch c.Database.Type {
	case "memory":
		return repomemory.New(), nil
	case "postgres":
		pool, err := NewDbPool(ctx, c.Database)
		if err != nil {
			return nil, err
		}
		return repopg.NewWithPool(pool), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", c.Database.Type)
	}
}

// BuildObjectStore creates an ObjectStore based on the configuration
func (c *AppConfig) BuildObjectStore() (simplephotos.ObjectStore, error) {
	switch c.Storage.Backend {
	case "memory":
		return memorystorage.New(), nil

	case "fs":
		return fsstorage.New(fsstorage.Config{
			BaseDir: c.Storage.BaseDir,
		})

	case "s3":
		return s3storage.New(s3storage.Config{
			Region:          c.Storage.Region,
			Bucket:          c.Storage.BucketName,
			AccessKeyID:     c.Storage.AccessKeyID,
			SecretAccessKey: c.Storage.SecretAccessKey,
			Endpoint:        c.Storage.Endpoint,
			UsePathStyle:    c.Storage.UsePathStyle,
		})

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", c.Storage.Backend)
	}
}

// BuildService creates a wired Service instance from the configuration
func (c *AppConfig) BuildService(ctx context.Context, logger *zap.SugaredLogger) (simplephotos.Service, error) {
	store, err := c.BuildMetadataStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build metadata store: %w", err)
	}

	objects, err := c.BuildObjectStore()
	if err != nil {
		return nil, fmt.Errorf("failed to build object store: %w", err)
	}

	options := []simplephotos.Option{
		simplephotos.WithMetadataStore(store),
		simplephotos.WithObjectStore(objects),
		simplephotos.WithBucketName(c.Storage.BucketName),
		simplephotos.WithDatabaseEndpoint(c.Database.Host),
	}
	if logger != nil {
		options = append(options, simplephotos.WithLogger(logger))
	}

	return simplephotos.New(options...)
}
