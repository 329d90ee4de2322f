package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-photos/pkg/simplephotos"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements simplephotos.MetadataStore using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL metadata store
func New(db DBTX) simplephotos.MetadataStore {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL metadata store with connection pool
func NewWithPool(pool *pgxpool.Pool) simplephotos.MetadataStore {
	return &Repository{db: pool}
}

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("duplicate entry")
		case "23503": // foreign_key_violation
			// The only foreign key is assets.userid -> users.userid
			return simplephotos.ErrUserNotFound
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database provisioning required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

// User operations

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, r.handlePostgresError("count users", err)
	}
	return count, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]*simplephotos.User, error) {
	query := `
        SELECT userid, email, lastname, firstname, bucketfolder
        FROM users
        ORDER BY userid DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*simplephotos.User
	for rows.Next() {
		var user simplephotos.User
		if err := rows.Scan(
			&user.UserID, &user.Email, &user.LastName,
			&user.FirstName, &user.BucketFolder); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

func (r *Repository) GetUser(ctx context.Context, userID int64) (*simplephotos.User, error) {
	query := `
        SELECT userid, email, lastname, firstname, bucketfolder
        FROM users WHERE userid = $1`

	var user simplephotos.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.UserID, &user.Email, &user.LastName,
		&user.FirstName, &user.BucketFolder)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplephotos.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *simplephotos.User) error {
	query := `
		INSERT INTO users (email, lastname, firstname, bucketfolder)
		VALUES ($1, $2, $3, $4)
		RETURNING userid`

	err := r.db.QueryRow(ctx, query,
		user.Email, user.LastName, user.FirstName, user.BucketFolder).Scan(&user.UserID)

	if err != nil {
		return r.handlePostgresError("create user", err)
	}

	return nil
}

// Asset operations

func (r *Repository) CountAssets(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM assets`).Scan(&count)
	if err != nil {
		return 0, r.handlePostgresError("count assets", err)
	}
	return count, nil
}

func (r *Repository) ListAssets(ctx context.Context) ([]*simplephotos.Asset, error) {
	query := `
        SELECT assetid, userid, assetname, bucketkey
        FROM assets
        ORDER BY assetid DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*simplephotos.Asset
	for rows.Next() {
		var asset simplephotos.Asset
		if err := rows.Scan(
			&asset.AssetID, &asset.UserID,
			&asset.AssetName, &asset.BucketKey); err != nil {
			return nil, err
		}
		assets = append(assets, &asset)
	}

	return assets, rows.Err()
}

func (r *Repository) GetAsset(ctx context.Context, assetID int64) (*simplephotos.Asset, error) {
	query := `
        SELECT assetid, userid, assetname, bucketkey
        FROM assets WHERE assetid = $1`

	var asset simplephotos.Asset
	err := r.db.QueryRow(ctx, query, assetID).Scan(
		&asset.AssetID, &asset.UserID,
		&asset.AssetName, &asset.BucketKey)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplephotos.ErrAssetNotFound
		}
		return nil, err
	}

	return &asset, nil
}

func (r *Repository) CreateAsset(ctx context.Context, asset *simplephotos.Asset) error {
	query := `
		INSERT INTO assets (userid, assetname, bucketkey)
		VALUES ($1, $2, $3)
		RETURNING assetid`

	err := r.db.QueryRow(ctx, query,
		asset.UserID, asset.AssetName, asset.BucketKey).Scan(&asset.AssetID)

	if err != nil {
		return r.handlePostgresError("create asset", err)
	}

	return nil
}
