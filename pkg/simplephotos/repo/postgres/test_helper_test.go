package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestDB represents a test database connection
type TestDB struct {
	Pool *pgxpool.Pool
}

// NewTestDB creates a new test database connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping Postgres tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err, "Failed to connect to test database")

	err = pool.Ping(ctx)
	require.NoError(t, err, "Failed to ping test database")

	return &TestDB{
		Pool: pool,
	}
}

// Setup initializes the test database with the photo tables
func (db *TestDB) Setup(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			userid BIGSERIAL PRIMARY KEY,
			email VARCHAR(128) NOT NULL,
			lastname VARCHAR(64) NOT NULL,
			firstname VARCHAR(64) NOT NULL,
			bucketfolder VARCHAR(48) NOT NULL
		)
	`)
	require.NoError(t, err, "Failed to create users table")

	_, err = db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS assets (
			assetid BIGSERIAL PRIMARY KEY,
			userid BIGINT NOT NULL REFERENCES users(userid),
			assetname VARCHAR(128) NOT NULL,
			bucketkey VARCHAR(128) NOT NULL
		)
	`)
	require.NoError(t, err, "Failed to create assets table")
}

// Cleanup removes all test data from the database
func (db *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Pool.Exec(ctx, "TRUNCATE assets, users RESTART IDENTITY CASCADE")
	require.NoError(t, err, "Failed to truncate photo tables")
}

// Close closes the database connection
func (db *TestDB) Close(t *testing.T) {
	t.Helper()
	db.Pool.Close()
}

// RunTest runs a test with database setup and cleanup
func RunTest(t *testing.T, testFunc func(t *testing.T, db *TestDB)) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}

	db := NewTestDB(t)
	defer db.Close(t)

	db.Setup(t)
	db.Cleanup(t)

	testFunc(t, db)
}
