package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tendant/simple-photos/pkg/simplephotos"
)

// Repository implements simplephotos.MetadataStore using in-memory storage.
// Identifiers are assigned from a per-table counter starting at 1, matching
// the serial columns of the Postgres implementation.
type Repository struct {
	mu          sync.RWMutex
	users       map[int64]*simplephotos.User
	assets      map[int64]*simplephotos.Asset
	nextUserID  int64
	nextAssetID int64
}

// New creates a new in-memory metadata store
func New() simplephotos.MetadataStore {
	return &Repository{
		users:  make(map[int64]*simplephotos.User),
		assets: make(map[int64]*simplephotos.Asset),
	}
}

// User operations

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.users)), nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]*simplephotos.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*simplephotos.User, 0, len(r.users))
	for _, user := range r.users {
		userCopy := *user
		result = append(result, &userCopy)
	}

	// Sort by userid descending
	sort.Slice(result, func(i, j int) bool {
		return result[i].UserID > result[j].UserID
	})

	return result, nil
}

func (r *Repository) GetUser(ctx context.Context, userID int64) (*simplephotos.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[userID]
	if !exists {
		return nil, simplephotos.ErrUserNotFound
	}

	// Return a copy to prevent external modifications
	userCopy := *user
	return &userCopy, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *simplephotos.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextUserID++
	user.UserID = r.nextUserID

	// Store a copy to avoid external modifications
	userCopy := *user
	r.users[user.UserID] = &userCopy

	return nil
}

// Asset operations

func (r *Repository) CountAssets(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.assets)), nil
}

func (r *Repository) ListAssets(ctx context.Context) ([]*simplephotos.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*simplephotos.Asset, 0, len(r.assets))
	for _, asset := range r.assets {
		assetCopy := *asset
		result = append(result, &assetCopy)
	}

	// Sort by assetid descending
	sort.Slice(result, func(i, j int) bool {
		return result[i].AssetID > result[j].AssetID
	})

	return result, nil
}

func (r *Repository) GetAsset(ctx context.Context, assetID int64) (*simplephotos.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	asset, exists := r.assets[assetID]
	if !exists {
		return nil, simplephotos.ErrAssetNotFound
	}

	// Return a copy to prevent external modifications
	assetCopy := *asset
	return &assetCopy, nil
}

func (r *Repository) CreateAsset(ctx context.Context, asset *simplephotos.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Enforce the owner foreign key the way the Postgres schema does
	if _, exists := r.users[asset.UserID]; !exists {
		return simplephotos.ErrUserNotFound
	}

	r.nextAssetID++
	asset.AssetID = r.nextAssetID

	// Store a copy to avoid external modifications
	assetCopy := *asset
	r.assets[asset.AssetID] = &assetCopy

	return nil
}
