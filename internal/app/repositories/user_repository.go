package repositories

import (
	"context"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/store"
)

// UserRepository handles the single persisted session identity. Unlike the
// entity collections, the "user" key holds one object, not an array.
type UserRepository struct {
	store store.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(st store.Store) *UserRepository {
	return &UserRepository{store: st}
}

// Get reads the current session identity. An absent key reports
// ErrUserNotFound (anonymous state).
func (r *UserRepository) Get(ctx context.Context) (*models.User, error) {
	var user models.User
	found, err := r.store.Get(ctx, store.KeyUser, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

// Save persists the session identity, replacing any previous one
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return r.store.Set(ctx, store.KeyUser, user)
}

// Clear removes the session identity from the store
func (r *UserRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeyUser)
}
