package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/store"
)

// RegistrationRepository handles store operations for drive registrations.
// Registrations are append-only: there is no update, and deletion happens
// only in bulk.
type RegistrationRepository struct {
	store store.Store
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(st store.Store) *RegistrationRepository {
	return &RegistrationRepository{store: st}
}

// List retrieves the full registration collection
func (r *RegistrationRepository) List(ctx context.Context) ([]models.Registration, error) {
	var registrations []models.Registration
	if _, err := r.store.Get(ctx, store.KeyRegistrations, &registrations); err != nil {
		return nil, err
	}
	return registrations, nil
}

// GetByID retrieves one registration by its identifier
func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*models.Registration, error) {
	registrations, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range registrations {
		if registrations[i].ID == id {
			return &registrations[i], nil
		}
	}

	return nil, apperrors.ErrRegistrationNotFound
}

// Append persists a registration with a freshly generated identifier
func (r *RegistrationRepository) Append(ctx context.Context, registration models.Registration) (*models.Registration, error) {
	registrations, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	registration.ID = uuid.New().String()
	registrations = append(registrations, registration)

	if err := r.store.Set(ctx, store.KeyRegistrations, registrations); err != nil {
		return nil, err
	}

	return &registration, nil
}

// DeleteAll clears the entire registration collection at once. Irreversible.
func (r *RegistrationRepository) DeleteAll(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeyRegistrations)
}
