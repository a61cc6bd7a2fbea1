package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/store"
)

// RoundRepository handles store operations for interview rounds
type RoundRepository struct {
	store store.Store
}

// NewRoundRepository creates a new round repository
func NewRoundRepository(st store.Store) *RoundRepository {
	return &RoundRepository{store: st}
}

// List retrieves the full round collection
func (r *RoundRepository) List(ctx context.Context) ([]models.Round, error) {
	var rounds []models.Round
	if _, err := r.store.Get(ctx, store.KeyRounds, &rounds); err != nil {
		return nil, err
	}
	return rounds, nil
}

// ListByCompany retrieves all rounds recorded for one company
func (r *RoundRepository) ListByCompany(ctx context.Context, companyID string) ([]models.Round, error) {
	rounds, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var matched []models.Round
	for _, round := range rounds {
		if round.CompanyID == companyID {
			matched = append(matched, round)
		}
	}

	return matched, nil
}

// GetByID retrieves one round by its identifier
func (r *RoundRepository) GetByID(ctx context.Context, id string) (*models.Round, error) {
	rounds, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rounds {
		if rounds[i].ID == id {
			return &rounds[i], nil
		}
	}

	return nil, apperrors.ErrRoundNotFound
}

// Append persists a round with a freshly generated identifier. Each committed
// editor section lands here independently; there is no batching.
func (r *RoundRepository) Append(ctx context.Context, round models.Round) (*models.Round, error) {
	rounds, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	round.ID = uuid.New().String()
	rounds = append(rounds, round)

	if err := r.store.Set(ctx, store.KeyRounds, rounds); err != nil {
		return nil, err
	}

	return &round, nil
}

// Update replaces the matching round while preserving its identifier
func (r *RoundRepository) Update(ctx context.Context, round models.Round) (*models.Round, error) {
	rounds, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rounds {
		if rounds[i].ID == round.ID {
			rounds[i] = round
			if err := r.store.Set(ctx, store.KeyRounds, rounds); err != nil {
				return nil, err
			}
			return &rounds[i], nil
		}
	}

	return nil, apperrors.ErrRoundNotFound
}

// Delete removes the matching round; a missing identifier reports
// ErrRoundNotFound and leaves the collection unchanged.
func (r *RoundRepository) Delete(ctx context.Context, id string) error {
	rounds, err := r.List(ctx)
	if err != nil {
		return err
	}

	for i := range rounds {
		if rounds[i].ID == id {
			rounds = append(rounds[:i], rounds[i+1:]...)
			return r.store.Set(ctx, store.KeyRounds, rounds)
		}
	}

	return apperrors.ErrRoundNotFound
}
