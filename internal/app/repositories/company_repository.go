package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/store"
)

// CompanyRepository handles store operations for companies
type CompanyRepository struct {
	store store.Store
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(st store.Store) *CompanyRepository {
	return &CompanyRepository{store: st}
}

// List retrieves the full company collection. An absent key yields an empty
// slice, not an error.
func (r *CompanyRepository) List(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if _, err := r.store.Get(ctx, store.KeyCompanies, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// GetByID retrieves one company by its identifier
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	companies, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range companies {
		if companies[i].ID == id {
			return &companies[i], nil
		}
	}

	return nil, apperrors.ErrCompanyNotFound
}

// Create appends a company with a freshly generated identifier and returns it
func (r *CompanyRepository) Create(ctx context.Context, company models.Company) (*models.Company, error) {
	companies, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	company.ID = uuid.New().String()
	companies = append(companies, company)

	if err := r.store.Set(ctx, store.KeyCompanies, companies); err != nil {
		return nil, err
	}

	return &company, nil
}

// Update replaces the matching record's fields while preserving its identifier
func (r *CompanyRepository) Update(ctx context.Context, company models.Company) (*models.Company, error) {
	companies, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range companies {
		if companies[i].ID == company.ID {
			companies[i] = company
			if err := r.store.Set(ctx, store.KeyCompanies, companies); err != nil {
				return nil, err
			}
			return &companies[i], nil
		}
	}

	return nil, apperrors.ErrCompanyNotFound
}

// Delete removes the matching record. A missing identifier reports
// ErrCompanyNotFound and leaves the collection unchanged.
func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	companies, err := r.List(ctx)
	if err != nil {
		return err
	}

	for i := range companies {
		if companies[i].ID == id {
			companies = append(companies[:i], companies[i+1:]...)
			return r.store.Set(ctx, store.KeyCompanies, companies)
		}
	}

	return apperrors.ErrCompanyNotFound
}
