package services

import (
	"context"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/app/repositories"
	"github.com/kaanyilmaz/placehub/internal/pkg/logger"
)

// CompanyService handles company drive management
type CompanyService struct {
	companyRepo *repositories.CompanyRepository
	roundRepo   *repositories.RoundRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo *repositories.CompanyRepository, roundRepo *repositories.RoundRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		roundRepo:   roundRepo,
	}
}

// ListCompanies returns all recorded company drives
func (s *CompanyService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return s.companyRepo.List(ctx)
}

// GetCompany returns one company by identifier
func (s *CompanyService) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

// GetCompanyRounds returns a company together with its interview rounds.
// The company must exist; an empty set of rounds is fine.
func (s *CompanyService) GetCompanyRounds(ctx context.Context, id string) (*models.Company, []models.Round, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rounds, err := s.roundRepo.ListByCompany(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return company, rounds, nil
}

// CreateCompany records a new company drive
func (s *CompanyService) CreateCompany(ctx context.Context, company models.Company) (*models.Company, error) {
	created, err := s.companyRepo.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("companyId", created.ID).
		Str("name", created.Name).
		Msg("Company created")

	return created, nil
}

// UpdateCompany replaces an existing company drive
func (s *CompanyService) UpdateCompany(ctx context.Context, company models.Company) (*models.Company, error) {
	return s.companyRepo.Update(ctx, company)
}

// DeleteCompany removes a company drive. Its rounds are kept; they still
// carry the company name snapshot taken when they were created.
func (s *CompanyService) DeleteCompany(ctx context.Context, id string) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("companyId", id).Msg("Company deleted")
	return nil
}
