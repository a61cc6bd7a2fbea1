package services

import (
	"context"
	"time"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/app/models/dto"
	"github.com/kaanyilmaz/placehub/internal/app/repositories"
	"github.com/kaanyilmaz/placehub/internal/pkg/attachment"
	"github.com/kaanyilmaz/placehub/internal/pkg/logger"
)

// RegistrationService handles student drive registrations
type RegistrationService struct {
	registrationRepo *repositories.RegistrationRepository
	companyRepo      *repositories.CompanyRepository
	userRepo         *repositories.UserRepository
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	registrationRepo *repositories.RegistrationRepository,
	companyRepo *repositories.CompanyRepository,
	userRepo *repositories.UserRepository,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		companyRepo:      companyRepo,
		userRepo:         userRepo,
	}
}

// ListRegistrations returns every recorded registration
func (s *RegistrationService) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	return s.registrationRepo.List(ctx)
}

// CreateRegistration records the session user's application to a
// company drive. Identity comes from the session, never the form; the
// company name is snapshotted at registration time.
func (s *RegistrationService) CreateRegistration(ctx context.Context, req dto.CreateRegistrationRequest) (*models.Registration, error) {
	user, err := s.userRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	resume := user.Resume
	if req.ResumeData != "" {
		att, err := attachment.FromDataURL(req.ResumeFileName, req.ResumeData)
		if err != nil {
			return nil, err
		}
		resume = att.DataURL
	}

	registration := models.Registration{
		StudentID:      user.ID,
		StudentName:    user.Name,
		StudentEmail:   user.Email,
		CompanyID:      company.ID,
		CompanyName:    company.Name,
		Department:     req.Department,
		Percentage10th: req.Percentage10th,
		Percentage12th: req.Percentage12th,
		UGCgpa:         req.UGCgpa,
		Resume:         resume,
		RegisteredAt:   time.Now(),
	}

	created, err := s.registrationRepo.Append(ctx, registration)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("registrationId", created.ID).
		Str("companyName", created.CompanyName).
		Str("studentId", created.StudentID).
		Msg("Registration created")

	return created, nil
}

// DeleteAllRegistrations wipes the registration collection
func (s *RegistrationService) DeleteAllRegistrations(ctx context.Context) error {
	if err := s.registrationRepo.DeleteAll(ctx); err != nil {
		return err
	}

	logger.Warn().Msg("All registrations deleted")
	return nil
}

// StatsService summarizes collection sizes for the admin dashboard
type StatsService struct {
	companyRepo      *repositories.CompanyRepository
	studentRepo      *repositories.StudentRepository
	roundRepo        *repositories.RoundRepository
	registrationRepo *repositories.RegistrationRepository
}

// NewStatsService creates a new stats service
func NewStatsService(
	companyRepo *repositories.CompanyRepository,
	studentRepo *repositories.StudentRepository,
	roundRepo *repositories.RoundRepository,
	registrationRepo *repositories.RegistrationRepository,
) *StatsService {
	return &StatsService{
		companyRepo:      companyRepo,
		studentRepo:      studentRepo,
		roundRepo:        roundRepo,
		registrationRepo: registrationRepo,
	}
}

// GetStats counts each collection
func (s *StatsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rounds, err := s.roundRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	registrations, err := s.registrationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		Companies:     len(companies),
		Students:      len(students),
		Rounds:        len(rounds),
		Registrations: len(registrations),
	}, nil
}
