package services

import (
	"context"
	"fmt"

	"github.com/kaanyilmaz/placehub/internal/app/repositories"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/pkg/logger"
	"github.com/kaanyilmaz/placehub/internal/pkg/pdfexport"
)

// ExportService renders PDF downloads from stored collections. It is
// stateless; a failed render is simply reported, never retried.
type ExportService struct {
	registrationRepo *repositories.RegistrationRepository
	studentRepo      *repositories.StudentRepository
}

// NewExportService creates a new export service
func NewExportService(registrationRepo *repositories.RegistrationRepository, studentRepo *repositories.StudentRepository) *ExportService {
	return &ExportService{
		registrationRepo: registrationRepo,
		studentRepo:      studentRepo,
	}
}

// ExportRegistrations renders the registration table report. An empty
// collection is refused rather than producing an empty document.
func (s *ExportService) ExportRegistrations(ctx context.Context) ([]byte, string, error) {
	registrations, err := s.registrationRepo.List(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(registrations) == 0 {
		return nil, "", apperrors.ErrNothingToExport
	}

	content, err := pdfexport.RegistrationsReport(registrations)
	if err != nil {
		return nil, "", apperrors.NewCustomError(err, "Failed to render registrations report")
	}

	logger.Info().Int("registrations", len(registrations)).Msg("Registrations report exported")
	return content, "registered-students.pdf", nil
}

// ExportRegistrationDetail renders a single registration as a labeled
// detail sheet named after the student and company.
func (s *ExportService) ExportRegistrationDetail(ctx context.Context, id string) ([]byte, string, error) {
	registration, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	content, err := pdfexport.RegistrationDetail(registration)
	if err != nil {
		return nil, "", apperrors.NewCustomError(err, "Failed to render registration detail")
	}

	filename := fmt.Sprintf("%s-%s.pdf", registration.StudentName, registration.CompanyName)
	return content, filename, nil
}

// ExportStudents renders the landscape student roster report.
func (s *ExportService) ExportStudents(ctx context.Context) ([]byte, string, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(students) == 0 {
		return nil, "", apperrors.ErrNothingToExport
	}

	content, err := pdfexport.StudentsReport(students)
	if err != nil {
		return nil, "", apperrors.NewCustomError(err, "Failed to render students report")
	}

	logger.Info().Int("students", len(students)).Msg("Student roster exported")
	return content, "Students_List.pdf", nil
}
