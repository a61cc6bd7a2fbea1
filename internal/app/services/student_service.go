package services

import (
	"context"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/app/repositories"
	"github.com/kaanyilmaz/placehub/internal/pkg/logger"
)

// StudentService handles the student roster maintained by admins
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// ListStudents returns the full roster
func (s *StudentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.List(ctx)
}

// GetStudent returns one student by identifier
func (s *StudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// CreateStudent adds a student to the roster
func (s *StudentService) CreateStudent(ctx context.Context, student models.Student) (*models.Student, error) {
	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("studentId", created.ID).
		Str("registerNumber", created.RegisterNumber).
		Msg("Student created")

	return created, nil
}

// UpdateStudent replaces an existing roster entry
func (s *StudentService) UpdateStudent(ctx context.Context, student models.Student) (*models.Student, error) {
	return s.studentRepo.Update(ctx, student)
}

// DeleteStudent removes a student from the roster
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("studentId", id).Msg("Student deleted")
	return nil
}
