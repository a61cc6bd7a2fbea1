package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/store"
)

// StudentRepository handles store operations for students
type StudentRepository struct {
	store store.Store
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(st store.Store) *StudentRepository {
	return &StudentRepository{store: st}
}

// List retrieves the full student collection
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if _, err := r.store.Get(ctx, store.KeyStudents, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetByID retrieves one student by its identifier
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range students {
		if students[i].ID == id {
			return &students[i], nil
		}
	}

	return nil, apperrors.ErrStudentNotFound
}

// Create appends a student with a freshly generated identifier and returns it
func (r *StudentRepository) Create(ctx context.Context, student models.Student) (*models.Student, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	student.ID = uuid.New().String()
	students = append(students, student)

	if err := r.store.Set(ctx, store.KeyStudents, students); err != nil {
		return nil, err
	}

	return &student, nil
}

// Update replaces the matching record's fields while preserving its identifier
func (r *StudentRepository) Update(ctx context.Context, student models.Student) (*models.Student, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range students {
		if students[i].ID == student.ID {
			students[i] = student
			if err := r.store.Set(ctx, store.KeyStudents, students); err != nil {
				return nil, err
			}
			return &students[i], nil
		}
	}

	return nil, apperrors.ErrStudentNotFound
}

// Delete removes the matching record; a missing identifier reports
// ErrStudentNotFound and leaves the collection unchanged.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	students, err := r.List(ctx)
	if err != nil {
		return err
	}

	for i := range students {
		if students[i].ID == id {
			students = append(students[:i], students[i+1:]...)
			return r.store.Set(ctx, store.KeyStudents, students)
		}
	}

	return apperrors.ErrStudentNotFound
}
