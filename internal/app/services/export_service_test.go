package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/app/repositories"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/store"
)

func newExportFixture(t *testing.T) (*ExportService, *repositories.Repositories) {
	t.Helper()

	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "export.db"))
	require.NoError(t, err, "Failed to open test store")
	t.Cleanup(func() { st.Close() })

	repos := repositories.NewRepositories(st)
	return NewExportService(repos.RegistrationRepository, repos.StudentRepository), repos
}

func TestExportRegistrationsEmpty(t *testing.T) {
	svc, _ := newExportFixture(t)

	_, _, err := svc.ExportRegistrations(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrNothingToExport), "an empty collection is refused")
}

func TestExportRegistrations(t *testing.T) {
	svc, repos := newExportFixture(t)
	ctx := context.Background()

	_, err := repos.RegistrationRepository.Append(ctx, models.Registration{
		StudentName:    "Alice",
		StudentEmail:   "alice@example.com",
		CompanyName:    "Globex",
		Department:     "CS",
		Percentage10th: "92",
		Percentage12th: "88",
		UGCgpa:         "8.5",
	})
	require.NoError(t, err)

	content, filename, err := svc.ExportRegistrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, "registered-students.pdf", filename)
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]), "output must be a PDF document")
}

func TestExportRegistrationDetail(t *testing.T) {
	svc, repos := newExportFixture(t)
	ctx := context.Background()

	created, err := repos.RegistrationRepository.Append(ctx, models.Registration{
		StudentName: "Alice",
		CompanyName: "Globex",
	})
	require.NoError(t, err)

	content, filename, err := svc.ExportRegistrationDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice-Globex.pdf", filename)
	assert.Equal(t, "%PDF", string(content[:4]))

	_, _, err = svc.ExportRegistrationDetail(ctx, "missing")
	assert.True(t, errors.Is(err, apperrors.ErrRegistrationNotFound))
}

func TestExportStudents(t *testing.T) {
	svc, repos := newExportFixture(t)
	ctx := context.Background()

	_, _, err := svc.ExportStudents(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrNothingToExport))

	_, err = repos.StudentRepository.Create(ctx, models.Student{
		Name:           "Bob",
		RegisterNumber: "CS2021002",
		Department:     "CS",
		CGPA:           "7.8",
		Placed:         models.PlacedNo,
	})
	require.NoError(t, err)

	content, filename, err := svc.ExportStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Students_List.pdf", filename)
	assert.Equal(t, "%PDF", string(content[:4]))
}
