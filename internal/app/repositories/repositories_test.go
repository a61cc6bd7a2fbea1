package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/store"
)

func newTestRepos(t *testing.T) *Repositories {
	t.Helper()

	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "repos.db"))
	require.NoError(t, err, "Failed to open test store")
	t.Cleanup(func() { st.Close() })
	return NewRepositories(st)
}

func TestCompanyCreateAssignsID(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	created, err := repos.CompanyRepository.Create(ctx, models.Company{Name: "Globex", CTC: "10"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "create must assign an identifier")
	assert.Equal(t, "Globex", created.Name)

	companies, err := repos.CompanyRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, created.ID, companies[0].ID)
}

func TestCompanyListEmpty(t *testing.T) {
	repos := newTestRepos(t)

	companies, err := repos.CompanyRepository.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, companies, "empty store must yield an empty collection, not an error")
}

func TestCompanyUpdatePreservesID(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	created, err := repos.CompanyRepository.Create(ctx, models.Company{Name: "Globex"})
	require.NoError(t, err)

	created.Name = "Globex Corp"
	updated, err := repos.CompanyRepository.Update(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Globex Corp", updated.Name)
}

func TestCompanyUpdateMissing(t *testing.T) {
	repos := newTestRepos(t)

	_, err := repos.CompanyRepository.Update(context.Background(), models.Company{ID: "nope", Name: "X"})
	assert.True(t, errors.Is(err, apperrors.ErrCompanyNotFound))
}

func TestCompanyDelete(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	a, err := repos.CompanyRepository.Create(ctx, models.Company{Name: "A"})
	require.NoError(t, err)
	b, err := repos.CompanyRepository.Create(ctx, models.Company{Name: "B"})
	require.NoError(t, err)

	require.NoError(t, repos.CompanyRepository.Delete(ctx, a.ID))

	companies, err := repos.CompanyRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, b.ID, companies[0].ID)

	// Deleting an unknown identifier leaves the collection unchanged
	err = repos.CompanyRepository.Delete(ctx, "nope")
	assert.True(t, errors.Is(err, apperrors.ErrCompanyNotFound))

	companies, err = repos.CompanyRepository.List(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestStudentNotFound(t *testing.T) {
	repos := newTestRepos(t)

	_, err := repos.StudentRepository.GetByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestRoundListByCompany(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.RoundRepository.Append(ctx, models.Round{CompanyID: "c1", RoundName: "Aptitude"})
	require.NoError(t, err)
	_, err = repos.RoundRepository.Append(ctx, models.Round{CompanyID: "c2", RoundName: "Coding"})
	require.NoError(t, err)
	_, err = repos.RoundRepository.Append(ctx, models.Round{CompanyID: "c1", RoundName: "HR"})
	require.NoError(t, err)

	rounds, err := repos.RoundRepository.ListByCompany(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.Equal(t, "Aptitude", rounds[0].RoundName)
	assert.Equal(t, "HR", rounds[1].RoundName)
}

func TestRegistrationDeleteAll(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.RegistrationRepository.Append(ctx, models.Registration{StudentName: "Alice", CompanyName: "Globex"})
	require.NoError(t, err)
	_, err = repos.RegistrationRepository.Append(ctx, models.Registration{StudentName: "Bob", CompanyName: "Globex"})
	require.NoError(t, err)

	require.NoError(t, repos.RegistrationRepository.DeleteAll(ctx))

	registrations, err := repos.RegistrationRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, registrations)
}

func TestUserSaveGetClear(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.UserRepository.Get(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrUserNotFound), "no stored user means not found")

	user := &models.User{ID: "2", Name: "Student User", Role: models.RoleStudent}
	require.NoError(t, repos.UserRepository.Save(ctx, user))

	got, err := repos.UserRepository.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Student User", got.Name)

	require.NoError(t, repos.UserRepository.Clear(ctx))
	_, err = repos.UserRepository.Get(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrUserNotFound))
}
