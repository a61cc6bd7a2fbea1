package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/app/models/dto"
	"github.com/kaanyilmaz/placehub/internal/app/repositories"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/pkg/auth"
	"github.com/kaanyilmaz/placehub/internal/store"
)

func newAuthFixture(t *testing.T) (*AuthService, *auth.JWTService) {
	t.Helper()

	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err, "Failed to open test store")
	t.Cleanup(func() { st.Close() })

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "placehub.test",
	})

	repos := repositories.NewRepositories(st)
	return NewAuthService(repos.UserRepository, jwtService), jwtService
}

func TestLoginAsAdmin(t *testing.T) {
	svc, jwtService := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "whoever@example.com",
		Password: "anything",
		Role:     "admin",
	})
	require.NoError(t, err, "login accepts any credentials")

	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, "Admin User", resp.User.Name)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.Equal(t, "whoever@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.RefreshToken)

	claims, err := jwtService.ValidateAndExtractClaims(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginAsStudent(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "student@example.com",
		Password: "pw",
		Role:     "student",
	})
	require.NoError(t, err)

	assert.Equal(t, "2", resp.User.ID)
	assert.Equal(t, "Student User", resp.User.Name)
	assert.Equal(t, "CS2021001", resp.User.RegisterNumber)
	assert.Equal(t, "Computer Science", resp.User.Department)
	assert.Equal(t, "2021", resp.User.Year)
	assert.Equal(t, "8.5", resp.User.CGPA)
	assert.Equal(t, []string{"JavaScript", "React", "Node.js"}, resp.User.Skills)
}

func TestLoginReplacesSession(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "a@b.c", Password: "x", Role: "admin"})
	require.NoError(t, err)
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "s@b.c", Password: "x", Role: "student"})
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role, "the latest login wins")
}

func TestLogoutClearsSession(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "a@b.c", Password: "x", Role: "admin"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.CurrentUser(ctx)
	assert.Error(t, err)
}

func TestUpdateProfileMergesFields(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "s@b.c", Password: "x", Role: "student"})
	require.NoError(t, err)

	name := "Priya Sharma"
	contact := "9876543210"
	user, err := svc.UpdateProfile(ctx, dto.UpdateProfileRequest{
		Name:          &name,
		ContactNumber: &contact,
	})
	require.NoError(t, err)

	assert.Equal(t, "Priya Sharma", user.Name)
	assert.Equal(t, "9876543210", user.ContactNumber)
	assert.Equal(t, "CS2021001", user.RegisterNumber, "absent fields are untouched")
	assert.Equal(t, "Computer Science", user.Department)
}

func TestUpdateProfileChangesRegisterNumber(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "s@b.c", Password: "x", Role: "student"})
	require.NoError(t, err)

	regNo := "CS2022042"
	user, err := svc.UpdateProfile(ctx, dto.UpdateProfileRequest{RegisterNumber: &regNo})
	require.NoError(t, err)
	assert.Equal(t, "CS2022042", user.RegisterNumber)

	stored, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CS2022042", stored.RegisterNumber, "the change is persisted")
}

func TestProfileOpsWithoutLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNoActiveSession)

	name := "Nobody"
	_, err = svc.UpdateProfile(ctx, dto.UpdateProfileRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrNoActiveSession)
}
