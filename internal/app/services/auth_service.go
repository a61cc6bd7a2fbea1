package services

import (
	"context"
	"errors"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/app/models/dto"
	"github.com/kaanyilmaz/placehub/internal/app/repositories"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/pkg/attachment"
	"github.com/kaanyilmaz/placehub/internal/pkg/auth"
	"github.com/kaanyilmaz/placehub/internal/pkg/logger"
)

// AuthService handles login, logout and profile management. Login is
// intentionally permissive: any credentials are accepted and the role
// alone selects the session identity.
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login accepts any email/password pair and establishes a session for
// the requested role. The resulting user replaces whatever session user
// was stored before.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user := sessionUserForRole(models.Role(req.Role), req.Email)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, apperrors.NewCustomError(err, "Failed to generate session tokens")
	}

	logger.Info().
		Str("userId", user.ID).
		Str("role", string(user.Role)).
		Msg("User logged in")

	return &dto.LoginResponse{
		User:             user,
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

// Logout clears the stored session user.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.userRepo.Clear(ctx); err != nil {
		return err
	}
	logger.Info().Msg("User logged out")
	return nil
}

// CurrentUser returns the stored session user.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.sessionUser(ctx)
}

// sessionUser loads the stored session user. A missing user means nobody
// is logged in, which profile operations report as a session error.
func (s *AuthService) sessionUser(ctx context.Context) (*models.User, error) {
	user, err := s.userRepo.Get(ctx)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.ErrNoActiveSession
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile merges the provided fields into the session user and
// persists the result. Absent fields are left unchanged.
func (s *AuthService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.sessionUser(ctx)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.RegisterNumber != nil {
		user.RegisterNumber = *req.RegisterNumber
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Year != nil {
		user.Year = *req.Year
	}
	if req.CGPA != nil {
		user.CGPA = *req.CGPA
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.ContactNumber != nil {
		user.ContactNumber = *req.ContactNumber
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfilePhoto stores a photo for the session user as an inline
// data URL, subject to the attachment size limit.
func (s *AuthService) UpdateProfilePhoto(ctx context.Context, req dto.ProfilePhotoRequest) (*models.User, error) {
	user, err := s.sessionUser(ctx)
	if err != nil {
		return nil, err
	}

	att, err := attachment.FromDataURL(req.FileName, req.Data)
	if err != nil {
		return nil, err
	}
	user.ProfilePhoto = att.DataURL

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateResume stores a resume for the session user as an inline data
// URL, subject to the attachment size limit.
func (s *AuthService) UpdateResume(ctx context.Context, req dto.ResumeUploadRequest) (*models.User, error) {
	user, err := s.sessionUser(ctx)
	if err != nil {
		return nil, err
	}

	att, err := attachment.FromDataURL(req.FileName, req.Data)
	if err != nil {
		return nil, err
	}
	user.Resume = att.DataURL

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// sessionUserForRole builds the fixed demo identity for a role. The
// submitted email is kept so the profile page shows what was typed.
func sessionUserForRole(role models.Role, email string) *models.User {
	if role == models.RoleAdmin {
		return &models.User{
			ID:    "1",
			Name:  "Admin User",
			Email: email,
			Role:  models.RoleAdmin,
		}
	}
	return &models.User{
		ID:             "2",
		Name:           "Student User",
		Email:          email,
		Role:           models.RoleStudent,
		RegisterNumber: "CS2021001",
		Department:     "Computer Science",
		Year:           "2021",
		CGPA:           "8.5",
		Skills:         []string{"JavaScript", "React", "Node.js"},
	}
}
