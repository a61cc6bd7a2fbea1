package dto

import "github.com/kaanyilmaz/placehub/internal/app/models"

// LoginRequest carries the credentials posted by the login form. Any
// email/password pair is accepted; only the role determines the identity.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@placehub.app"`
	Password string `json:"password" binding:"required" example:"secret"`
	Role     string `json:"role" binding:"required,oneof=admin student" example:"admin"`
}

// LoginResponse returns the session user together with a token pair.
type LoginResponse struct {
	User             *models.User `json:"user"`
	AccessToken      string       `json:"accessToken"`
	RefreshToken     string       `json:"refreshToken"`
	ExpiresIn        int          `json:"expiresIn"`
	RefreshExpiresIn int          `json:"refreshExpiresIn"`
}

// UpdateProfileRequest carries a partial profile update. Nil fields are
// left unchanged on the stored user.
type UpdateProfileRequest struct {
	Name           *string   `json:"name,omitempty"`
	Email          *string   `json:"email,omitempty" binding:"omitempty,email"`
	RegisterNumber *string   `json:"registerNumber,omitempty"`
	Department     *string   `json:"department,omitempty"`
	Year           *string   `json:"year,omitempty"`
	CGPA           *string   `json:"cgpa,omitempty"`
	Skills         *[]string `json:"skills,omitempty"`
	ContactNumber  *string   `json:"contactNumber,omitempty"`
}

// ProfilePhotoRequest uploads a profile photo as an inline data URL.
type ProfilePhotoRequest struct {
	FileName string `json:"fileName" binding:"required"`
	Data     string `json:"data" binding:"required"`
}

// ResumeUploadRequest uploads a resume as an inline data URL.
type ResumeUploadRequest struct {
	FileName string `json:"fileName" binding:"required"`
	Data     string `json:"data" binding:"required"`
}
