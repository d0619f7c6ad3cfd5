// internals/features/users/account/dto/account_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"jobportal_backend/internals/features/users/account/model"
)

/* ===================== REQUESTS ===================== */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=candidate employer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UpdateProfileRequest struct {
	UserName         *string `json:"user_name" validate:"omitempty,min=2,max=100"`
	ProfilePhone     *string `json:"profile_phone" validate:"omitempty,max=20"`
	ProfileHeadline  *string `json:"profile_headline" validate:"omitempty,max=150"`
	ProfileBio       *string `json:"profile_bio" validate:"omitempty,max=5000"`
	ProfileResumeURL *string `json:"profile_resume_url" validate:"omitempty,url"`
	ProfileAvatarURL *string `json:"profile_avatar_url" validate:"omitempty,url"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	UserRole  string    `json:"user_role"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileResponse struct {
	UserResponse

	ProfilePhone     string  `json:"profile_phone,omitempty"`
	ProfileHeadline  string  `json:"profile_headline,omitempty"`
	ProfileBio       string  `json:"profile_bio,omitempty"`
	ProfileResumeURL *string `json:"profile_resume_url,omitempty"`
	ProfileAvatarURL *string `json:"profile_avatar_url,omitempty"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

func NewUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		UserName:  u.UserName,
		UserEmail: u.UserEmail,
		UserRole:  u.UserRole,
		CreatedAt: u.UserCreatedAt,
	}
}

func NewProfileResponse(u *model.UserModel, p *model.UserProfileModel) *ProfileResponse {
	return &ProfileResponse{
		UserResponse:     NewUserResponse(u),
		ProfilePhone:     p.ProfilePhone,
		ProfileHeadline:  p.ProfileHeadline,
		ProfileBio:       p.ProfileBio,
		ProfileResumeURL: p.ProfileResumeURL,
		ProfileAvatarURL: p.ProfileAvatarURL,
	}
}
