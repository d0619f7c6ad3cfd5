// internals/features/users/account/service/account_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobportal_backend/internals/configs"
	"jobportal_backend/internals/constants"
	"jobportal_backend/internals/features/users/account/dto"
	"jobportal_backend/internals/features/users/account/model"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// Register creates the user and its profile in one transaction so a user
// row never exists without a profile row.
func Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*model.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = constants.RoleCandidate
	}

	var out *model.UserModel
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.UserModel{}).
			Where("LOWER(user_email) = ?", email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		u := &model.UserModel{
			UserName:     strings.TrimSpace(req.UserName),
			UserEmail:    email,
			UserPassword: string(hash),
			UserRole:     role,
			UserIsActive: true,
		}
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.UserProfileModel{ProfileUserID: u.UserID}).Error; err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Login verifies the credentials and issues an access + refresh token pair.
func Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var u model.UserModel
	if err := db.WithContext(ctx).
		Where("LOWER(user_email) = ?", email).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.UserIsActive {
		return nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return issueTokens(&u)
}

// Refresh exchanges a valid refresh token for a fresh pair.
func Refresh(ctx context.Context, db *gorm.DB, rawToken string) (*dto.TokenResponse, error) {
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidRefresh
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidRefresh
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidRefresh
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, ErrInvalidRefresh
	}

	var u model.UserModel
	if err := db.WithContext(ctx).First(&u, "user_id = ?", userID).Error; err != nil {
		return nil, ErrInvalidRefresh
	}
	if !u.UserIsActive {
		return nil, ErrAccountDisabled
	}
	return issueTokens(&u)
}

// ChangePassword verifies the old password before storing a new hash.
func ChangePassword(ctx context.Context, db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	var u model.UserModel
	if err := db.WithContext(ctx).First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&model.UserModel{}).
		Where("user_id = ?", u.UserID).
		Update("user_password", string(hash)).Error
}

/* ===================== internals ===================== */

func issueTokens(u *model.UserModel) (*dto.TokenResponse, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	})
	accessStr, err := access.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.UserID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTokenTTL).Unix(),
	})
	refreshStr, err := refresh.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessStr,
		RefreshToken: refreshStr,
		User:         dto.NewUserResponse(u),
	}, nil
}
