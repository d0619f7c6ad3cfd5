package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobportal_backend/internals/configs"
	"jobportal_backend/internals/features/users/account/dto"
	"jobportal_backend/internals/features/users/account/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.UserProfileModel{}))

	configs.JWTSecret = "test-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	return db
}

func validRegister() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		UserName: "Jordan Reyes",
		Email:    "Jordan@Example.com",
		Password: "correct-horse",
	}
}

func TestRegisterCreatesProfileInSameTransaction(t *testing.T) {
	db := openTestDB(t)

	u, err := Register(context.Background(), db, validRegister())
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", u.UserEmail, "emails are stored lower-cased")
	assert.Equal(t, "candidate", u.UserRole)

	var profile model.UserProfileModel
	require.NoError(t, db.First(&profile, "profile_user_id = ?", u.UserID).Error,
		"the profile row exists as soon as the user does")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := Register(ctx, db, validRegister())
	require.NoError(t, err)

	dup := validRegister()
	dup.Email = "JORDAN@EXAMPLE.COM"
	_, err = Register(ctx, db, dup)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	u, err := Register(ctx, db, validRegister())
	require.NoError(t, err)

	tokens, err := Login(ctx, db, &dto.LoginRequest{Email: "jordan@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, u.UserID, tokens.User.UserID)

	// The access token carries the id and role claims the middleware reads.
	parsed, err := jwt.Parse(tokens.AccessToken, func(tk *jwt.Token) (any, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, u.UserID.String(), claims["user_id"])
	assert.Equal(t, "candidate", claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := Register(ctx, db, validRegister())
	require.NoError(t, err)

	_, err = Login(ctx, db, &dto.LoginRequest{Email: "jordan@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Login(ctx, db, &dto.LoginRequest{Email: "nobody@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown emails look the same as bad passwords")
}

func TestRefreshRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := Register(ctx, db, validRegister())
	require.NoError(t, err)
	tokens, err := Login(ctx, db, &dto.LoginRequest{Email: "jordan@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	fresh, err := Refresh(ctx, db, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	_, err = Refresh(ctx, db, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestChangePassword(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	u, err := Register(ctx, db, validRegister())
	require.NoError(t, err)

	err = ChangePassword(ctx, db, u.UserID.String(), &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "new-password-123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = ChangePassword(ctx, db, u.UserID.String(), &dto.ChangePasswordRequest{
		OldPassword: "correct-horse",
		NewPassword: "new-password-123",
	})
	require.NoError(t, err)

	_, err = Login(ctx, db, &dto.LoginRequest{Email: "jordan@example.com", Password: "new-password-123"})
	require.NoError(t, err)
}
