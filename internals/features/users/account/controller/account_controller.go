// internals/features/users/account/controller/account_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/users/account/dto"
	"jobportal_backend/internals/features/users/account/model"
	"jobportal_backend/internals/features/users/account/service"
	helper "jobportal_backend/internals/helpers"
)

var validate = validator.New()

type AccountController struct {
	DB *gorm.DB
}

func NewAccountController(db *gorm.DB) *AccountController {
	return &AccountController{DB: db}
}

/* ===================== AUTH ===================== */

// Register handles POST /api/auth/register.
func (ctl *AccountController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := service.Register(c.Context(), ctl.DB, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration successful", dto.NewUserResponse(u))
}

// Login handles POST /api/auth/login.
func (ctl *AccountController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	tokens, err := service.Login(c.Context(), ctl.DB, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrAccountDisabled):
			return helper.Error(c, fiber.StatusForbidden, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to login")
	}

	return helper.Success(c, "Login successful", tokens)
}

// Refresh handles POST /api/auth/refresh.
func (ctl *AccountController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	tokens, err := service.Refresh(c.Context(), ctl.DB, strings.TrimSpace(req.RefreshToken))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefresh):
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrAccountDisabled):
			return helper.Error(c, fiber.StatusForbidden, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to refresh token")
	}

	return helper.Success(c, "Token refreshed", tokens)
}

/* ===================== PROFILE ===================== */

// Me handles GET /api/u/me.
func (ctl *AccountController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var u model.UserModel
	if err := ctl.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	var p model.UserProfileModel
	if err := ctl.DB.First(&p, "profile_user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return helper.Success(c, "OK", dto.NewProfileResponse(&u, &p))
}

// UpdateProfile handles PATCH /api/u/me.
func (ctl *AccountController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u model.UserModel
	if err := ctl.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	var p model.UserProfileModel
	if err := ctl.DB.First(&p, "profile_user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	if req.UserName != nil {
		u.UserName = strings.TrimSpace(*req.UserName)
	}
	if req.ProfilePhone != nil {
		p.ProfilePhone = strings.TrimSpace(*req.ProfilePhone)
	}
	if req.ProfileHeadline != nil {
		p.ProfileHeadline = strings.TrimSpace(*req.ProfileHeadline)
	}
	if req.ProfileBio != nil {
		p.ProfileBio = strings.TrimSpace(*req.ProfileBio)
	}
	if req.ProfileResumeURL != nil {
		p.ProfileResumeURL = req.ProfileResumeURL
	}
	if req.ProfileAvatarURL != nil {
		p.ProfileAvatarURL = req.ProfileAvatarURL
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&u).Error; err != nil {
			return err
		}
		return tx.Save(&p).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.Success(c, "Profile updated", dto.NewProfileResponse(&u, &p))
}

// ChangePassword handles POST /api/u/change-password.
func (ctl *AccountController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.ChangePassword(c.Context(), ctl.DB, userID.String(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return helper.Error(c, fiber.StatusUnauthorized, "Old password is incorrect")
		case errors.Is(err, service.ErrUserNotFound):
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to change password")
	}
	return helper.Success(c, "Password changed", nil)
}
