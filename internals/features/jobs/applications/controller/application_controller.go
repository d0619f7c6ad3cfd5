// internals/features/jobs/applications/controller/application_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/jobs/applications/dto"
	"jobportal_backend/internals/features/jobs/applications/model"
	"jobportal_backend/internals/features/jobs/applications/service"
	helper "jobportal_backend/internals/helpers"
)

var validate = validator.New()

type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

/* ===================== PUBLIC ===================== */

// Apply handles POST /api/public/jobs/:slug/apply.
func (ctl *ApplicationController) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := service.Apply(c.Context(), ctl.DB, strings.TrimSpace(c.Params("slug")), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Job posting not found")
		case errors.Is(err, service.ErrJobClosed):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrDuplicateApplication):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit application")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Application submitted", dto.NewApplicationResponse(m))
}

/* ===================== ADMIN ===================== */

// ListApplications handles GET /api/a/applications with optional job_id
// and status filters.
func (ctl *ApplicationController) ListApplications(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	base := ctl.DB.Model(&model.ApplicationModel{}).
		Order("application_created_at DESC, application_id DESC")

	if jobID := strings.TrimSpace(c.Query("job_id")); jobID != "" {
		base = base.Where("application_job_id = ?", jobID)
	}
	switch strings.TrimSpace(c.Query("status")) {
	case model.StatusShortlisted:
		base = base.Where("application_is_shortlisted = ? AND application_is_rejected = ?", true, false)
	case model.StatusRejected:
		base = base.Where("application_is_rejected = ?", true)
	case model.StatusPending:
		base = base.Where("application_is_shortlisted = ? AND application_is_rejected = ?", false, false)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count applications")
	}

	var items []model.ApplicationModel
	if err := base.
		Preload("Job").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list applications")
	}

	return helper.Success(c, "OK", fiber.Map{
		"applications": dto.NewApplicationResponses(items),
		"pagination":   helper.BuildMeta(total, p),
	})
}

// GetApplication handles GET /api/a/applications/:id.
func (ctl *ApplicationController) GetApplication(c *fiber.Ctx) error {
	var m model.ApplicationModel
	if err := ctl.DB.Preload("Job").First(&m, "application_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch application")
	}
	return helper.Success(c, "OK", dto.NewApplicationResponse(&m))
}

// TriageApplication handles PATCH /api/a/applications/:id.
func (ctl *ApplicationController) TriageApplication(c *fiber.Ctx) error {
	var req dto.TriageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	m, err := service.Triage(c.Context(), ctl.DB, c.Params("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update application")
	}
	return helper.Success(c, "Application updated", dto.NewApplicationResponse(m))
}
