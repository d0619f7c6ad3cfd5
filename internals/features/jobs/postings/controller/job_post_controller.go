// internals/features/jobs/postings/controller/job_post_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/jobs/postings/dto"
	"jobportal_backend/internals/features/jobs/postings/model"
	"jobportal_backend/internals/features/jobs/postings/service"
	helper "jobportal_backend/internals/helpers"
)

var validate = validator.New()

type JobPostController struct {
	DB *gorm.DB
}

func NewJobPostController(db *gorm.DB) *JobPostController {
	return &JobPostController{DB: db}
}

var jobSortAllowed = map[string]string{
	"created_at": "job_posts.job_created_at",
	"title":      "job_posts.job_title",
	"company":    "job_posts.job_company_name",
}

/* ===================== PUBLIC ===================== */

// SearchJobPosts handles GET /api/public/jobs with the full filter set.
func (ctl *JobPostController) SearchJobPosts(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var q dto.JobSearchQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	items, total, err := service.SearchJobPosts(ctl.DB, &q, p.Limit(), p.Offset())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to search job postings")
	}

	return helper.Success(c, "OK", fiber.Map{
		"jobs":       dto.NewJobPostSummaryResponses(items, time.Now()),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GetJobPostBySlug handles GET /api/public/jobs/:slug. Only active
// postings resolve; the payload carries related postings from the same
// category.
func (ctl *JobPostController) GetJobPostBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))

	m, err := service.FindActiveBySlug(ctl.DB, slug)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Job posting not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch job posting")
	}

	related, err := service.RelatedJobPosts(ctl.DB, m, 4)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch related postings")
	}

	now := time.Now()
	return helper.Success(c, "OK", fiber.Map{
		"job":          dto.NewJobPostDetailResponse(m, service.DecodeSkills(m.JobSkills), now),
		"related_jobs": dto.NewJobPostSummaryResponses(related, now),
	})
}

// ListByCategorySlug handles GET /api/public/categories/:slug/jobs.
func (ctl *JobPostController) ListByCategorySlug(c *fiber.Ctx) error {
	return ctl.listByTaxonomy(c, "categories", "category_slug", "job_category_id", "category_id")
}

// ListBySubcategorySlug handles GET /api/public/subcategories/:slug/jobs.
func (ctl *JobPostController) ListBySubcategorySlug(c *fiber.Ctx) error {
	return ctl.listByTaxonomy(c, "subcategories", "subcategory_slug", "job_subcategory_id", "subcategory_id")
}

// ListByFunctionalAreaSlug handles GET /api/public/functional-areas/:slug/jobs.
func (ctl *JobPostController) ListByFunctionalAreaSlug(c *fiber.Ctx) error {
	return ctl.listByTaxonomy(c, "functional_areas", "functional_area_slug", "job_functional_area_id", "functional_area_id")
}

func (ctl *JobPostController) listByTaxonomy(c *fiber.Ctx, table, slugCol, jobCol, idCol string) error {
	slug := strings.TrimSpace(c.Params("slug"))
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	base := ctl.DB.Model(&model.JobPostModel{}).
		Joins("JOIN "+table+" ON "+table+"."+idCol+" = job_posts."+jobCol).
		Where(table+"."+slugCol+" = ?", slug).
		Where("job_posts.job_is_active = ?", true).
		Order("job_posts.job_created_at DESC, job_posts.job_id DESC")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count job postings")
	}

	var items []model.JobPostModel
	if err := base.
		Preload("City").Preload("State").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list job postings")
	}

	return helper.Success(c, "OK", fiber.Map{
		"jobs":       dto.NewJobPostSummaryResponses(items, time.Now()),
		"pagination": helper.BuildMeta(total, p),
	})
}

/* ===================== EMPLOYER / ADMIN ===================== */

// CreateJobPost handles POST /api/u/jobs.
func (ctl *JobPostController) CreateJobPost(c *fiber.Ctx) error {
	var req dto.CreateJobPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := service.CreateJobPost(c.Context(), ctl.DB, &req)
	if err != nil {
		return ctl.writeError(c, err, "Failed to create job posting")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Job posting created",
		dto.NewJobPostDetailResponse(m, service.DecodeSkills(m.JobSkills), time.Now()))
}

// UpdateJobPost handles PATCH /api/u/jobs/:id (also flips is_active /
// is_featured).
func (ctl *JobPostController) UpdateJobPost(c *fiber.Ctx) error {
	var req dto.UpdateJobPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := service.UpdateJobPost(c.Context(), ctl.DB, c.Params("id"), &req)
	if err != nil {
		return ctl.writeError(c, err, "Failed to update job posting")
	}

	return helper.Success(c, "Job posting updated",
		dto.NewJobPostDetailResponse(m, service.DecodeSkills(m.JobSkills), time.Now()))
}

// ListAllJobPosts handles GET /api/a/jobs; unlike the public search it
// also returns inactive postings.
func (ctl *JobPostController) ListAllJobPosts(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	order, err := p.SafeOrderClause(jobSortAllowed, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort parameters")
	}
	base := ctl.DB.Model(&model.JobPostModel{}).Order(order)

	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		base = base.Where("job_posts.job_is_active = ?", active == "true")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count job postings")
	}

	var items []model.JobPostModel
	if err := base.
		Preload("City").Preload("State").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list job postings")
	}

	return helper.Success(c, "OK", fiber.Map{
		"jobs":       dto.NewJobPostSummaryResponses(items, time.Now()),
		"pagination": helper.BuildMeta(total, p),
	})
}

// DeleteJobPost handles DELETE /api/a/jobs/:id.
func (ctl *JobPostController) DeleteJobPost(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.JobPostModel{}, "job_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete job posting")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Job posting not found")
	}
	return helper.Success(c, "Job posting deleted", nil)
}

func (ctl *JobPostController) writeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Job posting not found")
	case errors.Is(err, service.ErrCityNotFound):
		return helper.Error(c, fiber.StatusBadRequest, "City not found")
	case errors.Is(err, service.ErrFunctionalAreaNotFound):
		return helper.Error(c, fiber.StatusBadRequest, "Functional area not found")
	case errors.Is(err, service.ErrHierarchyMismatch):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSalaryRange), errors.Is(err, service.ErrExperienceRange):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Error(c, fiber.StatusInternalServerError, fallback)
}
