// internals/features/home/feed/controller/feed_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bModel "jobportal_backend/internals/features/home/blogs/model"
	cModel "jobportal_backend/internals/features/home/companies/model"
	pDto "jobportal_backend/internals/features/jobs/postings/dto"
	pModel "jobportal_backend/internals/features/jobs/postings/model"
	tModel "jobportal_backend/internals/features/jobs/taxonomy/model"
	helper "jobportal_backend/internals/helpers"
)

type FeedController struct {
	DB *gorm.DB
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{DB: db}
}

// Home handles GET /api/public/home: one payload with everything the
// landing page renders.
func (ctl *FeedController) Home(c *fiber.Ctx) error {
	now := time.Now()

	var featured []pModel.JobPostModel
	if err := ctl.DB.
		Preload("City").Preload("State").
		Where("job_is_active = ? AND job_is_featured = ?", true, true).
		Order("job_created_at DESC, job_id DESC").
		Limit(6).
		Find(&featured).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load featured jobs")
	}

	var latest []pModel.JobPostModel
	if err := ctl.DB.
		Preload("City").Preload("State").
		Where("job_is_active = ?", true).
		Order("job_created_at DESC, job_id DESC").
		Limit(20).
		Find(&latest).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load latest jobs")
	}

	var categories []tModel.CategoryModel
	if err := ctl.DB.
		Where("category_is_active = ?", true).
		Order("category_name ASC").
		Limit(8).
		Find(&categories).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load categories")
	}

	var blogs []bModel.BlogModel
	if err := ctl.DB.
		Where("blog_is_published = ?", true).
		Order("blog_published_at DESC, blog_id DESC").
		Limit(3).
		Find(&blogs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load blog posts")
	}

	var companies []cModel.CompanyModel
	if err := ctl.DB.
		Where("company_is_featured = ?", true).
		Order("company_name ASC").
		Limit(6).
		Find(&companies).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load companies")
	}

	var testimonials []cModel.TestimonialModel
	if err := ctl.DB.
		Where("testimonial_is_active = ?", true).
		Order("testimonial_sort_order ASC, testimonial_created_at DESC").
		Limit(6).
		Find(&testimonials).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load testimonials")
	}

	return helper.Success(c, "OK", fiber.Map{
		"featured_jobs": pDto.NewJobPostSummaryResponses(featured, now),
		"latest_jobs":   pDto.NewJobPostSummaryResponses(latest, now),
		"categories":    categories,
		"blogs":         blogs,
		"companies":     companies,
		"testimonials":  testimonials,
	})
}
