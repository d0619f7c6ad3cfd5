// internals/features/home/companies/controller/company_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/home/companies/dto"
	"jobportal_backend/internals/features/home/companies/model"
	helper "jobportal_backend/internals/helpers"
)

var validate = validator.New()

type CompanyController struct {
	DB *gorm.DB
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{DB: db}
}

const companySlugMaxLen = 220

/* ===================== PUBLIC ===================== */

// ListCompanies handles GET /api/public/companies; ?featured=true narrows
// to the featured set.
func (ctl *CompanyController) ListCompanies(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.CompanyModel{}).Order("company_name ASC")
	if c.Query("featured") == "true" {
		q = q.Where("company_is_featured = ?", true)
	}

	var items []model.CompanyModel
	if err := q.Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list companies")
	}
	return helper.Success(c, "OK", items)
}

// ListTestimonials handles GET /api/public/testimonials.
func (ctl *CompanyController) ListTestimonials(c *fiber.Ctx) error {
	var items []model.TestimonialModel
	err := ctl.DB.
		Where("testimonial_is_active = ?", true).
		Order("testimonial_sort_order ASC, testimonial_created_at DESC").
		Find(&items).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list testimonials")
	}
	return helper.Success(c, "OK", items)
}

// GetSiteSettings handles GET /api/public/site-settings.
func (ctl *CompanyController) GetSiteSettings(c *fiber.Ctx) error {
	s, err := model.LoadSiteSettings(ctl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load site settings")
	}
	return helper.Success(c, "OK", s)
}

/* ===================== ADMIN ===================== */

// CreateCompany handles POST /api/a/companies.
func (ctl *CompanyController) CreateCompany(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	name := strings.TrimSpace(req.CompanyName)

	var count int64
	if err := ctl.DB.Model(&model.CompanyModel{}).
		Where("LOWER(company_name) = ?", strings.ToLower(name)).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check company name")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "A company with this name already exists")
	}

	base := helper.Slugify(name, companySlugMaxLen)
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctl.DB, "companies", "company_slug", base, nil, companySlugMaxLen)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to derive slug")
	}

	m := model.CompanyModel{
		CompanyName:        name,
		CompanySlug:        slug,
		CompanyLogoURL:     req.CompanyLogoURL,
		CompanyWebsite:     strings.TrimSpace(req.CompanyWebsite),
		CompanyDescription: strings.TrimSpace(req.CompanyDescription),
	}
	if req.CompanyIsFeatured != nil {
		m.CompanyIsFeatured = *req.CompanyIsFeatured
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create company")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Company created", m)
}

// UpdateCompany handles PATCH /api/a/companies/:id. The slug is immutable.
func (ctl *CompanyController) UpdateCompany(c *fiber.Ctx) error {
	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.CompanyModel
	if err := ctl.DB.First(&m, "company_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Company not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch company")
	}

	if req.CompanyName != nil {
		m.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.CompanyLogoURL != nil {
		m.CompanyLogoURL = req.CompanyLogoURL
	}
	if req.CompanyWebsite != nil {
		m.CompanyWebsite = strings.TrimSpace(*req.CompanyWebsite)
	}
	if req.CompanyDescription != nil {
		m.CompanyDescription = strings.TrimSpace(*req.CompanyDescription)
	}
	if req.CompanyIsFeatured != nil {
		m.CompanyIsFeatured = *req.CompanyIsFeatured
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update company")
	}
	return helper.Success(c, "Company updated", m)
}

// DeleteCompany handles DELETE /api/a/companies/:id.
func (ctl *CompanyController) DeleteCompany(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.CompanyModel{}, "company_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete company")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Company not found")
	}
	return helper.Success(c, "Company deleted", nil)
}

// CreateTestimonial handles POST /api/a/testimonials.
func (ctl *CompanyController) CreateTestimonial(c *fiber.Ctx) error {
	var req dto.CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.TestimonialModel{
		TestimonialAuthorName:  strings.TrimSpace(req.AuthorName),
		TestimonialAuthorTitle: strings.TrimSpace(req.AuthorTitle),
		TestimonialContent:     strings.TrimSpace(req.Content),
		TestimonialAvatarURL:   req.AvatarURL,
		TestimonialIsActive:    true,
	}
	if req.SortOrder != nil {
		m.TestimonialSortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		m.TestimonialIsActive = *req.IsActive
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create testimonial")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Testimonial created", m)
}

// DeleteTestimonial handles DELETE /api/a/testimonials/:id.
func (ctl *CompanyController) DeleteTestimonial(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.TestimonialModel{}, "testimonial_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete testimonial")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Testimonial not found")
	}
	return helper.Success(c, "Testimonial deleted", nil)
}

// UpdateSiteSettings handles PATCH /api/a/site-settings.
func (ctl *CompanyController) UpdateSiteSettings(c *fiber.Ctx) error {
	var req dto.UpdateSiteSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	s, err := model.LoadSiteSettings(ctl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load site settings")
	}

	if req.SiteName != nil {
		s.SettingsSiteName = strings.TrimSpace(*req.SiteName)
	}
	if req.Tagline != nil {
		s.SettingsTagline = strings.TrimSpace(*req.Tagline)
	}
	if req.ContactEmail != nil {
		s.SettingsContactEmail = strings.ToLower(strings.TrimSpace(*req.ContactEmail))
	}
	if req.Phone != nil {
		s.SettingsPhone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		s.SettingsAddress = strings.TrimSpace(*req.Address)
	}
	if req.FacebookURL != nil {
		s.SettingsFacebookURL = strings.TrimSpace(*req.FacebookURL)
	}
	if req.TwitterURL != nil {
		s.SettingsTwitterURL = strings.TrimSpace(*req.TwitterURL)
	}
	if req.LinkedInURL != nil {
		s.SettingsLinkedInURL = strings.TrimSpace(*req.LinkedInURL)
	}
	if req.FooterText != nil {
		s.SettingsFooterText = strings.TrimSpace(*req.FooterText)
	}

	if err := ctl.DB.Save(s).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update site settings")
	}
	return helper.Success(c, "Site settings updated", s)
}
