// internals/features/home/blogs/controller/blog_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/home/blogs/dto"
	"jobportal_backend/internals/features/home/blogs/model"
	helper "jobportal_backend/internals/helpers"
)

var validate = validator.New()

type BlogController struct {
	DB *gorm.DB
}

func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{DB: db}
}

const blogSlugMaxLen = 220

/* ===================== PUBLIC ===================== */

// ListBlogs handles GET /api/public/blogs; only published posts appear.
func (ctl *BlogController) ListBlogs(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	base := ctl.DB.Model(&model.BlogModel{}).
		Where("blog_is_published = ?", true).
		Order("blog_published_at DESC, blog_id DESC")

	if tag := strings.ToLower(strings.TrimSpace(c.Query("tag"))); tag != "" {
		base = base.Where("LOWER(CAST(blog_tags AS TEXT)) LIKE ?", "%\""+tag+"\"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count blog posts")
	}

	var items []model.BlogModel
	if err := base.Limit(p.Limit()).Offset(p.Offset()).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list blog posts")
	}

	out := make([]dto.BlogResponse, 0, len(items))
	for i := range items {
		out = append(out, *dto.NewBlogResponse(&items[i], decodeTags(items[i].BlogTags), false))
	}
	return helper.Success(c, "OK", fiber.Map{
		"blogs":      out,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GetBlogBySlug handles GET /api/public/blogs/:slug.
func (ctl *BlogController) GetBlogBySlug(c *fiber.Ctx) error {
	var m model.BlogModel
	err := ctl.DB.
		Where("blog_slug = ? AND blog_is_published = ?", strings.TrimSpace(c.Params("slug")), true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Blog post not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch blog post")
	}
	return helper.Success(c, "OK", dto.NewBlogResponse(&m, decodeTags(m.BlogTags), true))
}

/* ===================== ADMIN ===================== */

// CreateBlog handles POST /api/a/blogs.
func (ctl *BlogController) CreateBlog(c *fiber.Ctx) error {
	var req dto.CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	base := helper.Slugify(req.BlogTitle, blogSlugMaxLen)
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctl.DB, "blogs", "blog_slug", base, nil, blogSlugMaxLen)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to derive slug")
	}

	tags, err := encodeTags(req.BlogTags)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid tags")
	}

	m := model.BlogModel{
		BlogTitle:         strings.TrimSpace(req.BlogTitle),
		BlogSlug:          slug,
		BlogExcerpt:       strings.TrimSpace(req.BlogExcerpt),
		BlogContent:       req.BlogContent,
		BlogTags:          tags,
		BlogCoverImageURL: req.BlogCoverImageURL,
	}
	if req.BlogIsPublished != nil && *req.BlogIsPublished {
		m.BlogIsPublished = true
		now := time.Now()
		m.BlogPublishedAt = &now
	}
	if req.BlogIsFeatured != nil {
		m.BlogIsFeatured = *req.BlogIsFeatured
	}

	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create blog post")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Blog post created",
		dto.NewBlogResponse(&m, decodeTags(m.BlogTags), true))
}

// UpdateBlog handles PATCH /api/a/blogs/:id. Publishing for the first time
// stamps blog_published_at; the slug never changes.
func (ctl *BlogController) UpdateBlog(c *fiber.Ctx) error {
	var req dto.UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.BlogModel
	if err := ctl.DB.First(&m, "blog_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Blog post not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch blog post")
	}

	if req.BlogTitle != nil {
		m.BlogTitle = strings.TrimSpace(*req.BlogTitle)
	}
	if req.BlogExcerpt != nil {
		m.BlogExcerpt = strings.TrimSpace(*req.BlogExcerpt)
	}
	if req.BlogContent != nil {
		m.BlogContent = *req.BlogContent
	}
	if req.BlogTags != nil {
		tags, err := encodeTags(*req.BlogTags)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid tags")
		}
		m.BlogTags = tags
	}
	if req.BlogCoverImageURL != nil {
		m.BlogCoverImageURL = req.BlogCoverImageURL
	}
	if req.BlogIsPublished != nil {
		if *req.BlogIsPublished && !m.BlogIsPublished {
			now := time.Now()
			m.BlogPublishedAt = &now
		}
		m.BlogIsPublished = *req.BlogIsPublished
	}
	if req.BlogIsFeatured != nil {
		m.BlogIsFeatured = *req.BlogIsFeatured
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update blog post")
	}
	return helper.Success(c, "Blog post updated", dto.NewBlogResponse(&m, decodeTags(m.BlogTags), true))
}

// DeleteBlog handles DELETE /api/a/blogs/:id.
func (ctl *BlogController) DeleteBlog(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.BlogModel{}, "blog_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete blog post")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Blog post not found")
	}
	return helper.Success(c, "Blog post deleted", nil)
}

/* ===================== internals ===================== */

func encodeTags(tags []string) (datatypes.JSON, error) {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	raw, err := sonic.Marshal(cleaned)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func decodeTags(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
