// internals/features/home/blogs/dto/blog_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"jobportal_backend/internals/features/home/blogs/model"
)

type CreateBlogRequest struct {
	BlogTitle         string   `json:"blog_title" validate:"required,min=3,max=200"`
	BlogExcerpt       string   `json:"blog_excerpt" validate:"omitempty,max=300"`
	BlogContent       string   `json:"blog_content" validate:"required,min=10"`
	BlogTags          []string `json:"blog_tags" validate:"omitempty,dive,min=1,max=50"`
	BlogCoverImageURL *string  `json:"blog_cover_image_url" validate:"omitempty,url"`
	BlogIsPublished   *bool    `json:"blog_is_published"`
	BlogIsFeatured    *bool    `json:"blog_is_featured"`
}

type UpdateBlogRequest struct {
	BlogTitle         *string   `json:"blog_title" validate:"omitempty,min=3,max=200"`
	BlogExcerpt       *string   `json:"blog_excerpt" validate:"omitempty,max=300"`
	BlogContent       *string   `json:"blog_content" validate:"omitempty,min=10"`
	BlogTags          *[]string `json:"blog_tags"`
	BlogCoverImageURL *string   `json:"blog_cover_image_url" validate:"omitempty,url"`
	BlogIsPublished   *bool     `json:"blog_is_published"`
	BlogIsFeatured    *bool     `json:"blog_is_featured"`
}

type BlogResponse struct {
	BlogID            uuid.UUID  `json:"blog_id"`
	BlogTitle         string     `json:"blog_title"`
	BlogSlug          string     `json:"blog_slug"`
	BlogExcerpt       string     `json:"blog_excerpt,omitempty"`
	BlogContent       string     `json:"blog_content,omitempty"`
	BlogTags          []string   `json:"blog_tags"`
	BlogCoverImageURL *string    `json:"blog_cover_image_url,omitempty"`
	BlogIsPublished   bool       `json:"blog_is_published"`
	BlogIsFeatured    bool       `json:"blog_is_featured"`
	BlogPublishedAt   *time.Time `json:"blog_published_at,omitempty"`
	BlogCreatedAt     time.Time  `json:"blog_created_at"`
}

// NewBlogResponse renders a blog; pass withContent=false for list views so
// the body stays out of the payload.
func NewBlogResponse(m *model.BlogModel, tags []string, withContent bool) *BlogResponse {
	if tags == nil {
		tags = []string{}
	}
	out := &BlogResponse{
		BlogID:            m.BlogID,
		BlogTitle:         m.BlogTitle,
		BlogSlug:          m.BlogSlug,
		BlogExcerpt:       m.BlogExcerpt,
		BlogTags:          tags,
		BlogCoverImageURL: m.BlogCoverImageURL,
		BlogIsPublished:   m.BlogIsPublished,
		BlogIsFeatured:    m.BlogIsFeatured,
		BlogPublishedAt:   m.BlogPublishedAt,
		BlogCreatedAt:     m.BlogCreatedAt,
	}
	if withContent {
		out.BlogContent = m.BlogContent
	}
	return out
}
