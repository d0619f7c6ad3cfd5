// internals/features/home/blogs/model/blog_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BlogModel struct {
	BlogID uuid.UUID `gorm:"type:uuid;primaryKey;column:blog_id" json:"blog_id"`

	BlogTitle   string `gorm:"type:varchar(200);not null;column:blog_title" json:"blog_title"`
	BlogSlug    string `gorm:"type:varchar(220);not null;uniqueIndex:uq_blogs_slug;column:blog_slug" json:"blog_slug"`
	BlogExcerpt string `gorm:"type:varchar(300);column:blog_excerpt" json:"blog_excerpt,omitempty"`
	BlogContent string `gorm:"type:text;not null;column:blog_content" json:"blog_content"`

	BlogTags          datatypes.JSON `gorm:"column:blog_tags" json:"blog_tags,omitempty"`
	BlogCoverImageURL *string        `gorm:"column:blog_cover_image_url" json:"blog_cover_image_url,omitempty"`

	BlogIsPublished bool       `gorm:"not null;default:false;column:blog_is_published" json:"blog_is_published"`
	BlogIsFeatured  bool       `gorm:"not null;default:false;column:blog_is_featured" json:"blog_is_featured"`
	BlogPublishedAt *time.Time `gorm:"column:blog_published_at" json:"blog_published_at,omitempty"`

	BlogCreatedAt time.Time `gorm:"column:blog_created_at;autoCreateTime" json:"blog_created_at"`
	BlogUpdatedAt time.Time `gorm:"column:blog_updated_at;autoUpdateTime" json:"blog_updated_at"`
}

func (BlogModel) TableName() string { return "blogs" }

func (m *BlogModel) BeforeCreate(tx *gorm.DB) error {
	if m.BlogID == uuid.Nil {
		m.BlogID = uuid.New()
	}
	return nil
}
