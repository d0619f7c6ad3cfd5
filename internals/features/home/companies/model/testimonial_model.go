// internals/features/home/companies/model/testimonial_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialModel struct {
	TestimonialID uuid.UUID `gorm:"type:uuid;primaryKey;column:testimonial_id" json:"testimonial_id"`

	TestimonialAuthorName  string  `gorm:"type:varchar(150);not null;column:testimonial_author_name" json:"testimonial_author_name"`
	TestimonialAuthorTitle string  `gorm:"type:varchar(150);column:testimonial_author_title" json:"testimonial_author_title,omitempty"`
	TestimonialContent     string  `gorm:"type:text;not null;column:testimonial_content" json:"testimonial_content"`
	TestimonialAvatarURL   *string `gorm:"column:testimonial_avatar_url" json:"testimonial_avatar_url,omitempty"`

	TestimonialIsActive  bool `gorm:"not null;default:true;column:testimonial_is_active" json:"testimonial_is_active"`
	TestimonialSortOrder int  `gorm:"not null;default:0;column:testimonial_sort_order" json:"testimonial_sort_order"`

	TestimonialCreatedAt time.Time `gorm:"column:testimonial_created_at;autoCreateTime" json:"testimonial_created_at"`
	TestimonialUpdatedAt time.Time `gorm:"column:testimonial_updated_at;autoUpdateTime" json:"testimonial_updated_at"`
}

func (TestimonialModel) TableName() string { return "testimonials" }

func (m *TestimonialModel) BeforeCreate(tx *gorm.DB) error {
	if m.TestimonialID == uuid.Nil {
		m.TestimonialID = uuid.New()
	}
	return nil
}
