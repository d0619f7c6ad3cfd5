// internals/features/jobs/taxonomy/model/category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	// PK
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey;column:category_id" json:"category_id"`

	// Identity
	CategoryName        string `gorm:"type:varchar(100);not null;uniqueIndex:uq_categories_name;column:category_name" json:"category_name"`
	CategorySlug        string `gorm:"type:varchar(100);not null;uniqueIndex:uq_categories_slug;column:category_slug" json:"category_slug"`
	CategoryDescription string `gorm:"type:text;column:category_description" json:"category_description,omitempty"`
	CategoryIcon        string `gorm:"type:varchar(50);column:category_icon" json:"category_icon,omitempty"`

	// Status
	CategoryIsActive bool `gorm:"not null;default:true;column:category_is_active" json:"category_is_active"`

	// Audit
	CategoryCreatedAt time.Time `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`
	CategoryUpdatedAt time.Time `gorm:"column:category_updated_at;autoUpdateTime" json:"category_updated_at"`
}

func (CategoryModel) TableName() string { return "categories" }

func (m *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.CategoryID == uuid.Nil {
		m.CategoryID = uuid.New()
	}
	return nil
}
