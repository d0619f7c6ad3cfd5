// internals/features/jobs/taxonomy/model/subcategory_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubcategoryModel struct {
	// PK
	SubcategoryID uuid.UUID `gorm:"type:uuid;primaryKey;column:subcategory_id" json:"subcategory_id"`

	// Parent
	SubcategoryCategoryID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_subcategories_parent_name;index;column:subcategory_category_id" json:"subcategory_category_id"`
	Category              CategoryModel `gorm:"foreignKey:SubcategoryCategoryID;references:CategoryID;constraint:OnDelete:CASCADE" json:"-"`

	// Identity (name unique within the category, slug unique globally)
	SubcategoryName        string `gorm:"type:varchar(100);not null;uniqueIndex:uq_subcategories_parent_name;column:subcategory_name" json:"subcategory_name"`
	SubcategorySlug        string `gorm:"type:varchar(150);not null;uniqueIndex:uq_subcategories_slug;column:subcategory_slug" json:"subcategory_slug"`
	SubcategoryDescription string `gorm:"type:text;column:subcategory_description" json:"subcategory_description,omitempty"`

	// Status
	SubcategoryIsActive bool `gorm:"not null;default:true;column:subcategory_is_active" json:"subcategory_is_active"`

	// Audit
	SubcategoryCreatedAt time.Time `gorm:"column:subcategory_created_at;autoCreateTime" json:"subcategory_created_at"`
	SubcategoryUpdatedAt time.Time `gorm:"column:subcategory_updated_at;autoUpdateTime" json:"subcategory_updated_at"`
}

func (SubcategoryModel) TableName() string { return "subcategories" }

func (m *SubcategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubcategoryID == uuid.Nil {
		m.SubcategoryID = uuid.New()
	}
	return nil
}
