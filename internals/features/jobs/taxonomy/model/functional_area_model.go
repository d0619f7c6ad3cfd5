// internals/features/jobs/taxonomy/model/functional_area_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FunctionalAreaModel struct {
	// PK
	FunctionalAreaID uuid.UUID `gorm:"type:uuid;primaryKey;column:functional_area_id" json:"functional_area_id"`

	// Parent
	FunctionalAreaSubcategoryID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_functional_areas_parent_name;index;column:functional_area_subcategory_id" json:"functional_area_subcategory_id"`
	Subcategory                 SubcategoryModel `gorm:"foreignKey:FunctionalAreaSubcategoryID;references:SubcategoryID;constraint:OnDelete:CASCADE" json:"-"`

	// Identity (name unique within the subcategory, slug unique globally)
	FunctionalAreaName        string `gorm:"type:varchar(100);not null;uniqueIndex:uq_functional_areas_parent_name;column:functional_area_name" json:"functional_area_name"`
	FunctionalAreaSlug        string `gorm:"type:varchar(200);not null;uniqueIndex:uq_functional_areas_slug;column:functional_area_slug" json:"functional_area_slug"`
	FunctionalAreaDescription string `gorm:"type:text;column:functional_area_description" json:"functional_area_description,omitempty"`

	// Status
	FunctionalAreaIsActive bool `gorm:"not null;default:true;column:functional_area_is_active" json:"functional_area_is_active"`

	// Audit
	FunctionalAreaCreatedAt time.Time `gorm:"column:functional_area_created_at;autoCreateTime" json:"functional_area_created_at"`
	FunctionalAreaUpdatedAt time.Time `gorm:"column:functional_area_updated_at;autoUpdateTime" json:"functional_area_updated_at"`
}

func (FunctionalAreaModel) TableName() string { return "functional_areas" }

func (m *FunctionalAreaModel) BeforeCreate(tx *gorm.DB) error {
	if m.FunctionalAreaID == uuid.Nil {
		m.FunctionalAreaID = uuid.New()
	}
	return nil
}
