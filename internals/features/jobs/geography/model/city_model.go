// internals/features/jobs/geography/model/city_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CityModel struct {
	// PK
	CityID uuid.UUID `gorm:"type:uuid;primaryKey;column:city_id" json:"city_id"`

	// Parent
	CityStateID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_cities_state_name;index;column:city_state_id" json:"city_state_id"`
	State       StateModel `gorm:"foreignKey:CityStateID;references:StateID;constraint:OnDelete:CASCADE" json:"-"`

	// Identity (name unique within the state, slug unique globally)
	CityName string `gorm:"type:varchar(100);not null;uniqueIndex:uq_cities_state_name;column:city_name" json:"city_name"`
	CitySlug string `gorm:"type:varchar(120);not null;uniqueIndex:uq_cities_slug;column:city_slug" json:"city_slug"`

	// Status
	CityIsActive bool `gorm:"not null;default:true;column:city_is_active" json:"city_is_active"`

	// Audit
	CityCreatedAt time.Time `gorm:"column:city_created_at;autoCreateTime" json:"city_created_at"`
	CityUpdatedAt time.Time `gorm:"column:city_updated_at;autoUpdateTime" json:"city_updated_at"`
}

func (CityModel) TableName() string { return "cities" }

func (m *CityModel) BeforeCreate(tx *gorm.DB) error {
	if m.CityID == uuid.Nil {
		m.CityID = uuid.New()
	}
	return nil
}
