// internals/features/home/companies/model/company_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyModel struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey;column:company_id" json:"company_id"`

	CompanyName        string  `gorm:"type:varchar(200);not null;uniqueIndex:uq_companies_name;column:company_name" json:"company_name"`
	CompanySlug        string  `gorm:"type:varchar(220);not null;uniqueIndex:uq_companies_slug;column:company_slug" json:"company_slug"`
	CompanyLogoURL     *string `gorm:"column:company_logo_url" json:"company_logo_url,omitempty"`
	CompanyWebsite     string  `gorm:"type:varchar(255);column:company_website" json:"company_website,omitempty"`
	CompanyDescription string  `gorm:"type:text;column:company_description" json:"company_description,omitempty"`

	CompanyIsFeatured bool `gorm:"not null;default:false;column:company_is_featured" json:"company_is_featured"`

	CompanyCreatedAt time.Time `gorm:"column:company_created_at;autoCreateTime" json:"company_created_at"`
	CompanyUpdatedAt time.Time `gorm:"column:company_updated_at;autoUpdateTime" json:"company_updated_at"`
}

func (CompanyModel) TableName() string { return "companies" }

func (m *CompanyModel) BeforeCreate(tx *gorm.DB) error {
	if m.CompanyID == uuid.Nil {
		m.CompanyID = uuid.New()
	}
	return nil
}
