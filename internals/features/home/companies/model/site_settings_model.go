// internals/features/home/companies/model/site_settings_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// SiteSettingsModel is a singleton row (pk fixed at 1). Load is the only
// supported read path.
type SiteSettingsModel struct {
	SettingsID int `gorm:"primaryKey;column:settings_id" json:"settings_id"`

	SettingsSiteName     string `gorm:"type:varchar(100);not null;default:'Job Portal';column:settings_site_name" json:"settings_site_name"`
	SettingsTagline      string `gorm:"type:varchar(200);column:settings_tagline" json:"settings_tagline,omitempty"`
	SettingsContactEmail string `gorm:"type:varchar(254);column:settings_contact_email" json:"settings_contact_email,omitempty"`
	SettingsPhone        string `gorm:"type:varchar(20);column:settings_phone" json:"settings_phone,omitempty"`
	SettingsAddress      string `gorm:"type:varchar(300);column:settings_address" json:"settings_address,omitempty"`

	SettingsFacebookURL string `gorm:"type:varchar(255);column:settings_facebook_url" json:"settings_facebook_url,omitempty"`
	SettingsTwitterURL  string `gorm:"type:varchar(255);column:settings_twitter_url" json:"settings_twitter_url,omitempty"`
	SettingsLinkedInURL string `gorm:"type:varchar(255);column:settings_linkedin_url" json:"settings_linkedin_url,omitempty"`

	SettingsFooterText string `gorm:"type:varchar(300);column:settings_footer_text" json:"settings_footer_text,omitempty"`

	SettingsUpdatedAt time.Time `gorm:"column:settings_updated_at;autoUpdateTime" json:"settings_updated_at"`
}

func (SiteSettingsModel) TableName() string { return "site_settings" }

// LoadSiteSettings returns the singleton, creating it with defaults on
// first use.
func LoadSiteSettings(db *gorm.DB) (*SiteSettingsModel, error) {
	var s SiteSettingsModel
	err := db.First(&s, "settings_id = ?", 1).Error
	if err == nil {
		return &s, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	s = SiteSettingsModel{SettingsID: 1, SettingsSiteName: "Job Portal"}
	if err := db.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
