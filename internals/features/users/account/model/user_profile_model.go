// internals/features/users/account/model/user_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfileModel holds the candidate-facing profile. Exactly one row per
// user; it is created together with the user so lookups never miss.
type UserProfileModel struct {
	ProfileID uuid.UUID `gorm:"type:uuid;primaryKey;column:profile_id" json:"profile_id"`

	ProfileUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_profiles_user;column:profile_user_id" json:"profile_user_id"`
	User          UserModel `gorm:"foreignKey:ProfileUserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`

	ProfilePhone     string  `gorm:"type:varchar(20);column:profile_phone" json:"profile_phone,omitempty"`
	ProfileHeadline  string  `gorm:"type:varchar(150);column:profile_headline" json:"profile_headline,omitempty"`
	ProfileBio       string  `gorm:"type:text;column:profile_bio" json:"profile_bio,omitempty"`
	ProfileResumeURL *string `gorm:"column:profile_resume_url" json:"profile_resume_url,omitempty"`
	ProfileAvatarURL *string `gorm:"column:profile_avatar_url" json:"profile_avatar_url,omitempty"`

	ProfileCreatedAt time.Time `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt time.Time `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }

func (m *UserProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProfileID == uuid.Nil {
		m.ProfileID = uuid.New()
	}
	return nil
}
