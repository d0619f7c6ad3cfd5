// internals/features/users/account/model/user_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	// Identity
	UserName  string `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail string `gorm:"type:varchar(254);not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`

	// Never serialized
	UserPassword string `gorm:"type:varchar(100);not null;column:user_password" json:"-"`

	// Role: candidate | employer | admin
	UserRole     string `gorm:"type:varchar(20);not null;default:'candidate';column:user_role" json:"user_role"`
	UserIsActive bool   `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	m.UserEmail = strings.ToLower(strings.TrimSpace(m.UserEmail))
	return nil
}
