// internals/features/home/contact/model/contact_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subject choices for contact messages.
const (
	SubjectGeneral     = "general"
	SubjectSupport     = "support"
	SubjectPartnership = "partnership"
	SubjectFeedback    = "feedback"
)

type ContactMessageModel struct {
	ContactID uuid.UUID `gorm:"type:uuid;primaryKey;column:contact_id" json:"contact_id"`

	ContactName    string `gorm:"type:varchar(150);not null;column:contact_name" json:"contact_name"`
	ContactEmail   string `gorm:"type:varchar(254);not null;column:contact_email" json:"contact_email"`
	ContactSubject string `gorm:"type:varchar(20);not null;default:'general';column:contact_subject" json:"contact_subject"`
	ContactMessage string `gorm:"type:text;not null;column:contact_message" json:"contact_message"`

	ContactIsRead bool `gorm:"not null;default:false;column:contact_is_read" json:"contact_is_read"`

	ContactCreatedAt time.Time `gorm:"column:contact_created_at;autoCreateTime" json:"contact_created_at"`
}

func (ContactMessageModel) TableName() string { return "contact_messages" }

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContactID == uuid.Nil {
		m.ContactID = uuid.New()
	}
	return nil
}
