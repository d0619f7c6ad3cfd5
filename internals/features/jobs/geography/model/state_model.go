// internals/features/jobs/geography/model/state_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StateModel struct {
	// PK
	StateID uuid.UUID `gorm:"type:uuid;primaryKey;column:state_id" json:"state_id"`

	// Identity
	StateName string `gorm:"type:varchar(100);not null;uniqueIndex:uq_states_name;column:state_name" json:"state_name"`
	StateSlug string `gorm:"type:varchar(100);not null;uniqueIndex:uq_states_slug;column:state_slug" json:"state_slug"`

	// Status
	StateIsActive bool `gorm:"not null;default:true;column:state_is_active" json:"state_is_active"`

	// Audit
	StateCreatedAt time.Time `gorm:"column:state_created_at;autoCreateTime" json:"state_created_at"`
	StateUpdatedAt time.Time `gorm:"column:state_updated_at;autoUpdateTime" json:"state_updated_at"`
}

func (StateModel) TableName() string { return "states" }

func (m *StateModel) BeforeCreate(tx *gorm.DB) error {
	if m.StateID == uuid.Nil {
		m.StateID = uuid.New()
	}
	return nil
}
