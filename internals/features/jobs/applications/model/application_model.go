// internals/features/jobs/applications/model/application_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pModel "jobportal_backend/internals/features/jobs/postings/model"
)

// Application status is derived, never stored. Rejection wins over
// shortlisting when both flags are set.
const (
	StatusPending     = "pending"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
)

type ApplicationModel struct {
	// PK
	ApplicationID uuid.UUID `gorm:"type:uuid;primaryKey;column:application_id" json:"application_id"`

	// Posting (one application per email per posting)
	ApplicationJobID uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:uq_applications_job_email;index;column:application_job_id" json:"application_job_id"`
	Job              pModel.JobPostModel `gorm:"foreignKey:ApplicationJobID;references:JobID;constraint:OnDelete:CASCADE" json:"-"`

	// Candidate
	ApplicationFullName string `gorm:"type:varchar(150);not null;column:application_full_name" json:"application_full_name"`
	ApplicationEmail    string `gorm:"type:varchar(254);not null;uniqueIndex:uq_applications_job_email;column:application_email" json:"application_email"`
	ApplicationPhone    string `gorm:"type:varchar(20);not null;column:application_phone" json:"application_phone"`

	// Profile
	ApplicationResumeURL       *string  `gorm:"column:application_resume_url" json:"application_resume_url,omitempty"`
	ApplicationCoverLetter     string   `gorm:"type:text;column:application_cover_letter" json:"application_cover_letter,omitempty"`
	ApplicationExpectedSalary  *float64 `gorm:"type:decimal(10,2);column:application_expected_salary" json:"application_expected_salary,omitempty"`
	ApplicationExperienceYears *int     `gorm:"column:application_experience_years" json:"application_experience_years,omitempty"`

	// Triage flags
	ApplicationIsShortlisted bool `gorm:"not null;default:false;column:application_is_shortlisted" json:"application_is_shortlisted"`
	ApplicationIsRejected    bool `gorm:"not null;default:false;column:application_is_rejected" json:"application_is_rejected"`

	ApplicationCreatedAt time.Time `gorm:"column:application_created_at;autoCreateTime" json:"application_created_at"`
	ApplicationUpdatedAt time.Time `gorm:"column:application_updated_at;autoUpdateTime" json:"application_updated_at"`
}

func (ApplicationModel) TableName() string { return "candidate_applications" }

func (m *ApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ApplicationID == uuid.Nil {
		m.ApplicationID = uuid.New()
	}
	return nil
}

func (m *ApplicationModel) Status() string {
	switch {
	case m.ApplicationIsRejected:
		return StatusRejected
	case m.ApplicationIsShortlisted:
		return StatusShortlisted
	}
	return StatusPending
}
