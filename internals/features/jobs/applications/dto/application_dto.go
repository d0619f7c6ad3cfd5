// internals/features/jobs/applications/dto/application_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"jobportal_backend/internals/features/jobs/applications/model"
)

/* ===================== REQUESTS ===================== */

type ApplyRequest struct {
	FullName        string   `json:"full_name" form:"full_name" validate:"required,min=2,max=150"`
	Email           string   `json:"email" form:"email" validate:"required,email,max=254"`
	Phone           string   `json:"phone" form:"phone" validate:"required,min=6,max=20"`
	ResumeURL       *string  `json:"resume_url" form:"resume_url" validate:"omitempty,url"`
	CoverLetter     string   `json:"cover_letter" form:"cover_letter" validate:"omitempty,max=5000"`
	ExpectedSalary  *float64 `json:"expected_salary" form:"expected_salary" validate:"omitempty,min=0"`
	ExperienceYears *int     `json:"experience_years" form:"experience_years" validate:"omitempty,min=0,max=60"`
}

// TriageRequest flips the shortlist/reject flags from the admin panel.
type TriageRequest struct {
	IsShortlisted *bool `json:"is_shortlisted"`
	IsRejected    *bool `json:"is_rejected"`
}

/* ===================== RESPONSES ===================== */

type ApplicationResponse struct {
	ApplicationID    uuid.UUID `json:"application_id"`
	ApplicationJobID uuid.UUID `json:"application_job_id"`
	JobTitle         string    `json:"job_title,omitempty"`
	JobSlug          string    `json:"job_slug,omitempty"`

	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	ResumeURL       *string  `json:"resume_url,omitempty"`
	CoverLetter     string   `json:"cover_letter,omitempty"`
	ExpectedSalary  *float64 `json:"expected_salary,omitempty"`
	ExperienceYears *int     `json:"experience_years,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewApplicationResponse(m *model.ApplicationModel) *ApplicationResponse {
	return &ApplicationResponse{
		ApplicationID:    m.ApplicationID,
		ApplicationJobID: m.ApplicationJobID,
		JobTitle:         m.Job.JobTitle,
		JobSlug:          m.Job.JobSlug,

		FullName:        m.ApplicationFullName,
		Email:           m.ApplicationEmail,
		Phone:           m.ApplicationPhone,
		ResumeURL:       m.ApplicationResumeURL,
		CoverLetter:     m.ApplicationCoverLetter,
		ExpectedSalary:  m.ApplicationExpectedSalary,
		ExperienceYears: m.ApplicationExperienceYears,

		Status:    m.Status(),
		CreatedAt: m.ApplicationCreatedAt,
	}
}

func NewApplicationResponses(items []model.ApplicationModel) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for i := range items {
		out = append(out, *NewApplicationResponse(&items[i]))
	}
	return out
}
