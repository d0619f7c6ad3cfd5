// internals/features/jobs/postings/dto/job_post_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"jobportal_backend/internals/features/jobs/postings/model"
)

/* ===================== REQUESTS ===================== */

type CreateJobPostRequest struct {
	JobTitle       string `json:"job_title" validate:"required,min=3,max=200"`
	JobType        string `json:"job_type" validate:"required,oneof=full_time part_time contract freelance internship"`
	JobCompanyName string `json:"job_company_name" validate:"required,min=2,max=200"`

	JobStateID uuid.UUID `json:"job_state_id" validate:"required"`
	JobCityID  uuid.UUID `json:"job_city_id" validate:"required"`
	JobPinCode string    `json:"job_pin_code" validate:"omitempty,max=10"`

	JobCategoryID       uuid.UUID `json:"job_category_id" validate:"required"`
	JobSubcategoryID    uuid.UUID `json:"job_subcategory_id" validate:"required"`
	JobFunctionalAreaID uuid.UUID `json:"job_functional_area_id" validate:"required"`

	JobTotalVacancy   int      `json:"job_total_vacancy" validate:"omitempty,min=1"`
	JobSalaryMin      *float64 `json:"job_salary_min" validate:"omitempty,min=0"`
	JobSalaryMax      *float64 `json:"job_salary_max" validate:"omitempty,min=0"`
	JobSalaryCurrency string   `json:"job_salary_currency" validate:"omitempty,len=3"`
	JobGender         string   `json:"job_gender" validate:"omitempty,oneof=any male female"`
	JobExperienceMin  *int     `json:"job_experience_min" validate:"omitempty,min=0"`
	JobExperienceMax  *int     `json:"job_experience_max" validate:"omitempty,min=0"`

	JobSkills      []string `json:"job_skills" validate:"omitempty,dive,min=1,max=50"`
	JobEducation   string   `json:"job_education"`
	JobDescription string   `json:"job_description" validate:"required,min=10"`

	JobMetaTitle       string `json:"job_meta_title" validate:"omitempty,max=60"`
	JobMetaDescription string `json:"job_meta_description" validate:"omitempty,max=160"`
	JobMetaKeywords    string `json:"job_meta_keywords" validate:"omitempty,max=255"`

	JobExpiresAt *time.Time `json:"job_expires_at"`
	JobIsActive  *bool      `json:"job_is_active"`
}

// UpdateJobPostRequest uses pointers so only supplied fields are written.
// Location and taxonomy references are re-validated together when any of
// them changes, so the fields come as a group or not at all.
type UpdateJobPostRequest struct {
	JobTitle       *string `json:"job_title" validate:"omitempty,min=3,max=200"`
	JobType        *string `json:"job_type" validate:"omitempty,oneof=full_time part_time contract freelance internship"`
	JobCompanyName *string `json:"job_company_name" validate:"omitempty,min=2,max=200"`

	JobStateID *uuid.UUID `json:"job_state_id"`
	JobCityID  *uuid.UUID `json:"job_city_id"`
	JobPinCode *string    `json:"job_pin_code" validate:"omitempty,max=10"`

	JobCategoryID       *uuid.UUID `json:"job_category_id"`
	JobSubcategoryID    *uuid.UUID `json:"job_subcategory_id"`
	JobFunctionalAreaID *uuid.UUID `json:"job_functional_area_id"`

	JobTotalVacancy   *int     `json:"job_total_vacancy" validate:"omitempty,min=1"`
	JobSalaryMin      *float64 `json:"job_salary_min" validate:"omitempty,min=0"`
	JobSalaryMax      *float64 `json:"job_salary_max" validate:"omitempty,min=0"`
	JobSalaryCurrency *string  `json:"job_salary_currency" validate:"omitempty,len=3"`
	JobGender         *string  `json:"job_gender" validate:"omitempty,oneof=any male female"`
	JobExperienceMin  *int     `json:"job_experience_min" validate:"omitempty,min=0"`
	JobExperienceMax  *int     `json:"job_experience_max" validate:"omitempty,min=0"`

	JobSkills      *[]string `json:"job_skills"`
	JobEducation   *string   `json:"job_education"`
	JobDescription *string   `json:"job_description" validate:"omitempty,min=10"`

	JobMetaTitle       *string `json:"job_meta_title" validate:"omitempty,max=60"`
	JobMetaDescription *string `json:"job_meta_description" validate:"omitempty,max=160"`
	JobMetaKeywords    *string `json:"job_meta_keywords" validate:"omitempty,max=255"`

	JobExpiresAt  *time.Time `json:"job_expires_at"`
	JobIsActive   *bool      `json:"job_is_active"`
	JobIsFeatured *bool      `json:"job_is_featured"`
}

/* ===================== QUERIES ===================== */

// JobSearchQuery carries the public search filters. All fields are optional;
// blank or unknown values are ignored.
type JobSearchQuery struct {
	Keyword         string `query:"q"`
	Location        string `query:"location"`
	JobType         string `query:"job_type"`
	ExperienceLevel string `query:"experience_level"`
	CategorySlug    string `query:"category"`
}

/* ===================== RESPONSES ===================== */

type JobPostSummaryResponse struct {
	JobID             uuid.UUID `json:"job_id"`
	JobTitle          string    `json:"job_title"`
	JobSlug           string    `json:"job_slug"`
	JobType           string    `json:"job_type"`
	JobCompanyName    string    `json:"job_company_name"`
	JobCompanyLogoURL *string   `json:"job_company_logo_url,omitempty"`
	CityName          string    `json:"city_name,omitempty"`
	StateName         string    `json:"state_name,omitempty"`
	Salary            string    `json:"salary"`
	Experience        string    `json:"experience"`
	JobIsFeatured     bool      `json:"job_is_featured"`
	JobIsExpired      bool      `json:"job_is_expired"`
	JobCreatedAt      time.Time `json:"job_created_at"`
}

type JobPostDetailResponse struct {
	JobPostSummaryResponse

	JobStateID          uuid.UUID `json:"job_state_id"`
	JobCityID           uuid.UUID `json:"job_city_id"`
	JobPinCode          string    `json:"job_pin_code,omitempty"`
	JobCategoryID       uuid.UUID `json:"job_category_id"`
	JobSubcategoryID    uuid.UUID `json:"job_subcategory_id"`
	JobFunctionalAreaID uuid.UUID `json:"job_functional_area_id"`
	CategoryName        string    `json:"category_name,omitempty"`
	SubcategoryName     string    `json:"subcategory_name,omitempty"`
	FunctionalAreaName  string    `json:"functional_area_name,omitempty"`

	JobTotalVacancy  int      `json:"job_total_vacancy"`
	JobSalaryMin     *float64 `json:"job_salary_min,omitempty"`
	JobSalaryMax     *float64 `json:"job_salary_max,omitempty"`
	JobGender        string   `json:"job_gender"`
	JobExperienceMin *int     `json:"job_experience_min,omitempty"`
	JobExperienceMax *int     `json:"job_experience_max,omitempty"`

	JobSkills      []string `json:"job_skills"`
	JobEducation   string   `json:"job_education,omitempty"`
	JobDescription string   `json:"job_description"`

	JobMetaTitle       string `json:"job_meta_title,omitempty"`
	JobMetaDescription string `json:"job_meta_description,omitempty"`
	JobMetaKeywords    string `json:"job_meta_keywords,omitempty"`

	JobIsActive  bool       `json:"job_is_active"`
	JobExpiresAt *time.Time `json:"job_expires_at,omitempty"`
	JobUpdatedAt time.Time  `json:"job_updated_at"`
}

func NewJobPostSummaryResponse(m *model.JobPostModel, now time.Time) *JobPostSummaryResponse {
	return &JobPostSummaryResponse{
		JobID:             m.JobID,
		JobTitle:          m.JobTitle,
		JobSlug:           m.JobSlug,
		JobType:           string(m.JobType),
		JobCompanyName:    m.JobCompanyName,
		JobCompanyLogoURL: m.JobCompanyLogoURL,
		CityName:          m.City.CityName,
		StateName:         m.State.StateName,
		Salary:            m.SalaryDisplay(),
		Experience:        m.ExperienceDisplay(),
		JobIsFeatured:     m.JobIsFeatured,
		JobIsExpired:      m.IsExpired(now),
		JobCreatedAt:      m.JobCreatedAt,
	}
}

func NewJobPostSummaryResponses(items []model.JobPostModel, now time.Time) []JobPostSummaryResponse {
	out := make([]JobPostSummaryResponse, 0, len(items))
	for i := range items {
		out = append(out, *NewJobPostSummaryResponse(&items[i], now))
	}
	return out
}

func NewJobPostDetailResponse(m *model.JobPostModel, skills []string, now time.Time) *JobPostDetailResponse {
	if skills == nil {
		skills = []string{}
	}
	return &JobPostDetailResponse{
		JobPostSummaryResponse: *NewJobPostSummaryResponse(m, now),

		JobStateID:          m.JobStateID,
		JobCityID:           m.JobCityID,
		JobPinCode:          m.JobPinCode,
		JobCategoryID:       m.JobCategoryID,
		JobSubcategoryID:    m.JobSubcategoryID,
		JobFunctionalAreaID: m.JobFunctionalAreaID,
		CategoryName:        m.Category.CategoryName,
		SubcategoryName:     m.Subcategory.SubcategoryName,
		FunctionalAreaName:  m.FunctionalArea.FunctionalAreaName,

		JobTotalVacancy:  m.JobTotalVacancy,
		JobSalaryMin:     m.JobSalaryMin,
		JobSalaryMax:     m.JobSalaryMax,
		JobGender:        string(m.JobGender),
		JobExperienceMin: m.JobExperienceMin,
		JobExperienceMax: m.JobExperienceMax,

		JobSkills:      skills,
		JobEducation:   m.JobEducation,
		JobDescription: m.JobDescription,

		JobMetaTitle:       m.JobMetaTitle,
		JobMetaDescription: m.JobMetaDescription,
		JobMetaKeywords:    m.JobMetaKeywords,

		JobIsActive:  m.JobIsActive,
		JobExpiresAt: m.JobExpiresAt,
		JobUpdatedAt: m.JobUpdatedAt,
	}
}
