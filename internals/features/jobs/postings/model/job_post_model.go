// internals/features/jobs/postings/model/job_post_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	gModel "jobportal_backend/internals/features/jobs/geography/model"
	tModel "jobportal_backend/internals/features/jobs/taxonomy/model"
)

/*
Job type (matches the ENUM in the DB):
- "full_time"
- "part_time"
- "contract"
- "freelance"
- "internship"
*/
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeFreelance  JobType = "freelance"
	JobTypeInternship JobType = "internship"
)

// ValidJobType reports whether s is one of the enum values.
func ValidJobType(s string) bool {
	switch JobType(s) {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance, JobTypeInternship:
		return true
	}
	return false
}

// Keep lower-case on scan/save in case the source is ever mixed-case.
func (t *JobType) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*t = JobType(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*t = JobType(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*t = ""
	default:
		*t = JobType(strings.ToLower(strings.TrimSpace(fmt.Sprint(v))))
	}
	return nil
}
func (t JobType) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(t))), nil
}

type Gender string

const (
	GenderAny    Gender = "any"
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type JobPostModel struct {
	// PK
	JobID uuid.UUID `gorm:"type:uuid;primaryKey;column:job_id" json:"job_id"`

	// Basic information
	JobTitle string  `gorm:"type:varchar(200);not null;column:job_title" json:"job_title"`
	JobSlug  string  `gorm:"type:varchar(220);not null;uniqueIndex:uq_job_posts_slug;column:job_slug" json:"job_slug"`
	JobType  JobType `gorm:"type:varchar(20);not null;default:'full_time';column:job_type" json:"job_type"`

	// Company
	JobCompanyName    string  `gorm:"type:varchar(200);not null;column:job_company_name" json:"job_company_name"`
	JobCompanyLogoURL *string `gorm:"column:job_company_logo_url" json:"job_company_logo_url,omitempty"`

	// Location (state is denormalized from the city; kept consistent at write time)
	JobStateID uuid.UUID         `gorm:"type:uuid;not null;index;column:job_state_id" json:"job_state_id"`
	State      gModel.StateModel `gorm:"foreignKey:JobStateID;references:StateID" json:"-"`
	JobCityID  uuid.UUID         `gorm:"type:uuid;not null;index;column:job_city_id" json:"job_city_id"`
	City       gModel.CityModel  `gorm:"foreignKey:JobCityID;references:CityID" json:"-"`
	JobPinCode string            `gorm:"type:varchar(10);column:job_pin_code" json:"job_pin_code,omitempty"`

	// Taxonomy (category/subcategory denormalized from the functional area)
	JobCategoryID       uuid.UUID                  `gorm:"type:uuid;not null;index;column:job_category_id" json:"job_category_id"`
	Category            tModel.CategoryModel       `gorm:"foreignKey:JobCategoryID;references:CategoryID" json:"-"`
	JobSubcategoryID    uuid.UUID                  `gorm:"type:uuid;not null;index;column:job_subcategory_id" json:"job_subcategory_id"`
	Subcategory         tModel.SubcategoryModel    `gorm:"foreignKey:JobSubcategoryID;references:SubcategoryID" json:"-"`
	JobFunctionalAreaID uuid.UUID                  `gorm:"type:uuid;not null;index;column:job_functional_area_id" json:"job_functional_area_id"`
	FunctionalArea      tModel.FunctionalAreaModel `gorm:"foreignKey:JobFunctionalAreaID;references:FunctionalAreaID" json:"-"`

	// Job details
	JobTotalVacancy   int      `gorm:"not null;default:1;column:job_total_vacancy" json:"job_total_vacancy"`
	JobSalaryMin      *float64 `gorm:"type:decimal(10,2);column:job_salary_min" json:"job_salary_min,omitempty"`
	JobSalaryMax      *float64 `gorm:"type:decimal(10,2);column:job_salary_max" json:"job_salary_max,omitempty"`
	JobSalaryCurrency string   `gorm:"type:varchar(3);not null;default:'USD';column:job_salary_currency" json:"job_salary_currency"`
	JobGender         Gender   `gorm:"type:varchar(10);not null;default:'any';column:job_gender" json:"job_gender"`
	JobExperienceMin  *int     `gorm:"column:job_experience_min" json:"job_experience_min,omitempty"`
	JobExperienceMax  *int     `gorm:"column:job_experience_max" json:"job_experience_max,omitempty"`

	// Skills and education
	JobSkills      datatypes.JSON `gorm:"column:job_skills" json:"job_skills,omitempty"`
	JobEducation   string         `gorm:"type:text;column:job_education" json:"job_education,omitempty"`
	JobDescription string         `gorm:"type:text;not null;column:job_description" json:"job_description"`

	// SEO
	JobMetaTitle       string `gorm:"type:varchar(60);column:job_meta_title" json:"job_meta_title,omitempty"`
	JobMetaDescription string `gorm:"type:varchar(160);column:job_meta_description" json:"job_meta_description,omitempty"`
	JobMetaKeywords    string `gorm:"type:varchar(255);column:job_meta_keywords" json:"job_meta_keywords,omitempty"`

	// Status & dates
	JobIsActive   bool       `gorm:"not null;default:true;column:job_is_active" json:"job_is_active"`
	JobIsFeatured bool       `gorm:"not null;default:false;column:job_is_featured" json:"job_is_featured"`
	JobCreatedAt  time.Time  `gorm:"column:job_created_at;autoCreateTime" json:"job_created_at"`
	JobUpdatedAt  time.Time  `gorm:"column:job_updated_at;autoUpdateTime" json:"job_updated_at"`
	JobExpiresAt  *time.Time `gorm:"column:job_expires_at" json:"job_expires_at,omitempty"`
}

func (JobPostModel) TableName() string { return "job_posts" }

func (m *JobPostModel) BeforeCreate(tx *gorm.DB) error {
	if m.JobID == uuid.Nil {
		m.JobID = uuid.New()
	}
	return nil
}

// IsExpired is a read-time property, never persisted: a posting expires the
// moment now passes job_expires_at, without any write.
func (m *JobPostModel) IsExpired(now time.Time) bool {
	return m.JobExpiresAt != nil && now.After(*m.JobExpiresAt)
}

// SalaryDisplay renders the salary range for listings.
func (m *JobPostModel) SalaryDisplay() string {
	switch {
	case m.JobSalaryMin != nil && m.JobSalaryMax != nil:
		return fmt.Sprintf("%s %.0f - %.0f", m.JobSalaryCurrency, *m.JobSalaryMin, *m.JobSalaryMax)
	case m.JobSalaryMin != nil:
		return fmt.Sprintf("%s %.0f+", m.JobSalaryCurrency, *m.JobSalaryMin)
	case m.JobSalaryMax != nil:
		return fmt.Sprintf("Up to %s %.0f", m.JobSalaryCurrency, *m.JobSalaryMax)
	}
	return "Salary not specified"
}

// ExperienceDisplay renders the experience range for listings.
func (m *JobPostModel) ExperienceDisplay() string {
	switch {
	case m.JobExperienceMin != nil && m.JobExperienceMax != nil:
		return fmt.Sprintf("%d-%d years", *m.JobExperienceMin, *m.JobExperienceMax)
	case m.JobExperienceMin != nil:
		return fmt.Sprintf("%d+ years", *m.JobExperienceMin)
	case m.JobExperienceMax != nil:
		return fmt.Sprintf("Up to %d years", *m.JobExperienceMax)
	}
	return "Experience not specified"
}
