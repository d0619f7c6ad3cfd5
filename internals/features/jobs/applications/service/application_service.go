// internals/features/jobs/applications/service/application_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"jobportal_backend/internals/features/jobs/applications/dto"
	"jobportal_backend/internals/features/jobs/applications/model"
	pModel "jobportal_backend/internals/features/jobs/postings/model"
	helper "jobportal_backend/internals/helpers"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrJobNotFound          = errors.New("job posting not found")
	ErrJobClosed            = errors.New("job posting is no longer accepting applications")
	ErrDuplicateApplication = errors.New("an application with this email already exists for this posting")
)

// Apply records a candidate application against an active, unexpired
// posting. One email applies to one posting at most once (case-insensitive).
// The admin notification mail goes out after the commit and never fails
// the request.
func Apply(ctx context.Context, db *gorm.DB, jobSlug string, req *dto.ApplyRequest) (*model.ApplicationModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var out *model.ApplicationModel
	var job pModel.JobPostModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, "job_slug = ?", jobSlug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobNotFound
			}
			return err
		}
		if !job.JobIsActive || job.IsExpired(time.Now()) {
			return ErrJobClosed
		}

		var count int64
		if err := tx.Model(&model.ApplicationModel{}).
			Where("application_job_id = ? AND LOWER(application_email) = ?", job.JobID, email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateApplication
		}

		m := &model.ApplicationModel{
			ApplicationJobID:           job.JobID,
			ApplicationFullName:        strings.TrimSpace(req.FullName),
			ApplicationEmail:           email,
			ApplicationPhone:           strings.TrimSpace(req.Phone),
			ApplicationResumeURL:       req.ResumeURL,
			ApplicationCoverLetter:     strings.TrimSpace(req.CoverLetter),
			ApplicationExpectedSalary:  req.ExpectedSalary,
			ApplicationExperienceYears: req.ExperienceYears,
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	helper.SendAdminMail(
		fmt.Sprintf("New application: %s", job.JobTitle),
		fmt.Sprintf("%s <%s> applied for %q at %s.", out.ApplicationFullName, out.ApplicationEmail, job.JobTitle, job.JobCompanyName),
	)
	return out, nil
}

// Triage updates the shortlist/reject flags of one application.
func Triage(ctx context.Context, db *gorm.DB, id string, req *dto.TriageRequest) (*model.ApplicationModel, error) {
	var m model.ApplicationModel
	if err := db.WithContext(ctx).Preload("Job").First(&m, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	updates := map[string]any{}
	if req.IsShortlisted != nil {
		m.ApplicationIsShortlisted = *req.IsShortlisted
		updates["application_is_shortlisted"] = *req.IsShortlisted
	}
	if req.IsRejected != nil {
		m.ApplicationIsRejected = *req.IsRejected
		updates["application_is_rejected"] = *req.IsRejected
	}
	if len(updates) == 0 {
		return &m, nil
	}

	if err := db.WithContext(ctx).Model(&model.ApplicationModel{}).
		Where("application_id = ?", m.ApplicationID).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
