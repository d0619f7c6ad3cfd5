package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobportal_backend/internals/features/jobs/applications/dto"
	"jobportal_backend/internals/features/jobs/applications/model"
	gModel "jobportal_backend/internals/features/jobs/geography/model"
	pModel "jobportal_backend/internals/features/jobs/postings/model"
	tModel "jobportal_backend/internals/features/jobs/taxonomy/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&gModel.StateModel{}, &gModel.CityModel{},
		&tModel.CategoryModel{}, &tModel.SubcategoryModel{}, &tModel.FunctionalAreaModel{},
		&pModel.JobPostModel{}, &model.ApplicationModel{},
	))
	return db
}

func seedJob(t *testing.T, db *gorm.DB, active bool, expiresAt *time.Time) *pModel.JobPostModel {
	t.Helper()
	job := pModel.JobPostModel{
		JobTitle:       "Infra Engineer",
		JobSlug:        "infra-engineer-acme",
		JobType:        pModel.JobTypeFullTime,
		JobCompanyName: "Acme",
		JobDescription: "Build and run infrastructure.",
		JobIsActive:    active,
		JobExpiresAt:   expiresAt,
	}
	require.NoError(t, db.Create(&job).Error)
	return &job
}

func validApply() *dto.ApplyRequest {
	return &dto.ApplyRequest{
		FullName: "Jordan Reyes",
		Email:    "jordan@example.com",
		Phone:    "+1-555-0100",
	}
}

func TestApplyCreatesApplication(t *testing.T) {
	db := openTestDB(t)
	job := seedJob(t, db, true, nil)

	app, err := Apply(context.Background(), db, job.JobSlug, validApply())
	require.NoError(t, err)
	assert.Equal(t, job.JobID, app.ApplicationJobID)
	assert.Equal(t, "jordan@example.com", app.ApplicationEmail)
	assert.Equal(t, model.StatusPending, app.Status())
}

func TestApplyDuplicateEmailRejected(t *testing.T) {
	db := openTestDB(t)
	job := seedJob(t, db, true, nil)
	ctx := context.Background()

	_, err := Apply(ctx, db, job.JobSlug, validApply())
	require.NoError(t, err)

	dup := validApply()
	dup.Email = "JORDAN@example.com"
	_, err = Apply(ctx, db, job.JobSlug, dup)
	assert.ErrorIs(t, err, ErrDuplicateApplication, "one application per email per posting, case-insensitive")
}

func TestApplyToInactiveOrExpiredJob(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	inactive := seedJob(t, db, false, nil)
	_, err := Apply(ctx, db, inactive.JobSlug, validApply())
	assert.ErrorIs(t, err, ErrJobClosed)

	past := time.Now().Add(-time.Hour)
	expired := pModel.JobPostModel{
		JobTitle:       "Old Role",
		JobSlug:        "old-role-acme",
		JobType:        pModel.JobTypeFullTime,
		JobCompanyName: "Acme",
		JobDescription: "Closed long ago.",
		JobIsActive:    true,
		JobExpiresAt:   &past,
	}
	require.NoError(t, db.Create(&expired).Error)
	_, err = Apply(ctx, db, expired.JobSlug, validApply())
	assert.ErrorIs(t, err, ErrJobClosed, "expiry is enforced at apply time without any stored flag")
}

func TestApplyUnknownJob(t *testing.T) {
	db := openTestDB(t)

	_, err := Apply(context.Background(), db, "no-such-job", validApply())
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestTriageFlags(t *testing.T) {
	db := openTestDB(t)
	job := seedJob(t, db, true, nil)
	ctx := context.Background()

	app, err := Apply(ctx, db, job.JobSlug, validApply())
	require.NoError(t, err)

	yes := true
	got, err := Triage(ctx, db, app.ApplicationID.String(), &dto.TriageRequest{IsShortlisted: &yes})
	require.NoError(t, err)
	assert.Equal(t, model.StatusShortlisted, got.Status())

	got, err = Triage(ctx, db, app.ApplicationID.String(), &dto.TriageRequest{IsRejected: &yes})
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, got.Status(), "rejection wins over shortlisting")
}
