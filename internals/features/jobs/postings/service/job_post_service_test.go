package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gService "jobportal_backend/internals/features/jobs/geography/service"
	"jobportal_backend/internals/features/jobs/postings/dto"

	gModel "jobportal_backend/internals/features/jobs/geography/model"
	"jobportal_backend/internals/features/jobs/postings/model"
	tModel "jobportal_backend/internals/features/jobs/taxonomy/model"
	tService "jobportal_backend/internals/features/jobs/taxonomy/service"
)

type fixture struct {
	db *gorm.DB

	california *gModel.StateModel
	texas      *gModel.StateModel
	losAngeles *gModel.CityModel
	austin     *gModel.CityModel

	engineering *tModel.CategoryModel
	backend     *tModel.SubcategoryModel
	apiDev      *tModel.FunctionalAreaModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&gModel.StateModel{}, &gModel.CityModel{},
		&tModel.CategoryModel{}, &tModel.SubcategoryModel{}, &tModel.FunctionalAreaModel{},
		&model.JobPostModel{},
	))

	ctx := context.Background()
	f := &fixture{db: db}

	f.california, err = gService.CreateState(ctx, db, "California")
	require.NoError(t, err)
	f.texas, err = gService.CreateState(ctx, db, "Texas")
	require.NoError(t, err)
	f.losAngeles, err = gService.CreateCity(ctx, db, f.california.StateID, "Los Angeles")
	require.NoError(t, err)
	f.austin, err = gService.CreateCity(ctx, db, f.texas.StateID, "Austin")
	require.NoError(t, err)

	f.engineering, err = tService.CreateCategory(ctx, db, "Engineering", "", "")
	require.NoError(t, err)
	f.backend, err = tService.CreateSubcategory(ctx, db, f.engineering.CategoryID, "Backend", "")
	require.NoError(t, err)
	f.apiDev, err = tService.CreateFunctionalArea(ctx, db, f.backend.SubcategoryID, "API Development", "")
	require.NoError(t, err)

	return f
}

func (f *fixture) validRequest() *dto.CreateJobPostRequest {
	return &dto.CreateJobPostRequest{
		JobTitle:            "Infra Engineer",
		JobType:             "full_time",
		JobCompanyName:      "Acme",
		JobStateID:          f.california.StateID,
		JobCityID:           f.losAngeles.CityID,
		JobCategoryID:       f.engineering.CategoryID,
		JobSubcategoryID:    f.backend.SubcategoryID,
		JobFunctionalAreaID: f.apiDev.FunctionalAreaID,
		JobSkills:           []string{"Kubernetes", "Terraform"},
		JobDescription:      "Build and run the production infrastructure.",
	}
}

func TestCreateJobPostSlugFromTitleAndCompany(t *testing.T) {
	f := newFixture(t)

	job, err := CreateJobPost(context.Background(), f.db, f.validRequest())
	require.NoError(t, err)
	assert.Equal(t, "infra-engineer-acme", job.JobSlug)
	assert.True(t, job.JobIsActive)
}

func TestCreateJobPostSlugCollisionSuffixed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := CreateJobPost(ctx, f.db, f.validRequest())
	require.NoError(t, err)
	second, err := CreateJobPost(ctx, f.db, f.validRequest())
	require.NoError(t, err)

	assert.Equal(t, "infra-engineer-acme", first.JobSlug)
	assert.Equal(t, "infra-engineer-acme-2", second.JobSlug)
}

func TestCreateJobPostHierarchyMismatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Austin belongs to Texas, not California.
	req := f.validRequest()
	req.JobCityID = f.austin.CityID
	_, err := CreateJobPost(ctx, f.db, req)
	assert.ErrorIs(t, err, ErrHierarchyMismatch)

	// A subcategory that is not the functional area's parent.
	ops, err := tService.CreateCategory(ctx, f.db, "Operations", "", "")
	require.NoError(t, err)
	hr, err := tService.CreateSubcategory(ctx, f.db, ops.CategoryID, "Recruiting", "")
	require.NoError(t, err)

	req = f.validRequest()
	req.JobSubcategoryID = hr.SubcategoryID
	_, err = CreateJobPost(ctx, f.db, req)
	assert.ErrorIs(t, err, ErrHierarchyMismatch)

	req = f.validRequest()
	req.JobCategoryID = ops.CategoryID
	_, err = CreateJobPost(ctx, f.db, req)
	assert.ErrorIs(t, err, ErrHierarchyMismatch)
}

func TestCreateJobPostDenormalizesFromLeaves(t *testing.T) {
	f := newFixture(t)

	job, err := CreateJobPost(context.Background(), f.db, f.validRequest())
	require.NoError(t, err)

	assert.Equal(t, f.california.StateID, job.JobStateID)
	assert.Equal(t, f.engineering.CategoryID, job.JobCategoryID)
	assert.Equal(t, f.backend.SubcategoryID, job.JobSubcategoryID)
}

func TestCreateJobPostRangeValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	lo, hi := 90000.0, 60000.0
	req := f.validRequest()
	req.JobSalaryMin, req.JobSalaryMax = &lo, &hi
	_, err := CreateJobPost(ctx, f.db, req)
	assert.ErrorIs(t, err, ErrSalaryRange)

	emin, emax := 5, 2
	req = f.validRequest()
	req.JobExperienceMin, req.JobExperienceMax = &emin, &emax
	_, err = CreateJobPost(ctx, f.db, req)
	assert.ErrorIs(t, err, ErrExperienceRange)
}

func TestCreateJobPostMetaDefaults(t *testing.T) {
	f := newFixture(t)

	job, err := CreateJobPost(context.Background(), f.db, f.validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Infra Engineer", job.JobMetaTitle)
	assert.Equal(t, "Build and run the production infrastructure.", job.JobMetaDescription)
}

func TestUpdateJobPostKeepsSlug(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	job, err := CreateJobPost(ctx, f.db, f.validRequest())
	require.NoError(t, err)

	title := "Principal Infra Engineer"
	got, err := UpdateJobPost(ctx, f.db, job.JobID.String(), &dto.UpdateJobPostRequest{JobTitle: &title})
	require.NoError(t, err)
	assert.Equal(t, title, got.JobTitle)
	assert.Equal(t, "infra-engineer-acme", got.JobSlug, "slug never changes after creation")
}

func TestUpdateJobPostRevalidatesChain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	job, err := CreateJobPost(ctx, f.db, f.validRequest())
	require.NoError(t, err)

	// Moving to Austin without moving the state fails.
	_, err = UpdateJobPost(ctx, f.db, job.JobID.String(), &dto.UpdateJobPostRequest{JobCityID: &f.austin.CityID})
	assert.ErrorIs(t, err, ErrHierarchyMismatch)

	// Moving city and state together succeeds.
	got, err := UpdateJobPost(ctx, f.db, job.JobID.String(), &dto.UpdateJobPostRequest{
		JobCityID:  &f.austin.CityID,
		JobStateID: &f.texas.StateID,
	})
	require.NoError(t, err)
	assert.Equal(t, f.texas.StateID, got.JobStateID)
}

func TestUpdateJobPostRangesCheckedAgainstStoredBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	lo, hi := 120000.0, 160000.0
	emin, emax := 2, 4
	req := f.validRequest()
	req.JobSalaryMin, req.JobSalaryMax = &lo, &hi
	req.JobExperienceMin, req.JobExperienceMax = &emin, &emax
	job, err := CreateJobPost(ctx, f.db, req)
	require.NoError(t, err)

	// Raising only the min past the stored max must fail.
	badMin := 200000.0
	_, err = UpdateJobPost(ctx, f.db, job.JobID.String(), &dto.UpdateJobPostRequest{JobSalaryMin: &badMin})
	assert.ErrorIs(t, err, ErrSalaryRange)

	badExp := 10
	_, err = UpdateJobPost(ctx, f.db, job.JobID.String(), &dto.UpdateJobPostRequest{JobExperienceMin: &badExp})
	assert.ErrorIs(t, err, ErrExperienceRange)

	// The stored row is untouched after the rejected updates.
	var stored model.JobPostModel
	require.NoError(t, f.db.First(&stored, "job_id = ?", job.JobID).Error)
	assert.Equal(t, lo, *stored.JobSalaryMin)
	assert.Equal(t, hi, *stored.JobSalaryMax)
	assert.Equal(t, emin, *stored.JobExperienceMin)

	// A consistent one-sided update still goes through.
	okMin := 130000.0
	got, err := UpdateJobPost(ctx, f.db, job.JobID.String(), &dto.UpdateJobPostRequest{JobSalaryMin: &okMin})
	require.NoError(t, err)
	assert.Equal(t, okMin, *got.JobSalaryMin)
}

func TestDecodeSkillsRoundTrip(t *testing.T) {
	f := newFixture(t)

	job, err := CreateJobPost(context.Background(), f.db, f.validRequest())
	require.NoError(t, err)

	var got model.JobPostModel
	require.NoError(t, f.db.First(&got, "job_id = ?", job.JobID).Error)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, DecodeSkills(got.JobSkills))
}
