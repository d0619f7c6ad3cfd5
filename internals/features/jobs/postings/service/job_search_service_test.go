package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal_backend/internals/features/jobs/postings/dto"
	"jobportal_backend/internals/features/jobs/postings/model"
)

func (f *fixture) seedJob(t *testing.T, mutate func(*dto.CreateJobPostRequest)) *model.JobPostModel {
	t.Helper()
	req := f.validRequest()
	if mutate != nil {
		mutate(req)
	}
	job, err := CreateJobPost(context.Background(), f.db, req)
	require.NoError(t, err)
	return job
}

func searchSlugs(t *testing.T, f *fixture, q *dto.JobSearchQuery) []string {
	t.Helper()
	items, _, err := SearchJobPosts(f.db, q, 50, 0)
	require.NoError(t, err)
	out := make([]string, 0, len(items))
	for _, m := range items {
		out = append(out, m.JobSlug)
	}
	return out
}

func TestSearchKeywordMatchesTitleCompanyDescriptionSkills(t *testing.T) {
	f := newFixture(t)

	f.seedJob(t, nil) // "Infra Engineer" at "Acme" with Kubernetes/Terraform
	f.seedJob(t, func(r *dto.CreateJobPostRequest) {
		r.JobTitle = "Office Manager"
		r.JobCompanyName = "Globex"
		r.JobSkills = []string{"Scheduling"}
		r.JobDescription = "Keep the office running smoothly."
	})

	assert.Equal(t, []string{"infra-engineer-acme"}, searchSlugs(t, f, &dto.JobSearchQuery{Keyword: "infra"}))
	assert.Equal(t, []string{"infra-engineer-acme"}, searchSlugs(t, f, &dto.JobSearchQuery{Keyword: "ACME"}), "keyword match is case-insensitive")
	assert.Equal(t, []string{"infra-engineer-acme"}, searchSlugs(t, f, &dto.JobSearchQuery{Keyword: "kubernetes"}), "skills participate in keyword search")
	assert.Equal(t, []string{"office-manager-globex"}, searchSlugs(t, f, &dto.JobSearchQuery{Keyword: "smoothly"}))
	assert.Empty(t, searchSlugs(t, f, &dto.JobSearchQuery{Keyword: "astronaut"}))
}

func TestSearchLocationMatchesCityStatePinCode(t *testing.T) {
	f := newFixture(t)

	f.seedJob(t, func(r *dto.CreateJobPostRequest) { r.JobPinCode = "90001" })
	f.seedJob(t, func(r *dto.CreateJobPostRequest) {
		r.JobTitle = "Support Engineer"
		r.JobStateID = f.texas.StateID
		r.JobCityID = f.austin.CityID
	})

	assert.Equal(t, []string{"infra-engineer-acme"}, searchSlugs(t, f, &dto.JobSearchQuery{Location: "los angeles"}))
	assert.Equal(t, []string{"support-engineer-acme"}, searchSlugs(t, f, &dto.JobSearchQuery{Location: "Texas"}))
	assert.Equal(t, []string{"infra-engineer-acme"}, searchSlugs(t, f, &dto.JobSearchQuery{Location: "90001"}))
}

func TestSearchJobTypeFilter(t *testing.T) {
	f := newFixture(t)

	f.seedJob(t, nil)
	f.seedJob(t, func(r *dto.CreateJobPostRequest) {
		r.JobTitle = "Weekend Barista"
		r.JobType = "part_time"
	})

	assert.Equal(t, []string{"weekend-barista-acme"}, searchSlugs(t, f, &dto.JobSearchQuery{JobType: "part_time"}))

	// Unknown job types add no filter rather than matching nothing.
	assert.Len(t, searchSlugs(t, f, &dto.JobSearchQuery{JobType: "gig"}), 2)
}

func TestSearchExperienceBands(t *testing.T) {
	f := newFixture(t)

	intp := func(n int) *int { return &n }
	f.seedJob(t, func(r *dto.CreateJobPostRequest) {
		r.JobTitle = "Junior Dev"
		r.JobExperienceMin, r.JobExperienceMax = intp(0), intp(2)
	})
	f.seedJob(t, func(r *dto.CreateJobPostRequest) {
		r.JobTitle = "Mid Dev"
		r.JobExperienceMin, r.JobExperienceMax = intp(3), intp(5)
	})
	f.seedJob(t, func(r *dto.CreateJobPostRequest) {
		r.JobTitle = "Staff Dev"
		r.JobExperienceMin = intp(6)
	})
	f.seedJob(t, func(r *dto.CreateJobPostRequest) {
		r.JobTitle = "Any Dev" // no experience bounds set
	})

	assert.Equal(t, []string{"junior-dev-acme"}, searchSlugs(t, f, &dto.JobSearchQuery{ExperienceLevel: "entry"}))
	assert.Equal(t, []string{"mid-dev-acme"}, searchSlugs(t, f, &dto.JobSearchQuery{ExperienceLevel: "mid"}))
	assert.Equal(t, []string{"staff-dev-acme"}, searchSlugs(t, f, &dto.JobSearchQuery{ExperienceLevel: "senior"}),
		"a posting with no bounds never matches a band")
}

func TestSearchExcludesInactive(t *testing.T) {
	f := newFixture(t)

	job := f.seedJob(t, nil)
	require.NoError(t, f.db.Model(&model.JobPostModel{}).
		Where("job_id = ?", job.JobID).
		Update("job_is_active", false).Error)

	assert.Empty(t, searchSlugs(t, f, &dto.JobSearchQuery{}))
}

func TestSearchOrderingNewestFirst(t *testing.T) {
	f := newFixture(t)

	old := f.seedJob(t, func(r *dto.CreateJobPostRequest) { r.JobTitle = "Old Role" })
	require.NoError(t, f.db.Model(&model.JobPostModel{}).
		Where("job_id = ?", old.JobID).
		Update("job_created_at", time.Now().Add(-48*time.Hour)).Error)
	f.seedJob(t, func(r *dto.CreateJobPostRequest) { r.JobTitle = "New Role" })

	got := searchSlugs(t, f, &dto.JobSearchQuery{})
	require.Len(t, got, 2)
	assert.Equal(t, "new-role-acme", got[0])
	assert.Equal(t, "old-role-acme", got[1])
}

func TestSearchPagination(t *testing.T) {
	f := newFixture(t)

	for _, title := range []string{"Role A", "Role B", "Role C"} {
		title := title
		f.seedJob(t, func(r *dto.CreateJobPostRequest) { r.JobTitle = title })
	}

	items, total, err := SearchJobPosts(f.db, &dto.JobSearchQuery{}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total, "total ignores the page window")
	assert.Len(t, items, 2)

	items, _, err = SearchJobPosts(f.db, &dto.JobSearchQuery{}, 2, 2)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFindActiveBySlugHidesInactive(t *testing.T) {
	f := newFixture(t)

	job := f.seedJob(t, nil)

	got, err := FindActiveBySlug(f.db, job.JobSlug)
	require.NoError(t, err)
	assert.Equal(t, "Los Angeles", got.City.CityName)

	require.NoError(t, f.db.Model(&model.JobPostModel{}).
		Where("job_id = ?", job.JobID).
		Update("job_is_active", false).Error)

	_, err = FindActiveBySlug(f.db, job.JobSlug)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestIsExpiredDerivedAtReadTime(t *testing.T) {
	f := newFixture(t)

	past := time.Now().Add(-time.Hour)
	job := f.seedJob(t, func(r *dto.CreateJobPostRequest) { r.JobExpiresAt = &past })

	var got model.JobPostModel
	require.NoError(t, f.db.First(&got, "job_id = ?", job.JobID).Error)
	assert.True(t, got.IsExpired(time.Now()))
	assert.False(t, got.IsExpired(past.Add(-time.Minute)), "not expired before the deadline")

	open := f.seedJob(t, func(r *dto.CreateJobPostRequest) { r.JobTitle = "Open Role" })
	assert.False(t, open.IsExpired(time.Now()), "nil expires_at never expires")
}
