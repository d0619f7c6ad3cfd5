// internals/features/jobs/postings/service/job_search_service.go
package service

import (
	"strings"

	"gorm.io/gorm"

	"jobportal_backend/internals/features/jobs/postings/dto"
	"jobportal_backend/internals/features/jobs/postings/model"
)

// Experience level presets. Band filters compare against the stored bounds;
// rows with the relevant bound unset never match (SQL NULL comparison).
const (
	ExperienceEntry  = "entry"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
)

// BuildSearchQuery layers the public filters over the active-only base
// query. Blank values and values outside the known choices add no filter.
// Ordering is newest-first with the id as a tie-breaker so pages are stable.
func BuildSearchQuery(db *gorm.DB, q *dto.JobSearchQuery) *gorm.DB {
	tx := db.Model(&model.JobPostModel{}).
		Where("job_posts.job_is_active = ?", true)

	if kw := strings.ToLower(strings.TrimSpace(q.Keyword)); kw != "" {
		like := "%" + kw + "%"
		tx = tx.Where(
			"(LOWER(job_posts.job_title) LIKE ? OR LOWER(job_posts.job_company_name) LIKE ?"+
				" OR LOWER(job_posts.job_description) LIKE ? OR LOWER(CAST(job_posts.job_skills AS TEXT)) LIKE ?)",
			like, like, like, like,
		)
	}

	if loc := strings.ToLower(strings.TrimSpace(q.Location)); loc != "" {
		like := "%" + loc + "%"
		tx = tx.
			Joins("JOIN cities ON cities.city_id = job_posts.job_city_id").
			Joins("JOIN states ON states.state_id = job_posts.job_state_id").
			Where(
				"(LOWER(cities.city_name) LIKE ? OR LOWER(states.state_name) LIKE ? OR LOWER(job_posts.job_pin_code) LIKE ?)",
				like, like, like,
			)
	}

	if jt := strings.ToLower(strings.TrimSpace(q.JobType)); jt != "" && model.ValidJobType(jt) {
		tx = tx.Where("job_posts.job_type = ?", jt)
	}

	switch strings.ToLower(strings.TrimSpace(q.ExperienceLevel)) {
	case ExperienceEntry:
		tx = tx.Where("job_posts.job_experience_max <= ?", 2)
	case ExperienceMid:
		tx = tx.Where("job_posts.job_experience_min >= ? AND job_posts.job_experience_max <= ?", 3, 5)
	case ExperienceSenior:
		tx = tx.Where("job_posts.job_experience_min >= ?", 6)
	}

	if slug := strings.TrimSpace(q.CategorySlug); slug != "" {
		tx = tx.Joins("JOIN categories ON categories.category_id = job_posts.job_category_id").
			Where("categories.category_slug = ?", slug)
	}

	return tx.Order("job_posts.job_created_at DESC, job_posts.job_id DESC")
}

// SearchJobPosts runs the query with pagination, returning rows with their
// city and state preloaded plus the unpaginated total.
func SearchJobPosts(db *gorm.DB, q *dto.JobSearchQuery, limit, offset int) ([]model.JobPostModel, int64, error) {
	base := BuildSearchQuery(db, q)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.JobPostModel
	if err := base.
		Preload("City").Preload("State").
		Limit(limit).Offset(offset).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindActiveBySlug fetches one active posting with all relations for the
// detail page. Inactive postings are invisible here.
func FindActiveBySlug(db *gorm.DB, slug string) (*model.JobPostModel, error) {
	var m model.JobPostModel
	err := db.
		Preload("City").Preload("State").
		Preload("Category").Preload("Subcategory").Preload("FunctionalArea").
		Where("job_slug = ? AND job_is_active = ?", slug, true).
		First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &m, nil
}

// RelatedJobPosts lists other active postings in the same category,
// newest first.
func RelatedJobPosts(db *gorm.DB, m *model.JobPostModel, limit int) ([]model.JobPostModel, error) {
	var items []model.JobPostModel
	err := db.
		Preload("City").Preload("State").
		Where("job_category_id = ? AND job_is_active = ? AND job_id <> ?", m.JobCategoryID, true, m.JobID).
		Order("job_created_at DESC, job_id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
