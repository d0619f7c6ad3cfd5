// internals/features/jobs/postings/service/job_post_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	gModel "jobportal_backend/internals/features/jobs/geography/model"
	"jobportal_backend/internals/features/jobs/postings/dto"
	"jobportal_backend/internals/features/jobs/postings/model"
	tModel "jobportal_backend/internals/features/jobs/taxonomy/model"
	helper "jobportal_backend/internals/helpers"
)

var (
	ErrJobNotFound            = errors.New("job posting not found")
	ErrCityNotFound           = errors.New("city not found")
	ErrFunctionalAreaNotFound = errors.New("functional area not found")
	ErrHierarchyMismatch      = errors.New("location or taxonomy references do not form a valid chain")
	ErrSalaryRange            = errors.New("job_salary_min must not exceed job_salary_max")
	ErrExperienceRange        = errors.New("job_experience_min must not exceed job_experience_max")
)

const slugMaxLen = 220

// CreateJobPost validates the reference chains, denormalizes the parent
// references from the leaves, derives a unique slug from title + company,
// and inserts the posting. Everything runs in one transaction.
func CreateJobPost(ctx context.Context, db *gorm.DB, req *dto.CreateJobPostRequest) (*model.JobPostModel, error) {
	if err := validateRanges(req.JobSalaryMin, req.JobSalaryMax, req.JobExperienceMin, req.JobExperienceMax); err != nil {
		return nil, err
	}

	var out *model.JobPostModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		city, fa, err := resolveChains(tx, req.JobCityID, req.JobStateID, req.JobFunctionalAreaID, req.JobSubcategoryID, req.JobCategoryID)
		if err != nil {
			return err
		}

		base := helper.Slugify(req.JobTitle+" "+req.JobCompanyName, slugMaxLen)
		slug, err := helper.EnsureUniqueSlugCI(ctx, tx, "job_posts", "job_slug", base, nil, slugMaxLen)
		if err != nil {
			return err
		}

		skills, err := encodeSkills(req.JobSkills)
		if err != nil {
			return err
		}

		m := &model.JobPostModel{
			JobTitle:       strings.TrimSpace(req.JobTitle),
			JobSlug:        slug,
			JobType:        model.JobType(req.JobType),
			JobCompanyName: strings.TrimSpace(req.JobCompanyName),

			JobStateID: city.CityStateID,
			JobCityID:  city.CityID,
			JobPinCode: strings.TrimSpace(req.JobPinCode),

			JobCategoryID:       fa.Subcategory.SubcategoryCategoryID,
			JobSubcategoryID:    fa.FunctionalAreaSubcategoryID,
			JobFunctionalAreaID: fa.FunctionalAreaID,

			JobTotalVacancy:   req.JobTotalVacancy,
			JobSalaryMin:      req.JobSalaryMin,
			JobSalaryMax:      req.JobSalaryMax,
			JobSalaryCurrency: strings.ToUpper(strings.TrimSpace(req.JobSalaryCurrency)),
			JobGender:         model.Gender(req.JobGender),
			JobExperienceMin:  req.JobExperienceMin,
			JobExperienceMax:  req.JobExperienceMax,

			JobSkills:      skills,
			JobEducation:   strings.TrimSpace(req.JobEducation),
			JobDescription: strings.TrimSpace(req.JobDescription),

			JobMetaTitle:       strings.TrimSpace(req.JobMetaTitle),
			JobMetaDescription: strings.TrimSpace(req.JobMetaDescription),
			JobMetaKeywords:    strings.TrimSpace(req.JobMetaKeywords),

			JobIsActive:  true,
			JobExpiresAt: req.JobExpiresAt,
		}
		if m.JobTotalVacancy < 1 {
			m.JobTotalVacancy = 1
		}
		if m.JobSalaryCurrency == "" {
			m.JobSalaryCurrency = "USD"
		}
		if m.JobGender == "" {
			m.JobGender = model.GenderAny
		}
		if req.JobIsActive != nil {
			m.JobIsActive = *req.JobIsActive
		}
		fillMetaDefaults(m)

		if err := tx.Create(m).Error; err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateJobPost applies the supplied fields. Changing any location or
// taxonomy reference re-validates the whole chain; the slug never changes.
func UpdateJobPost(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateJobPostRequest) (*model.JobPostModel, error) {
	var out *model.JobPostModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.JobPostModel
		if err := tx.First(&m, "job_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobNotFound
			}
			return err
		}

		if req.JobCityID != nil || req.JobStateID != nil || req.JobFunctionalAreaID != nil ||
			req.JobSubcategoryID != nil || req.JobCategoryID != nil {
			cityID := m.JobCityID
			stateID := m.JobStateID
			faID := m.JobFunctionalAreaID
			subID := m.JobSubcategoryID
			catID := m.JobCategoryID
			if req.JobCityID != nil {
				cityID = *req.JobCityID
			}
			if req.JobStateID != nil {
				stateID = *req.JobStateID
			}
			if req.JobFunctionalAreaID != nil {
				faID = *req.JobFunctionalAreaID
			}
			if req.JobSubcategoryID != nil {
				subID = *req.JobSubcategoryID
			}
			if req.JobCategoryID != nil {
				catID = *req.JobCategoryID
			}
			city, fa, err := resolveChains(tx, cityID, stateID, faID, subID, catID)
			if err != nil {
				return err
			}
			m.JobCityID = city.CityID
			m.JobStateID = city.CityStateID
			m.JobFunctionalAreaID = fa.FunctionalAreaID
			m.JobSubcategoryID = fa.FunctionalAreaSubcategoryID
			m.JobCategoryID = fa.Subcategory.SubcategoryCategoryID
		}

		applyUpdate(&m, req)
		if req.JobSkills != nil {
			skills, err := encodeSkills(*req.JobSkills)
			if err != nil {
				return err
			}
			m.JobSkills = skills
		}
		fillMetaDefaults(&m)

		// Ranges must hold on the merged row, not just the request:
		// a partial update can raise a min past a stored max.
		if err := validateRanges(m.JobSalaryMin, m.JobSalaryMax, m.JobExperienceMin, m.JobExperienceMax); err != nil {
			return err
		}

		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* ===================== internals ===================== */

// resolveChains loads the city and functional area and checks that the
// supplied parent ids match the actual parents all the way up.
func resolveChains(tx *gorm.DB, cityID, stateID, faID, subID, catID uuid.UUID) (*gModel.CityModel, *tModel.FunctionalAreaModel, error) {
	var city gModel.CityModel
	if err := tx.First(&city, "city_id = ?", cityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCityNotFound
		}
		return nil, nil, err
	}
	if city.CityStateID != stateID {
		return nil, nil, ErrHierarchyMismatch
	}

	var fa tModel.FunctionalAreaModel
	if err := tx.Preload("Subcategory").First(&fa, "functional_area_id = ?", faID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrFunctionalAreaNotFound
		}
		return nil, nil, err
	}
	if fa.FunctionalAreaSubcategoryID != subID || fa.Subcategory.SubcategoryCategoryID != catID {
		return nil, nil, ErrHierarchyMismatch
	}
	return &city, &fa, nil
}

func validateRanges(salMin, salMax *float64, expMin, expMax *int) error {
	if salMin != nil && salMax != nil && *salMin > *salMax {
		return ErrSalaryRange
	}
	if expMin != nil && expMax != nil && *expMin > *expMax {
		return ErrExperienceRange
	}
	return nil
}

func encodeSkills(skills []string) (datatypes.JSON, error) {
	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	raw, err := sonic.Marshal(cleaned)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// DecodeSkills unpacks the stored JSON array; empty column yields nil.
func DecodeSkills(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// Meta fields fall back to the title and the opening of the description,
// same defaults the admin form used to apply.
func fillMetaDefaults(m *model.JobPostModel) {
	if m.JobMetaTitle == "" {
		m.JobMetaTitle = truncate(m.JobTitle, 60)
	}
	if m.JobMetaDescription == "" {
		m.JobMetaDescription = truncate(m.JobDescription, 160)
	}
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n])
}

func applyUpdate(m *model.JobPostModel, req *dto.UpdateJobPostRequest) {
	if req.JobTitle != nil {
		m.JobTitle = strings.TrimSpace(*req.JobTitle)
	}
	if req.JobType != nil {
		m.JobType = model.JobType(*req.JobType)
	}
	if req.JobCompanyName != nil {
		m.JobCompanyName = strings.TrimSpace(*req.JobCompanyName)
	}
	if req.JobPinCode != nil {
		m.JobPinCode = strings.TrimSpace(*req.JobPinCode)
	}
	if req.JobTotalVacancy != nil {
		m.JobTotalVacancy = *req.JobTotalVacancy
	}
	if req.JobSalaryMin != nil {
		m.JobSalaryMin = req.JobSalaryMin
	}
	if req.JobSalaryMax != nil {
		m.JobSalaryMax = req.JobSalaryMax
	}
	if req.JobSalaryCurrency != nil {
		m.JobSalaryCurrency = strings.ToUpper(strings.TrimSpace(*req.JobSalaryCurrency))
	}
	if req.JobGender != nil {
		m.JobGender = model.Gender(*req.JobGender)
	}
	if req.JobExperienceMin != nil {
		m.JobExperienceMin = req.JobExperienceMin
	}
	if req.JobExperienceMax != nil {
		m.JobExperienceMax = req.JobExperienceMax
	}
	if req.JobEducation != nil {
		m.JobEducation = strings.TrimSpace(*req.JobEducation)
	}
	if req.JobDescription != nil {
		m.JobDescription = strings.TrimSpace(*req.JobDescription)
	}
	if req.JobMetaTitle != nil {
		m.JobMetaTitle = strings.TrimSpace(*req.JobMetaTitle)
	}
	if req.JobMetaDescription != nil {
		m.JobMetaDescription = strings.TrimSpace(*req.JobMetaDescription)
	}
	if req.JobMetaKeywords != nil {
		m.JobMetaKeywords = strings.TrimSpace(*req.JobMetaKeywords)
	}
	if req.JobExpiresAt != nil {
		m.JobExpiresAt = req.JobExpiresAt
	}
	if req.JobIsActive != nil {
		m.JobIsActive = *req.JobIsActive
	}
	if req.JobIsFeatured != nil {
		m.JobIsFeatured = *req.JobIsFeatured
	}
}
