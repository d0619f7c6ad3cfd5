// internals/features/jobs/geography/service/geography_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	gModel "jobportal_backend/internals/features/jobs/geography/model"
	helper "jobportal_backend/internals/helpers"
)

var (
	ErrStateNotFound  = errors.New("state not found")
	ErrCityNotFound   = errors.New("city not found")
	ErrDuplicateName  = errors.New("name already exists under this parent")
	ErrNodeReferenced = errors.New("node is referenced by job postings")
)

// StateNameAvailable checks the case-insensitive name rule. Pass the row's
// own id as exclude on rename so it does not collide with itself.
func StateNameAvailable(ctx context.Context, db *gorm.DB, name string, exclude uuid.UUID) error {
	q := db.WithContext(ctx).Model(&gModel.StateModel{}).
		Where("LOWER(state_name) = LOWER(?)", strings.TrimSpace(name))
	if exclude != uuid.Nil {
		q = q.Where("state_id <> ?", exclude)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}
	return nil
}

// CityNameAvailable checks the per-state case-insensitive name rule.
func CityNameAvailable(ctx context.Context, db *gorm.DB, stateID uuid.UUID, name string, exclude uuid.UUID) error {
	q := db.WithContext(ctx).Model(&gModel.CityModel{}).
		Where("city_state_id = ? AND LOWER(city_name) = LOWER(?)", stateID, strings.TrimSpace(name))
	if exclude != uuid.Nil {
		q = q.Where("city_id <> ?", exclude)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}
	return nil
}

// CreateState registers a new state. Names are unique case-insensitively;
// the slug is derived from the name and never changes afterwards.
func CreateState(ctx context.Context, db *gorm.DB, name string) (*gModel.StateModel, error) {
	name = strings.TrimSpace(name)

	if err := StateNameAvailable(ctx, db, name, uuid.Nil); err != nil {
		return nil, err
	}

	m := &gModel.StateModel{
		StateName:     name,
		StateSlug:     helper.Slugify(name, 100),
		StateIsActive: true,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// CreateCity registers a city under a state. The name is unique within the
// state; the slug is prefixed with the state name so identical city names
// in different states never collide.
func CreateCity(ctx context.Context, db *gorm.DB, stateID uuid.UUID, name string) (*gModel.CityModel, error) {
	name = strings.TrimSpace(name)

	var state gModel.StateModel
	if err := db.WithContext(ctx).First(&state, "state_id = ?", stateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}

	if err := CityNameAvailable(ctx, db, stateID, name, uuid.Nil); err != nil {
		return nil, err
	}

	base := helper.Slugify(state.StateName+" "+name, 120)
	slug, err := helper.EnsureUniqueSlugCI(ctx, db, "cities", "city_slug", base, nil, 120)
	if err != nil {
		return nil, err
	}

	m := &gModel.CityModel{
		CityStateID:  stateID,
		CityName:     name,
		CitySlug:     slug,
		CityIsActive: true,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// DeactivateState soft-disables a state without touching its cities.
func DeactivateState(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Model(&gModel.StateModel{}).
		Where("state_id = ?", id).
		Update("state_is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateNotFound
	}
	return nil
}

// DeactivateCity soft-disables a single city.
func DeactivateCity(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Model(&gModel.CityModel{}).
		Where("city_id = ?", id).
		Update("city_is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCityNotFound
	}
	return nil
}

// DeleteState removes a state and its cities. Blocked while any job
// posting still references the state (soft-disable instead).
func DeleteState(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Table("job_posts").Where("job_state_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrNodeReferenced
		}
		if err := tx.Where("city_state_id = ?", id).Delete(&gModel.CityModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("state_id = ?", id).Delete(&gModel.StateModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStateNotFound
		}
		return nil
	})
}

// DeleteCity removes a city. Blocked while referenced by job postings.
func DeleteCity(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Table("job_posts").Where("job_city_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrNodeReferenced
		}
		res := tx.Where("city_id = ?", id).Delete(&gModel.CityModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCityNotFound
		}
		return nil
	})
}

// FindStateBySlug resolves a state by its immutable slug.
func FindStateBySlug(ctx context.Context, db *gorm.DB, slug string) (*gModel.StateModel, error) {
	var m gModel.StateModel
	if err := db.WithContext(ctx).First(&m, "state_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindCityBySlug resolves a city by its immutable slug.
func FindCityBySlug(ctx context.Context, db *gorm.DB, slug string) (*gModel.CityModel, error) {
	var m gModel.CityModel
	if err := db.WithContext(ctx).First(&m, "city_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &m, nil
}
