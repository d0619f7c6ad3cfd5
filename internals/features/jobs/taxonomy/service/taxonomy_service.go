// internals/features/jobs/taxonomy/service/taxonomy_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	tModel "jobportal_backend/internals/features/jobs/taxonomy/model"
	helper "jobportal_backend/internals/helpers"
)

var (
	ErrCategoryNotFound       = errors.New("category not found")
	ErrSubcategoryNotFound    = errors.New("subcategory not found")
	ErrFunctionalAreaNotFound = errors.New("functional area not found")
	ErrDuplicateName          = errors.New("name already exists under this parent")
	ErrNodeReferenced         = errors.New("node is referenced by job postings")
)

// CategoryNameAvailable checks the case-insensitive name rule. Pass the
// row's own id as exclude on rename so it does not collide with itself.
func CategoryNameAvailable(ctx context.Context, db *gorm.DB, name string, exclude uuid.UUID) error {
	q := db.WithContext(ctx).Model(&tModel.CategoryModel{}).
		Where("LOWER(category_name) = LOWER(?)", strings.TrimSpace(name))
	if exclude != uuid.Nil {
		q = q.Where("category_id <> ?", exclude)
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

// SubcategoryNameAvailable checks the per-category case-insensitive name rule.
func SubcategoryNameAvailable(ctx context.Context, db *gorm.DB, categoryID uuid.UUID, name string, exclude uuid.UUID) error {
	q := db.WithContext(ctx).Model(&tModel.SubcategoryModel{}).
		Where("subcategory_category_id = ? AND LOWER(subcategory_name) = LOWER(?)", categoryID, strings.TrimSpace(name))
	if exclude != uuid.Nil {
		q = q.Where("subcategory_id <> ?", exclude)
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

// FunctionalAreaNameAvailable checks the per-subcategory case-insensitive
// name rule.
func FunctionalAreaNameAvailable(ctx context.Context, db *gorm.DB, subcategoryID uuid.UUID, name string, exclude uuid.UUID) error {
	q := db.WithContext(ctx).Model(&tModel.FunctionalAreaModel{}).
		Where("functional_area_subcategory_id = ? AND LOWER(functional_area_name) = LOWER(?)", subcategoryID, strings.TrimSpace(name))
	if exclude != uuid.Nil {
		q = q.Where("functional_area_id <> ?", exclude)
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

// CreateCategory registers a root taxonomy node. Names are unique
// case-insensitively; the slug is derived once and never changes.
func CreateCategory(ctx context.Context, db *gorm.DB, name, description, icon string) (*tModel.CategoryModel, error) {
	name = strings.TrimSpace(name)

	if err := CategoryNameAvailable(ctx, db, name, uuid.Nil); err != nil {
		return nil, err
	}

	m := &tModel.CategoryModel{
		CategoryName:        name,
		CategorySlug:        helper.Slugify(name, 100),
		CategoryDescription: description,
		CategoryIcon:        icon,
		CategoryIsActive:    true,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// CreateSubcategory registers a second-level node. The slug carries the
// parent category name so equal leaf names in different categories stay
// globally unique without numeric suffixes.
func CreateSubcategory(ctx context.Context, db *gorm.DB, categoryID uuid.UUID, name, description string) (*tModel.SubcategoryModel, error) {
	name = strings.TrimSpace(name)

	var category tModel.CategoryModel
	if err := db.WithContext(ctx).First(&category, "category_id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if err := SubcategoryNameAvailable(ctx, db, categoryID, name, uuid.Nil); err != nil {
		return nil, err
	}

	base := helper.Slugify(category.CategoryName+" "+name, 150)
	slug, err := helper.EnsureUniqueSlugCI(ctx, db, "subcategories", "subcategory_slug", base, nil, 150)
	if err != nil {
		return nil, err
	}

	m := &tModel.SubcategoryModel{
		SubcategoryCategoryID:  categoryID,
		SubcategoryName:        name,
		SubcategorySlug:        slug,
		SubcategoryDescription: description,
		SubcategoryIsActive:    true,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// CreateFunctionalArea registers a leaf node. The slug carries the whole
// ancestor path (category-subcategory-name).
func CreateFunctionalArea(ctx context.Context, db *gorm.DB, subcategoryID uuid.UUID, name, description string) (*tModel.FunctionalAreaModel, error) {
	name = strings.TrimSpace(name)

	var subcategory tModel.SubcategoryModel
	if err := db.WithContext(ctx).Preload("Category").
		First(&subcategory, "subcategory_id = ?", subcategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, err
	}

	if err := FunctionalAreaNameAvailable(ctx, db, subcategoryID, name, uuid.Nil); err != nil {
		return nil, err
	}

	base := helper.Slugify(subcategory.Category.CategoryName+" "+subcategory.SubcategoryName+" "+name, 200)
	slug, err := helper.EnsureUniqueSlugCI(ctx, db, "functional_areas", "functional_area_slug", base, nil, 200)
	if err != nil {
		return nil, err
	}

	m := &tModel.FunctionalAreaModel{
		FunctionalAreaSubcategoryID: subcategoryID,
		FunctionalAreaName:          name,
		FunctionalAreaSlug:          slug,
		FunctionalAreaDescription:   description,
		FunctionalAreaIsActive:      true,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// DeactivateCategory soft-disables a category. Children keep their own
// active flags; listings hide them because the root list filters by the
// parent's flag.
func DeactivateCategory(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Model(&tModel.CategoryModel{}).
		Where("category_id = ?", id).
		Update("category_is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory removes a category and its whole subtree. Blocked while
// any job posting references the category.
func DeleteCategory(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Table("job_posts").Where("job_category_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrNodeReferenced
		}

		subIDs := tx.Model(&tModel.SubcategoryModel{}).
			Select("subcategory_id").
			Where("subcategory_category_id = ?", id)
		if err := tx.Where("functional_area_subcategory_id IN (?)", subIDs).
			Delete(&tModel.FunctionalAreaModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subcategory_category_id = ?", id).
			Delete(&tModel.SubcategoryModel{}).Error; err != nil {
			return err
		}

		res := tx.Where("category_id = ?", id).Delete(&tModel.CategoryModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}

// DeleteSubcategory removes a subcategory and its functional areas.
func DeleteSubcategory(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Table("job_posts").Where("job_subcategory_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrNodeReferenced
		}
		if err := tx.Where("functional_area_subcategory_id = ?", id).
			Delete(&tModel.FunctionalAreaModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("subcategory_id = ?", id).Delete(&tModel.SubcategoryModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSubcategoryNotFound
		}
		return nil
	})
}

// DeleteFunctionalArea removes a leaf node.
func DeleteFunctionalArea(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Table("job_posts").Where("job_functional_area_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrNodeReferenced
		}
		res := tx.Where("functional_area_id = ?", id).Delete(&tModel.FunctionalAreaModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrFunctionalAreaNotFound
		}
		return nil
	})
}

// FindCategoryBySlug resolves a category by its immutable slug.
func FindCategoryBySlug(ctx context.Context, db *gorm.DB, slug string) (*tModel.CategoryModel, error) {
	var m tModel.CategoryModel
	if err := db.WithContext(ctx).First(&m, "category_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindSubcategoryBySlug resolves a subcategory by its immutable slug.
func FindSubcategoryBySlug(ctx context.Context, db *gorm.DB, slug string) (*tModel.SubcategoryModel, error) {
	var m tModel.SubcategoryModel
	if err := db.WithContext(ctx).First(&m, "subcategory_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindFunctionalAreaBySlug resolves a functional area by its immutable slug.
func FindFunctionalAreaBySlug(ctx context.Context, db *gorm.DB, slug string) (*tModel.FunctionalAreaModel, error) {
	var m tModel.FunctionalAreaModel
	if err := db.WithContext(ctx).First(&m, "functional_area_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFunctionalAreaNotFound
		}
		return nil, err
	}
	return &m, nil
}
