package cascade

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gModel "jobportal_backend/internals/features/jobs/geography/model"
	tModel "jobportal_backend/internals/features/jobs/taxonomy/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&gModel.StateModel{}, &gModel.CityModel{},
		&tModel.CategoryModel{}, &tModel.SubcategoryModel{}, &tModel.FunctionalAreaModel{},
	))
	return db
}

func TestActiveCitiesFiltersInactive(t *testing.T) {
	db := openTestDB(t)
	r := NewResolver(db, nil) // no cache, straight to the DB

	state := gModel.StateModel{StateName: "California", StateSlug: "california", StateIsActive: true}
	require.NoError(t, db.Create(&state).Error)

	la := gModel.CityModel{CityStateID: state.StateID, CityName: "Los Angeles", CitySlug: "california-los-angeles", CityIsActive: true}
	sf := gModel.CityModel{CityStateID: state.StateID, CityName: "San Francisco", CitySlug: "california-san-francisco", CityIsActive: false}
	require.NoError(t, db.Create(&la).Error)
	require.NoError(t, db.Create(&sf).Error)

	opts, err := r.ActiveCities(context.Background(), state.StateID)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "Los Angeles", opts[0].Name)
	assert.Equal(t, la.CityID, opts[0].ID)
}

func TestActiveCitiesUnknownParentIsEmpty(t *testing.T) {
	db := openTestDB(t)
	r := NewResolver(db, nil)

	opts, err := r.ActiveCities(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, opts, "unknown parent yields an empty list, not an error")
}

// Deactivating a parent does not hide its children from the cascade: each
// level filters on its own active flag only.
func TestActiveSubcategoriesLeafLevelFiltering(t *testing.T) {
	db := openTestDB(t)
	r := NewResolver(db, nil)

	cat := tModel.CategoryModel{CategoryName: "Engineering", CategorySlug: "engineering", CategoryIsActive: true}
	require.NoError(t, db.Create(&cat).Error)

	backend := tModel.SubcategoryModel{SubcategoryCategoryID: cat.CategoryID, SubcategoryName: "Backend", SubcategorySlug: "engineering-backend", SubcategoryIsActive: true}
	legacy := tModel.SubcategoryModel{SubcategoryCategoryID: cat.CategoryID, SubcategoryName: "Legacy", SubcategorySlug: "engineering-legacy", SubcategoryIsActive: false}
	require.NoError(t, db.Create(&backend).Error)
	require.NoError(t, db.Create(&legacy).Error)

	// Deactivate the parent category.
	require.NoError(t, db.Model(&tModel.CategoryModel{}).
		Where("category_id = ?", cat.CategoryID).
		Update("category_is_active", false).Error)

	opts, err := r.ActiveSubcategories(context.Background(), cat.CategoryID)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "Backend", opts[0].Name)
}

func TestActiveFunctionalAreas(t *testing.T) {
	db := openTestDB(t)
	r := NewResolver(db, nil)

	cat := tModel.CategoryModel{CategoryName: "Engineering", CategorySlug: "engineering", CategoryIsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	sub := tModel.SubcategoryModel{SubcategoryCategoryID: cat.CategoryID, SubcategoryName: "Backend", SubcategorySlug: "engineering-backend", SubcategoryIsActive: true}
	require.NoError(t, db.Create(&sub).Error)

	fa1 := tModel.FunctionalAreaModel{FunctionalAreaSubcategoryID: sub.SubcategoryID, FunctionalAreaName: "API Development", FunctionalAreaSlug: "engineering-backend-api-development", FunctionalAreaIsActive: true}
	fa2 := tModel.FunctionalAreaModel{FunctionalAreaSubcategoryID: sub.SubcategoryID, FunctionalAreaName: "Batch Processing", FunctionalAreaSlug: "engineering-backend-batch-processing", FunctionalAreaIsActive: false}
	require.NoError(t, db.Create(&fa1).Error)
	require.NoError(t, db.Create(&fa2).Error)

	opts, err := r.ActiveFunctionalAreas(context.Background(), sub.SubcategoryID)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "API Development", opts[0].Name)
}
