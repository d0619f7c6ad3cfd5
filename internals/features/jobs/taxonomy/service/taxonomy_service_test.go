package service

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
		&pModel.JobPostModel{},
	))
	return db
}

func seedChain(t *testing.T, db *gorm.DB) (*tModel.CategoryModel, *tModel.SubcategoryModel, *tModel.FunctionalAreaModel) {
	t.Helper()
	ctx := context.Background()

	cat, err := CreateCategory(ctx, db, "Engineering", "", "")
	require.NoError(t, err)
	sub, err := CreateSubcategory(ctx, db, cat.CategoryID, "Backend", "")
	require.NoError(t, err)
	fa, err := CreateFunctionalArea(ctx, db, sub.SubcategoryID, "API Development", "")
	require.NoError(t, err)
	return cat, sub, fa
}

func TestSlugsCarryAncestorNames(t *testing.T) {
	db := openTestDB(t)
	cat, sub, fa := seedChain(t, db)

	assert.Equal(t, "engineering", cat.CategorySlug)
	assert.Equal(t, "engineering-backend", sub.SubcategorySlug)
	assert.Equal(t, "engineering-backend-api-development", fa.FunctionalAreaSlug)
}

func TestDuplicateNamesScopedToParent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	cat, _, _ := seedChain(t, db)

	_, err := CreateSubcategory(ctx, db, cat.CategoryID, "backend", "")
	assert.ErrorIs(t, err, ErrDuplicateName, "duplicate under the same parent, case-insensitive")

	other, err := CreateCategory(ctx, db, "Operations", "", "")
	require.NoError(t, err)
	sub, err := CreateSubcategory(ctx, db, other.CategoryID, "Backend", "")
	require.NoError(t, err, "same name under a different parent is fine")
	assert.Equal(t, "operations-backend", sub.SubcategorySlug)
}

func TestNameAvailableGuardsRenames(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	cat, sub, fa := seedChain(t, db)

	other, err := CreateCategory(ctx, db, "Operations", "", "")
	require.NoError(t, err)

	// Renaming onto a sibling is rejected before the unique index fires.
	assert.ErrorIs(t, CategoryNameAvailable(ctx, db, "engineering", other.CategoryID), ErrDuplicateName)
	// Keeping (or re-casing) your own name is fine with self-exclusion.
	assert.NoError(t, CategoryNameAvailable(ctx, db, "ENGINEERING", cat.CategoryID))

	devops, err := CreateSubcategory(ctx, db, cat.CategoryID, "DevOps", "")
	require.NoError(t, err)
	assert.ErrorIs(t, SubcategoryNameAvailable(ctx, db, cat.CategoryID, "backend", devops.SubcategoryID), ErrDuplicateName)
	assert.NoError(t, SubcategoryNameAvailable(ctx, db, cat.CategoryID, "DevOps", devops.SubcategoryID))
	// Same name under another parent never collides.
	assert.NoError(t, SubcategoryNameAvailable(ctx, db, other.CategoryID, "Backend", uuid.Nil))

	grpcDev, err := CreateFunctionalArea(ctx, db, sub.SubcategoryID, "gRPC Development", "")
	require.NoError(t, err)
	assert.ErrorIs(t, FunctionalAreaNameAvailable(ctx, db, sub.SubcategoryID, "api development", grpcDev.FunctionalAreaID), ErrDuplicateName)
	assert.NoError(t, FunctionalAreaNameAvailable(ctx, db, sub.SubcategoryID, "API Development", fa.FunctionalAreaID))
}

func TestCreateSubcategoryUnknownParent(t *testing.T) {
	db := openTestDB(t)

	_, err := CreateSubcategory(context.Background(), db, uuid.New(), "Backend", "")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeactivateCategoryKeepsChildren(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	cat, sub, _ := seedChain(t, db)

	require.NoError(t, DeactivateCategory(ctx, db, cat.CategoryID))

	var gotCat tModel.CategoryModel
	require.NoError(t, db.First(&gotCat, "category_id = ?", cat.CategoryID).Error)
	assert.False(t, gotCat.CategoryIsActive)

	var gotSub tModel.SubcategoryModel
	require.NoError(t, db.First(&gotSub, "subcategory_id = ?", sub.SubcategoryID).Error)
	assert.True(t, gotSub.SubcategoryIsActive, "children keep their own flags")
}

func TestDeleteCategoryCascadesToDescendants(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	cat, sub, fa := seedChain(t, db)

	require.NoError(t, DeleteCategory(ctx, db, cat.CategoryID))

	var count int64
	require.NoError(t, db.Model(&tModel.SubcategoryModel{}).Where("subcategory_id = ?", sub.SubcategoryID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&tModel.FunctionalAreaModel{}).Where("functional_area_id = ?", fa.FunctionalAreaID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	cat, sub, fa := seedChain(t, db)

	job := pModel.JobPostModel{
		JobTitle:            "Infra Engineer",
		JobSlug:             "infra-engineer-acme",
		JobType:             pModel.JobTypeFullTime,
		JobCompanyName:      "Acme",
		JobCategoryID:       cat.CategoryID,
		JobSubcategoryID:    sub.SubcategoryID,
		JobFunctionalAreaID: fa.FunctionalAreaID,
		JobDescription:      "Build and run infrastructure.",
		JobIsActive:         true,
	}
	require.NoError(t, db.Create(&job).Error)

	assert.ErrorIs(t, DeleteCategory(ctx, db, cat.CategoryID), ErrNodeReferenced)
	assert.ErrorIs(t, DeleteSubcategory(ctx, db, sub.SubcategoryID), ErrNodeReferenced)
	assert.ErrorIs(t, DeleteFunctionalArea(ctx, db, fa.FunctionalAreaID), ErrNodeReferenced)
}

func TestFindFunctionalAreaBySlug(t *testing.T) {
	db := openTestDB(t)
	_, _, fa := seedChain(t, db)

	got, err := FindFunctionalAreaBySlug(context.Background(), db, "engineering-backend-api-development")
	require.NoError(t, err)
	assert.Equal(t, fa.FunctionalAreaID, got.FunctionalAreaID)
}
