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

func TestCreateStateDerivesSlug(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	s, err := CreateState(ctx, db, "California")
	require.NoError(t, err)
	assert.Equal(t, "california", s.StateSlug)
	assert.True(t, s.StateIsActive)
}

func TestCreateStateDuplicateName(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := CreateState(ctx, db, "California")
	require.NoError(t, err)

	_, err = CreateState(ctx, db, "california")
	assert.ErrorIs(t, err, ErrDuplicateName, "names are unique case-insensitively")
}

func TestNameAvailableGuardsRenames(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	california, err := CreateState(ctx, db, "California")
	require.NoError(t, err)
	texas, err := CreateState(ctx, db, "Texas")
	require.NoError(t, err)

	// Renaming onto a sibling is rejected before the unique index fires.
	assert.ErrorIs(t, StateNameAvailable(ctx, db, "california", texas.StateID), ErrDuplicateName)
	// Keeping (or re-casing) your own name is fine with self-exclusion.
	assert.NoError(t, StateNameAvailable(ctx, db, "CALIFORNIA", california.StateID))

	la, err := CreateCity(ctx, db, california.StateID, "Los Angeles")
	require.NoError(t, err)
	_, err = CreateCity(ctx, db, california.StateID, "San Diego")
	require.NoError(t, err)

	assert.ErrorIs(t, CityNameAvailable(ctx, db, california.StateID, "san diego", la.CityID), ErrDuplicateName)
	assert.NoError(t, CityNameAvailable(ctx, db, california.StateID, "Los Angeles", la.CityID))
	// Same name under another state never collides.
	assert.NoError(t, CityNameAvailable(ctx, db, texas.StateID, "Los Angeles", uuid.Nil))
}

func TestCreateCitySlugCarriesStateName(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	s, err := CreateState(ctx, db, "California")
	require.NoError(t, err)

	c, err := CreateCity(ctx, db, s.StateID, "Los Angeles")
	require.NoError(t, err)
	assert.Equal(t, "california-los-angeles", c.CitySlug)
	assert.Equal(t, s.StateID, c.CityStateID)
}

func TestCreateCitySameNameDifferentStates(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	ca, err := CreateState(ctx, db, "California")
	require.NoError(t, err)
	tx, err := CreateState(ctx, db, "Texas")
	require.NoError(t, err)

	c1, err := CreateCity(ctx, db, ca.StateID, "Springfield")
	require.NoError(t, err)
	c2, err := CreateCity(ctx, db, tx.StateID, "Springfield")
	require.NoError(t, err, "the same city name is fine under a different state")

	assert.NotEqual(t, c1.CitySlug, c2.CitySlug)

	_, err = CreateCity(ctx, db, ca.StateID, "springfield")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestDeactivateCityKeepsRow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	s, err := CreateState(ctx, db, "California")
	require.NoError(t, err)
	c, err := CreateCity(ctx, db, s.StateID, "Los Angeles")
	require.NoError(t, err)

	require.NoError(t, DeactivateCity(ctx, db, c.CityID))

	var got gModel.CityModel
	require.NoError(t, db.First(&got, "city_id = ?", c.CityID).Error)
	assert.False(t, got.CityIsActive)
}

func TestDeleteStateBlockedWhileReferenced(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	s, err := CreateState(ctx, db, "California")
	require.NoError(t, err)
	c, err := CreateCity(ctx, db, s.StateID, "Los Angeles")
	require.NoError(t, err)

	job := pModel.JobPostModel{
		JobTitle:       "Infra Engineer",
		JobSlug:        "infra-engineer-acme",
		JobType:        pModel.JobTypeFullTime,
		JobCompanyName: "Acme",
		JobStateID:     s.StateID,
		JobCityID:      c.CityID,
		JobDescription: "Build and run infrastructure.",
		JobIsActive:    true,
	}
	require.NoError(t, db.Create(&job).Error)

	assert.ErrorIs(t, DeleteState(ctx, db, s.StateID), ErrNodeReferenced)
	assert.ErrorIs(t, DeleteCity(ctx, db, c.CityID), ErrNodeReferenced)

	require.NoError(t, db.Delete(&pModel.JobPostModel{}, "job_id = ?", job.JobID).Error)
	require.NoError(t, DeleteCity(ctx, db, c.CityID))
	require.NoError(t, DeleteState(ctx, db, s.StateID))
}

func TestFindStateBySlug(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	s, err := CreateState(ctx, db, "California")
	require.NoError(t, err)

	got, err := FindStateBySlug(ctx, db, "california")
	require.NoError(t, err)
	assert.Equal(t, s.StateID, got.StateID)

	_, err = FindStateBySlug(ctx, db, "nope")
	assert.ErrorIs(t, err, ErrStateNotFound)
}
