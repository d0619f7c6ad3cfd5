package helper

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Infra Engineer Acme", "infra-engineer-acme"},
		{"  Software   Engineering  ", "software-engineering"},
		{"C++ & Go!", "c-go"},
		{"Café Müller", "cafe-muller"},
		{"---", "item"},
		{"", "item"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, 100), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	got := Slugify("a very long title that keeps going and going", 10)
	assert.LessOrEqual(t, len(got), 10)
	assert.NotEqual(t, "-", got[len(got)-1:])
}

type slugRow struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"column:slug"`
}

func (slugRow) TableName() string { return "slug_rows" }

func TestEnsureUniqueSlugCI(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&slugRow{}))

	ctx := context.Background()

	s1, err := EnsureUniqueSlugCI(ctx, db, "slug_rows", "slug", "backend", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "backend", s1)
	require.NoError(t, db.Create(&slugRow{Slug: s1}).Error)

	s2, err := EnsureUniqueSlugCI(ctx, db, "slug_rows", "slug", "backend", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "backend-2", s2)
	require.NoError(t, db.Create(&slugRow{Slug: s2}).Error)

	s3, err := EnsureUniqueSlugCI(ctx, db, "slug_rows", "slug", "Backend", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "backend-3", s3, "collision check is case-insensitive")
}
