package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "job_posts.job_created_at",
		"title":      "job_posts.job_title",
	}

	p := Params{SortBy: "title", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "job_posts.job_title ASC", clause)

	p = Params{SortBy: "drop table", SortOrder: "asc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "job_posts.job_created_at ASC", clause, "unknown keys fall back to the default")
}

func TestBuildMeta(t *testing.T) {
	p := Params{Page: 2, PerPage: 20}
	m := BuildMeta(45, p)
	assert.Equal(t, int64(45), m.Total)
	assert.Equal(t, 3, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)
}
