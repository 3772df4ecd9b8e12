package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Pagination
		wantPage  int
		wantLimit int
	}{
		{"defaults", Pagination{}, 1, 20},
		{"negative page", Pagination{Page: -3, Limit: 10}, 1, 10},
		{"limit capped", Pagination{Page: 2, Limit: 500}, 2, 100},
		{"kept as is", Pagination{Page: 4, Limit: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize(20)
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	p := Pagination{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestNewPageInfo(t *testing.T) {
	// Partial last page rounds up.
	info := NewPageInfo(25, Pagination{Page: 2, Limit: 10})
	assert.EqualValues(t, 25, info.Total)
	assert.Equal(t, 3, info.PageCount)
	assert.Equal(t, 2, info.CurrentPage)

	// Exact multiple.
	info = NewPageInfo(30, Pagination{Page: 1, Limit: 10})
	assert.Equal(t, 3, info.PageCount)

	// Empty result set.
	info = NewPageInfo(0, Pagination{Page: 1, Limit: 10})
	assert.Equal(t, 0, info.PageCount)
}

func TestJobSortClause(t *testing.T) {
	assert.Equal(t, "created_at ASC", JobSortClause("oldest"))
	assert.Equal(t, "title ASC", JobSortClause("a-z"))
	assert.Equal(t, "title DESC", JobSortClause("z-a"))
	assert.Equal(t, "salary DESC", JobSortClause("salary-highest"))
	assert.Equal(t, "salary ASC", JobSortClause("salary-lowest"))
	assert.Equal(t, "application_count DESC", JobSortClause("applications-highest"))

	// Unknown keys fall back to latest.
	assert.Equal(t, "created_at DESC", JobSortClause(""))
	assert.Equal(t, "created_at DESC", JobSortClause("bogus"))
}

func TestApplicationSortClause(t *testing.T) {
	assert.Equal(t, "applications.created_at ASC", ApplicationSortClause("oldest"))
	assert.Equal(t, "applications.status ASC", ApplicationSortClause("status-asc"))
	assert.Equal(t, "applications.created_at DESC", ApplicationSortClause(""))
}

func TestUserSortClause(t *testing.T) {
	assert.Equal(t, "name ASC", UserSortClause("a-z"))
	assert.Equal(t, "created_at DESC", UserSortClause("anything"))
}
