package repositories

import (
	"math"

	"gorm.io/gorm"
)

// Pagination is the flat page/limit parameter pair shared by every list
// query. Page is 1-indexed.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize clamps the pair to sane values, falling back to defaultLimit
// when the caller sent nothing.
func (p *Pagination) Normalize(defaultLimit int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo is the pagination metadata every list result carries.
type PageInfo struct {
	Total       int64
	PageCount   int
	CurrentPage int
}

// NewPageInfo computes PageCount = ceil(total/limit). A zero total yields
// PageCount 0; callers treat 0 and 1 identically.
func NewPageInfo(total int64, p Pagination) PageInfo {
	pageCount := 0
	if total > 0 {
		pageCount = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return PageInfo{
		Total:       total,
		PageCount:   pageCount,
		CurrentPage: p.Page,
	}
}

// JobFilter is the flat parameter bag for job list queries. Absent fields
// impose no constraint; all present fields AND-combine.
type JobFilter struct {
	Search      string
	Location    string
	Category    string
	Level       string
	Status      string
	MinSalary   *float64
	MaxSalary   *float64
	RecruiterID string
	Sort        string
	Pagination
}

// Apply adds the filter's WHERE clauses to the query.
func (f JobFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Search != "" {
		search := "%" + f.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", search, search)
	}
	if f.Location != "" {
		query = query.Where("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Level != "" {
		query = query.Where("level = ?", f.Level)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.MinSalary != nil {
		query = query.Where("salary >= ?", *f.MinSalary)
	}
	if f.MaxSalary != nil {
		query = query.Where("salary <= ?", *f.MaxSalary)
	}
	if f.RecruiterID != "" {
		query = query.Where("recruiter_id = ?", f.RecruiterID)
	}
	return query
}

// JobSortClause maps a sort key to an ORDER BY clause. Unrecognized keys
// fall back to "latest".
func JobSortClause(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC"
	case "a-z":
		return "title ASC"
	case "z-a":
		return "title DESC"
	case "salary-highest":
		return "salary DESC"
	case "salary-lowest":
		return "salary ASC"
	case "applications-highest":
		return "application_count DESC"
	default: // "latest"
		return "created_at DESC"
	}
}

// ApplicationFilter is the flat parameter bag for application list queries.
type ApplicationFilter struct {
	Status      string
	JobID       string
	JobIDs      []string
	ApplicantID string
	Sort        string
	Pagination
}

func (f ApplicationFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Status != "" {
		query = query.Where("applications.status = ?", f.Status)
	}
	if f.JobID != "" {
		query = query.Where("applications.job_id = ?", f.JobID)
	}
	if len(f.JobIDs) > 0 {
		query = query.Where("applications.job_id IN ?", f.JobIDs)
	}
	if f.ApplicantID != "" {
		query = query.Where("applications.applicant_id = ?", f.ApplicantID)
	}
	return query
}

// ApplicationSortClause maps a sort key to an ORDER BY clause.
// Unrecognized keys fall back to "newest".
func ApplicationSortClause(sort string) string {
	switch sort {
	case "oldest":
		return "applications.created_at ASC"
	case "status-asc":
		return "applications.status ASC"
	case "status-desc":
		return "applications.status DESC"
	default: // "newest"
		return "applications.created_at DESC"
	}
}

// UserFilter is the flat parameter bag for admin user listings.
type UserFilter struct {
	Role   string
	Search string
	Sort   string
	Pagination
}

func (f UserFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Role != "" {
		query = query.Where("role = ?", f.Role)
	}
	if f.Search != "" {
		search := "%" + f.Search + "%"
		query = query.Where("email ILIKE ? OR name ILIKE ?", search, search)
	}
	return query
}

// UserSortClause maps a sort key to an ORDER BY clause. Unrecognized keys
// fall back to "newest".
func UserSortClause(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC"
	case "a-z":
		return "name ASC"
	case "z-a":
		return "name DESC"
	default: // "newest"
		return "created_at DESC"
	}
}
