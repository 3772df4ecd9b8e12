package dto

import "time"

type CreateJobRequest struct {
	Title               string     `json:"title" validate:"required,min=3,max=200"`
	Description         string     `json:"description" validate:"required"`
	Location            string     `json:"location" validate:"required"`
	Category            string     `json:"category" validate:"required"`
	Level               string     `json:"level" validate:"omitempty,is-job-level"`
	Salary              *float64   `json:"salary" validate:"required,gte=0"`
	Requirements        []string   `json:"requirements"`
	Responsibilities    []string   `json:"responsibilities"`
	Status              string     `json:"status" validate:"omitempty,is-job-status"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
}

// UpdateJobRequest is a merge-update: nil fields keep their value.
type UpdateJobRequest struct {
	Title               *string    `json:"title" validate:"omitempty,min=3,max=200"`
	Description         *string    `json:"description"`
	Location            *string    `json:"location"`
	Category            *string    `json:"category"`
	Level               *string    `json:"level" validate:"omitempty,is-job-level"`
	Salary              *float64   `json:"salary" validate:"omitempty,gte=0"`
	Requirements        []string   `json:"requirements"`
	Responsibilities    []string   `json:"responsibilities"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
}

type ChangeJobStatusRequest struct {
	Status string `json:"status" validate:"required,is-job-status"`
}

// JobQuery binds the flat filter/sort/page query parameters.
type JobQuery struct {
	Search    string   `form:"search" json:"search"`
	Location  string   `form:"location" json:"location"`
	Category  string   `form:"category" json:"category"`
	Level     string   `form:"level" json:"level" validate:"omitempty,is-job-level"`
	Status    string   `form:"status" json:"status" validate:"omitempty,is-job-status"`
	MinSalary *float64 `form:"minSalary" json:"minSalary"`
	MaxSalary *float64 `form:"maxSalary" json:"maxSalary"`
	Sort      string   `form:"sort" json:"sort"`
	Page      int      `form:"page" json:"page"`
	Limit     int      `form:"limit" json:"limit"`
}

// OwnerSummary is the embedded recruiter info on public job payloads.
type OwnerSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type JobResponse struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	Location            string        `json:"location"`
	Category            string        `json:"category"`
	Level               string        `json:"level,omitempty"`
	Salary              float64       `json:"salary"`
	Requirements        []string      `json:"requirements"`
	Responsibilities    []string      `json:"responsibilities"`
	Status              string        `json:"status"`
	ApplicationDeadline *time.Time    `json:"applicationDeadline,omitempty"`
	ApplicationCount    int           `json:"applicationCount"`
	Owner               *OwnerSummary `json:"owner,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

type JobListResponse struct {
	Success     bool          `json:"success"`
	Jobs        []JobResponse `json:"jobs"`
	TotalJobs   int64         `json:"totalJobs"`
	NumOfPages  int           `json:"numOfPages"`
	CurrentPage int           `json:"currentPage"`
}
