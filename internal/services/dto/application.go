package dto

import "time"

// SubmitApplicationRequest binds JSON bodies and multipart form fields; an
// optional resume file rides alongside in the multipart case.
type SubmitApplicationRequest struct {
	JobID       string `json:"jobId" form:"jobId" validate:"required,is-object-id"`
	CoverLetter string `json:"coverLetter" form:"coverLetter" validate:"omitempty,max=5000"`
}

type UpdateApplicationStatusRequest struct {
	Status string  `json:"status" validate:"required,is-application-status"`
	Notes  *string `json:"notes" validate:"omitempty,max=2000"`
}

type ApplicationQuery struct {
	Status string `form:"status" json:"status" validate:"omitempty,is-application-status"`
	Sort   string `form:"sort" json:"sort"`
	Page   int    `form:"page" json:"page"`
	Limit  int    `form:"limit" json:"limit"`
}

// ApplicantSummary is the embedded applicant info shown to recruiters.
type ApplicantSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// JobSummary is the embedded job info on a job seeker's application list.
type JobSummary struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Location string        `json:"location"`
	Category string        `json:"category"`
	Status   string        `json:"status"`
	Owner    *OwnerSummary `json:"owner,omitempty"`
}

type ApplicationResponse struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	ApplicantID string            `json:"applicantId"`
	Resume      string            `json:"resume,omitempty"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Status      string            `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	Job         *JobSummary       `json:"job,omitempty"`
	Applicant   *ApplicantSummary `json:"applicant,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type ApplicationListResponse struct {
	Success           bool                  `json:"success"`
	Applications      []ApplicationResponse `json:"applications"`
	TotalApplications int64                 `json:"totalApplications"`
	NumOfPages        int                   `json:"numOfPages"`
	CurrentPage       int                   `json:"currentPage"`
	StatusCounts      map[string]int64      `json:"statusCounts,omitempty"`
}
