package services

import (
	"encoding/json"
	"errors"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

const (
	publicJobPageSize    = 20
	recruiterJobPageSize = 10
)

// JobService owns job postings: the public catalog and the recruiter's
// own listings.
type JobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// CreateJob posts a new job owned by the recruiter. Status defaults to
// active when the request leaves it out.
func (s *JobService) CreateJob(recruiterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	status := models.JobStatusActive
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}

	job := &models.Job{
		RecruiterID:         recruiterID,
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		Category:            req.Category,
		Level:               models.JobLevel(req.Level),
		Salary:              *req.Salary,
		Status:              status,
		Requirements:        marshalStringList(req.Requirements),
		Responsibilities:    marshalStringList(req.Responsibilities),
		ApplicationDeadline: req.ApplicationDeadline,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job created", "job_id", job.ID, "recruiter_id", recruiterID)
	return JobToResponse(job, true), nil
}

// ListJobs serves the public catalog. Without an explicit status filter
// only active jobs are shown.
func (s *JobService) ListJobs(query *dto.JobQuery) (*dto.JobListResponse, error) {
	filter := repositories.JobFilter{
		Search:    query.Search,
		Location:  query.Location,
		Category:  query.Category,
		Level:     query.Level,
		Status:    query.Status,
		MinSalary: query.MinSalary,
		MaxSalary: query.MaxSalary,
		Sort:      query.Sort,
		Pagination: repositories.Pagination{
			Page:  query.Page,
			Limit: query.Limit,
		},
	}
	if filter.Status == "" {
		filter.Status = string(models.JobStatusActive)
	}
	filter.Normalize(publicJobPageSize)

	jobs, pageInfo, err := s.jobRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Success:     true,
		Jobs:        jobsToResponses(jobs, true),
		TotalJobs:   pageInfo.Total,
		NumOfPages:  pageInfo.PageCount,
		CurrentPage: pageInfo.CurrentPage,
	}, nil
}

// GetJob returns one job with its owner embedded. Public.
func (s *JobService) GetJob(id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return JobToResponse(job, true), nil
}

// UpdateJob merges the request into the job. Owner only.
func (s *JobService) UpdateJob(id, requesterID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findOwnedJob(id, requesterID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Level != nil {
		job.Level = models.JobLevel(*req.Level)
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Requirements != nil {
		job.Requirements = marshalStringList(req.Requirements)
	}
	if req.Responsibilities != nil {
		job.Responsibilities = marshalStringList(req.Responsibilities)
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return JobToResponse(job, true), nil
}

// ChangeStatus flips the job's lifecycle status. Owner only.
func (s *JobService) ChangeStatus(id, requesterID string, status string) (*dto.JobResponse, error) {
	job, err := s.findOwnedJob(id, requesterID)
	if err != nil {
		return nil, err
	}

	job.Status = models.JobStatus(status)
	if err := s.jobRepo.UpdateStatus(job.ID, job.Status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return JobToResponse(job, true), nil
}

// DeleteJob removes the job and all applications to it. Owner only.
func (s *JobService) DeleteJob(id, requesterID string) error {
	if _, err := s.findOwnedJob(id, requesterID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("job deleted", "job_id", id, "recruiter_id", requesterID)
	return nil
}

// GetOwnerJobs lists the recruiter's own jobs with live application
// counts, any status included by default.
func (s *JobService) GetOwnerJobs(recruiterID string, query *dto.JobQuery) (*dto.JobListResponse, error) {
	filter := repositories.JobFilter{
		Search:      query.Search,
		Location:    query.Location,
		Category:    query.Category,
		Level:       query.Level,
		Status:      query.Status,
		MinSalary:   query.MinSalary,
		MaxSalary:   query.MaxSalary,
		Sort:        query.Sort,
		RecruiterID: recruiterID,
		Pagination: repositories.Pagination{
			Page:  query.Page,
			Limit: query.Limit,
		},
	}
	filter.Normalize(recruiterJobPageSize)

	jobs, pageInfo, err := s.jobRepo.FindByRecruiterWithLiveCounts(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Success:     true,
		Jobs:        jobsToResponses(jobs, false),
		TotalJobs:   pageInfo.Total,
		NumOfPages:  pageInfo.PageCount,
		CurrentPage: pageInfo.CurrentPage,
	}, nil
}

// GetStats returns the recruiter's dashboard aggregates.
func (s *JobService) GetStats(recruiterID string) (*repositories.JobStats, error) {
	stats, err := s.jobRepo.GetStats(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

// ResyncApplicationCounts recomputes every cached counter; returns how
// many rows had drifted.
func (s *JobService) ResyncApplicationCounts() (int64, error) {
	fixed, err := s.jobRepo.ResyncApplicationCounts()
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	if fixed > 0 {
		logger.Warn("application counters were out of sync", "fixed", fixed)
	}
	return fixed, nil
}

func (s *JobService) findOwnedJob(id, requesterID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.RecruiterID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return job, nil
}

// JobToResponse maps a job row to its API shape, optionally embedding
// the preloaded owner.
func JobToResponse(job *models.Job, includeOwner bool) *dto.JobResponse {
	resp := &dto.JobResponse{
		ID:                  job.ID,
		Title:               job.Title,
		Description:         job.Description,
		Location:            job.Location,
		Category:            job.Category,
		Level:               string(job.Level),
		Salary:              job.Salary,
		Requirements:        unmarshalStringList(job.Requirements),
		Responsibilities:    unmarshalStringList(job.Responsibilities),
		Status:              string(job.Status),
		ApplicationDeadline: job.ApplicationDeadline,
		ApplicationCount:    job.ApplicationCount,
		CreatedAt:           job.CreatedAt,
		UpdatedAt:           job.UpdatedAt,
	}
	if includeOwner && job.Recruiter != nil {
		resp.Owner = &dto.OwnerSummary{
			ID:           job.Recruiter.ID,
			Name:         job.Recruiter.Name,
			Email:        job.Recruiter.Email,
			ProfileImage: job.Recruiter.ProfileImage,
		}
	}
	return resp
}

func jobsToResponses(jobs []models.Job, includeOwner bool) []dto.JobResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, *JobToResponse(&jobs[i], includeOwner))
	}
	return responses
}

func marshalStringList(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	raw, _ := json.Marshal(list)
	return datatypes.JSON(raw)
}

func unmarshalStringList(raw datatypes.JSON) []string {
	list := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &list)
	}
	return list
}
