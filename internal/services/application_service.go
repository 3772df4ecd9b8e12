package services

import (
	"errors"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

const applicationPageSize = 10

// ApplicationService owns the application lifecycle: submit, list from
// both sides of the table, review and withdraw.
type ApplicationService struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
) *ApplicationService {
	return &ApplicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// Submit files an application against an active job. One application per
// applicant per job; the job's cached counter moves in the same
// transaction as the insert. An empty resumeURL falls back to the
// applicant's profile resume.
func (s *ApplicationService) Submit(applicantID string, req *dto.SubmitApplicationRequest, resumeURL string) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrJobNotActive
	}
	if job.ApplicationDeadline != nil && job.ApplicationDeadline.Before(time.Now()) {
		return nil, apperrors.ErrDeadlinePassed
	}

	// Fast-path duplicate check; the transaction re-checks under lock.
	if _, err := s.appRepo.FindByJobAndApplicant(req.JobID, applicantID); err == nil {
		return nil, apperrors.ErrAlreadyApplied
	}

	if resumeURL == "" {
		applicant, err := s.userRepo.FindByID(applicantID)
		if err == nil {
			resumeURL = applicant.Resume
		}
	}

	app := &models.Application{
		JobID:       req.JobID,
		ApplicantID: applicantID,
		Resume:      resumeURL,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.appRepo.CreateWithCounter(app); err != nil {
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("application submitted", "application_id", app.ID, "job_id", job.ID, "applicant_id", applicantID)

	created, err := s.appRepo.FindByID(app.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ApplicationToResponse(created), nil
}

// ListForJob lists a job's applications for its owner, with per-status
// bucket counts alongside.
func (s *ApplicationService) ListForJob(jobID, requesterID string, query *dto.ApplicationQuery) (*dto.ApplicationListResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.RecruiterID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	filter := repositories.ApplicationFilter{
		Status: query.Status,
		JobID:  jobID,
		Sort:   query.Sort,
		Pagination: repositories.Pagination{
			Page:  query.Page,
			Limit: query.Limit,
		},
	}
	filter.Normalize(applicationPageSize)

	return s.list(filter, true)
}

// ListForApplicant lists the authenticated job seeker's own applications.
func (s *ApplicationService) ListForApplicant(applicantID string, query *dto.ApplicationQuery) (*dto.ApplicationListResponse, error) {
	filter := repositories.ApplicationFilter{
		Status:      query.Status,
		ApplicantID: applicantID,
		Sort:        query.Sort,
		Pagination: repositories.Pagination{
			Page:  query.Page,
			Limit: query.Limit,
		},
	}
	filter.Normalize(applicationPageSize)

	return s.list(filter, false)
}

// ListForRecruiter lists applications across all of the recruiter's jobs.
// A recruiter with no jobs gets an empty page, never an error.
func (s *ApplicationService) ListForRecruiter(recruiterID string, query *dto.ApplicationQuery) (*dto.ApplicationListResponse, error) {
	jobIDs, err := s.jobRepo.IDsByRecruiter(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(jobIDs) == 0 {
		return &dto.ApplicationListResponse{
			Success:      true,
			Applications: []dto.ApplicationResponse{},
			CurrentPage:  1,
			StatusCounts: emptyStatusCounts(),
		}, nil
	}

	filter := repositories.ApplicationFilter{
		Status: query.Status,
		JobIDs: jobIDs,
		Sort:   query.Sort,
		Pagination: repositories.Pagination{
			Page:  query.Page,
			Limit: query.Limit,
		},
	}
	filter.Normalize(applicationPageSize)

	return s.list(filter, true)
}

// GetByID returns one application to its applicant or to the owner of
// the job it targets.
func (s *ApplicationService) GetByID(id, requesterID string) (*dto.ApplicationResponse, error) {
	app, err := s.findVisibleApplication(id, requesterID)
	if err != nil {
		return nil, err
	}
	return ApplicationToResponse(app), nil
}

// UpdateStatus moves an application through the review pipeline. Job
// owner only.
func (s *ApplicationService) UpdateStatus(id, requesterID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if app.Job == nil || app.Job.RecruiterID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	status := models.ApplicationStatus(req.Status)
	if err := s.appRepo.UpdateStatus(id, status, req.Notes); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Re-read so the response carries the refreshed updated_at.
	updated, err := s.appRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ApplicationToResponse(updated), nil
}

// Withdraw deletes the applicant's own application while it is still
// pending, decrementing the job counter in the same transaction.
func (s *ApplicationService) Withdraw(id, requesterID string) error {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	if app.ApplicantID != requesterID {
		return apperrors.ErrInsufficientPermissions
	}
	if app.Status != models.ApplicationStatusPending {
		return apperrors.ErrApplicationNotPending
	}

	if err := s.appRepo.DeleteWithCounter(app.ID, app.JobID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("application withdrawn", "application_id", id, "applicant_id", requesterID)
	return nil
}

func (s *ApplicationService) list(filter repositories.ApplicationFilter, withCounts bool) (*dto.ApplicationListResponse, error) {
	apps, pageInfo, err := s.appRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ApplicationListResponse{
		Success:           true,
		Applications:      applicationsToResponses(apps),
		TotalApplications: pageInfo.Total,
		NumOfPages:        pageInfo.PageCount,
		CurrentPage:       pageInfo.CurrentPage,
	}

	if withCounts {
		counts, err := s.appRepo.StatusCounts(filter)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.StatusCounts = counts
	}
	return resp, nil
}

func (s *ApplicationService) findVisibleApplication(id, requesterID string) (*models.Application, error) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	isApplicant := app.ApplicantID == requesterID
	isJobOwner := app.Job != nil && app.Job.RecruiterID == requesterID
	if !isApplicant && !isJobOwner {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return app, nil
}

func emptyStatusCounts() map[string]int64 {
	return map[string]int64{
		string(models.ApplicationStatusPending):     0,
		string(models.ApplicationStatusReviewed):    0,
		string(models.ApplicationStatusShortlisted): 0,
		string(models.ApplicationStatusRejected):    0,
		string(models.ApplicationStatusHired):       0,
	}
}

// ApplicationToResponse maps an application row with its preloaded job
// and applicant to the API shape.
func ApplicationToResponse(app *models.Application) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		ApplicantID: app.ApplicantID,
		Resume:      app.Resume,
		CoverLetter: app.CoverLetter,
		Status:      string(app.Status),
		Notes:       app.Notes,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}

	if app.Job != nil {
		summary := &dto.JobSummary{
			ID:       app.Job.ID,
			Title:    app.Job.Title,
			Location: app.Job.Location,
			Category: app.Job.Category,
			Status:   string(app.Job.Status),
		}
		if app.Job.Recruiter != nil {
			summary.Owner = &dto.OwnerSummary{
				ID:           app.Job.Recruiter.ID,
				Name:         app.Job.Recruiter.Name,
				Email:        app.Job.Recruiter.Email,
				ProfileImage: app.Job.Recruiter.ProfileImage,
			}
		}
		resp.Job = summary
	}

	if app.Applicant != nil {
		resp.Applicant = &dto.ApplicantSummary{
			ID:           app.Applicant.ID,
			Name:         app.Applicant.Name,
			Email:        app.Applicant.Email,
			ProfileImage: app.Applicant.ProfileImage,
		}
	}
	return resp
}

func applicationsToResponses(apps []models.Application) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, *ApplicationToResponse(&apps[i]))
	}
	return responses
}
