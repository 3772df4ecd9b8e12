package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	// CreateWithCounter inserts the application and bumps the job's
	// cached counter in the same transaction.
	CreateWithCounter(app *models.Application) error
	// DeleteWithCounter removes the application and decrements the job's
	// cached counter in the same transaction.
	DeleteWithCounter(id, jobID string) error

	FindByID(id string) (*models.Application, error)
	FindByJobAndApplicant(jobID, applicantID string) (*models.Application, error)
	FindWithFilter(filter ApplicationFilter) ([]models.Application, PageInfo, error)
	UpdateStatus(id string, status models.ApplicationStatus, notes *string) error
	StatusCounts(filter ApplicationFilter) (map[string]int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) CreateWithCounter(app *models.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Application
		err := tx.Where("job_id = ? AND applicant_id = ?", app.JobID, app.ApplicantID).
			First(&existing).Error
		if err == nil {
			return ErrApplicationAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(app).Error; err != nil {
			// A concurrent submit can slip past the re-check; the unique
			// index on (job_id, applicant_id) is the final arbiter.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrApplicationAlreadyExists
			}
			return err
		}

		// Single atomic increment; never read-modify-write.
		return tx.Model(&models.Job{}).Where("id = ?", app.JobID).
			UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
	})
}

func (r *ApplicationRepositoryImpl) DeleteWithCounter(id, jobID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.Application{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationNotFound
		}

		return tx.Model(&models.Job{}).Where("id = ? AND application_count > 0", jobID).
			UpdateColumn("application_count", gorm.Expr("application_count - 1")).Error
	})
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Job").Preload("Job.Recruiter").Preload("Applicant").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndApplicant(jobID, applicantID string) (*models.Application, error) {
	var app models.Application
	err := r.db.Where("job_id = ? AND applicant_id = ?", jobID, applicantID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindWithFilter(filter ApplicationFilter) ([]models.Application, PageInfo, error) {
	var apps []models.Application
	query := filter.Apply(r.db.Model(&models.Application{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PageInfo{}, err
	}

	err := query.Preload("Job").Preload("Job.Recruiter").Preload("Applicant").
		Order(ApplicationSortClause(filter.Sort)).
		Limit(filter.Limit).Offset(filter.Offset()).
		Find(&apps).Error
	if err != nil {
		return nil, PageInfo{}, err
	}

	return apps, NewPageInfo(total, filter.Pagination), nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus, notes *string) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if notes != nil {
		updates["notes"] = *notes
	}

	result := r.db.Model(&models.Application{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// StatusCounts returns per-status bucket counts for the applications
// matched by the filter's scope fields (status itself is ignored).
func (r *ApplicationRepositoryImpl) StatusCounts(filter ApplicationFilter) (map[string]int64, error) {
	scope := filter
	scope.Status = ""

	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := scope.Apply(r.db.Model(&models.Application{})).
		Select("applications.status, COUNT(*) as count").
		Group("applications.status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{
		string(models.ApplicationStatusPending):     0,
		string(models.ApplicationStatusReviewed):    0,
		string(models.ApplicationStatusShortlisted): 0,
		string(models.ApplicationStatusRejected):    0,
		string(models.ApplicationStatusHired):       0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
