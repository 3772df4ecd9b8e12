package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobStats aggregates a recruiter's dashboard numbers.
type JobStats struct {
	TotalJobs            int64            `json:"totalJobs"`
	JobsByStatus         map[string]int64 `json:"jobsByStatus"`
	TotalApplications    int64            `json:"totalApplications"`
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
	MonthlyJobCreations  []MonthlyCount   `json:"monthlyJobCreations"`
}

// MonthlyCount is one bucket of the job-creation histogram.
type MonthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	FindWithFilter(filter JobFilter) ([]models.Job, PageInfo, error)
	Update(job *models.Job) error
	UpdateStatus(id string, status models.JobStatus) error
	Delete(id string) error
	FindByRecruiterWithLiveCounts(filter JobFilter) ([]models.Job, PageInfo, error)
	IDsByRecruiter(recruiterID string) ([]string, error)
	GetStats(recruiterID string) (*JobStats, error)
	ResyncApplicationCounts() (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Recruiter").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindWithFilter(filter JobFilter) ([]models.Job, PageInfo, error) {
	var jobs []models.Job
	query := filter.Apply(r.db.Model(&models.Job{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PageInfo{}, err
	}

	err := query.Preload("Recruiter").
		Order(JobSortClause(filter.Sort)).
		Limit(filter.Limit).Offset(filter.Offset()).
		Find(&jobs).Error
	if err != nil {
		return nil, PageInfo{}, err
	}

	return jobs, NewPageInfo(total, filter.Pagination), nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(job).Updates(map[string]interface{}{
		"title":                job.Title,
		"description":          job.Description,
		"location":             job.Location,
		"category":             job.Category,
		"level":                job.Level,
		"salary":               job.Salary,
		"requirements":         job.Requirements,
		"responsibilities":     job.Responsibilities,
		"application_deadline": job.ApplicationDeadline,
		"updated_at":           time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) UpdateStatus(id string, status models.JobStatus) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Delete removes the job and every application referencing it in one
// transaction, so the cascade is atomic from the caller's perspective.
func (r *JobRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

// FindByRecruiterWithLiveCounts lists the recruiter's jobs with
// application_count recomputed from the applications table rather than
// read from the cached column. Intentional consistency-check path.
func (r *JobRepositoryImpl) FindByRecruiterWithLiveCounts(filter JobFilter) ([]models.Job, PageInfo, error) {
	var jobs []models.Job
	query := filter.Apply(r.db.Model(&models.Job{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PageInfo{}, err
	}

	err := query.
		Select("jobs.*, (SELECT COUNT(*) FROM applications WHERE applications.job_id = jobs.id) AS application_count").
		Order(JobSortClause(filter.Sort)).
		Limit(filter.Limit).Offset(filter.Offset()).
		Find(&jobs).Error
	if err != nil {
		return nil, PageInfo{}, err
	}

	return jobs, NewPageInfo(total, filter.Pagination), nil
}

func (r *JobRepositoryImpl) IDsByRecruiter(recruiterID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Job{}).Where("recruiter_id = ?", recruiterID).Pluck("id", &ids).Error
	return ids, err
}

func (r *JobRepositoryImpl) GetStats(recruiterID string) (*JobStats, error) {
	stats := &JobStats{
		JobsByStatus:         make(map[string]int64),
		ApplicationsByStatus: make(map[string]int64),
	}

	type statusCount struct {
		Status string
		Count  int64
	}

	var jobCounts []statusCount
	err := r.db.Model(&models.Job{}).
		Select("status, COUNT(*) as count").
		Where("recruiter_id = ?", recruiterID).
		Group("status").
		Find(&jobCounts).Error
	if err != nil {
		return nil, err
	}
	for _, sc := range jobCounts {
		stats.JobsByStatus[sc.Status] = sc.Count
		stats.TotalJobs += sc.Count
	}

	var appCounts []statusCount
	err = r.db.Model(&models.Application{}).
		Select("applications.status, COUNT(*) as count").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.recruiter_id = ?", recruiterID).
		Group("applications.status").
		Find(&appCounts).Error
	if err != nil {
		return nil, err
	}
	for _, sc := range appCounts {
		stats.ApplicationsByStatus[sc.Status] = sc.Count
		stats.TotalApplications += sc.Count
	}

	// 6-month job-creation histogram, oldest month first.
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)
	var monthly []MonthlyCount
	err = r.db.Raw(`
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, COUNT(*) AS count
		FROM jobs
		WHERE recruiter_id = ? AND created_at >= ?
		GROUP BY 1
		ORDER BY 1
	`, recruiterID, from).Scan(&monthly).Error
	if err != nil {
		return nil, err
	}

	// Zero-fill so consumers always get six buckets.
	byMonth := make(map[string]int64, len(monthly))
	for _, mc := range monthly {
		byMonth[mc.Month] = mc.Count
	}
	stats.MonthlyJobCreations = make([]MonthlyCount, 0, 6)
	for i := 0; i < 6; i++ {
		month := from.AddDate(0, i, 0).Format("2006-01")
		stats.MonthlyJobCreations = append(stats.MonthlyJobCreations, MonthlyCount{Month: month, Count: byMonth[month]})
	}

	return stats, nil
}

// ResyncApplicationCounts recomputes application_count for every job from
// the applications table. Idempotent repair job for counter drift; returns
// the number of rows that were out of sync.
func (r *JobRepositoryImpl) ResyncApplicationCounts() (int64, error) {
	result := r.db.Exec(`
		UPDATE jobs SET application_count = live.count
		FROM (
			SELECT jobs.id, COUNT(applications.id) AS count
			FROM jobs
			LEFT JOIN applications ON applications.job_id = jobs.id
			GROUP BY jobs.id
		) AS live
		WHERE jobs.id = live.id AND jobs.application_count <> live.count
	`)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
