package services

import (
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"
)

// ServiceContainer wires every service with its repositories and
// collaborators; handlers depend on this, not on repositories.
type ServiceContainer struct {
	Auth        *AuthService
	Job         *JobService
	Application *ApplicationService
	Admin       *AdminService
	Upload      *UploadService
}

func NewServiceContainer(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	st storage.Storage,
	emailProvider email.Provider,
	cfg *config.Config,
) *ServiceContainer {
	return &ServiceContainer{
		Auth:        NewAuthService(userRepo, emailProvider, cfg),
		Job:         NewJobService(jobRepo),
		Application: NewApplicationService(appRepo, jobRepo, userRepo),
		Admin:       NewAdminService(userRepo, jobRepo),
		Upload:      NewUploadService(st, cfg),
	}
}
