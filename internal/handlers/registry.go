package handlers

import (
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/services"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Admin       *AdminHandler
}

func NewAppHandlers(svc *services.ServiceContainer, cfg *config.Config) *AppHandlers {
	return &AppHandlers{
		Auth:        NewAuthHandler(svc.Auth, svc.Upload, cfg),
		Job:         NewJobHandler(svc.Job),
		Application: NewApplicationHandler(svc.Application, svc.Upload),
		Admin:       NewAdminHandler(svc.Admin, svc.Job),
	}
}
