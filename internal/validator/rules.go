package validator

import (
	"log"

	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum and identifier rules used by the
// request DTOs. Empty values pass; 'required' handles presence.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-job-level", validateJobLevel)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-object-id", validateObjectID)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleJobSeeker, models.UserRoleRecruiter, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidJobStatus(models.JobStatus(value))
}

func validateJobLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidJobLevel(models.JobLevel(value))
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidApplicationStatus(models.ApplicationStatus(value))
}

func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidID(value)
}
