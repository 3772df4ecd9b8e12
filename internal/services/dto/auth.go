package dto

import "time"

// RegisterRequest binds JSON bodies and the fields of multipart forms;
// profileImage/resume files ride alongside and are handled by the upload
// service.
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Role     string `json:"role" form:"role" validate:"required,is-user-role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success      bool          `json:"success"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Resume       string    `json:"resume,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UpdateProfileRequest struct {
	Name *string `json:"name" form:"name" validate:"omitempty,min=2,max=100"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetConfirm struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}
