package services

import (
	"errors"
	"strings"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// AuthService owns registration, sessions, profile and password reset.
type AuthService struct {
	userRepo repositories.UserRepository
	email    email.Provider
	cfg      *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		email:    emailProvider,
		cfg:      cfg,
	}
}

// Register creates an account and logs it in immediately. Only jobseeker
// and recruiter accounts can self-register; admins are seeded.
func (s *AuthService) Register(req *dto.RegisterRequest, profileImageURL, resumeURL string) (*dto.LoginResponse, error) {
	role := models.UserRole(req.Role)
	if role != models.UserRoleJobSeeker && role != models.UserRoleRecruiter {
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		Role:         role,
		Name:         req.Name,
		ProfileImage: profileImageURL,
		Resume:       resumeURL,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)

	return s.issueSession(user)
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueSession(user)
}

// Logout revokes the given refresh token. Revoking an unknown token is
// not an error.
func (s *AuthService) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Refresh trades a valid refresh token for a fresh access token.
func (s *AuthService) Refresh(refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success:      true,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         UserToResponse(user),
	}, nil
}

// GetProfile returns the authenticated user's profile.
func (s *AuthService) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return UserToResponse(user), nil
}

// UpdateProfile merges the provided fields and file URLs into the profile.
// Empty URL strings mean "no new file uploaded".
func (s *AuthService) UpdateProfile(userID string, req *dto.UpdateProfileRequest, profileImageURL, resumeURL string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if profileImageURL != "" {
		user.ProfileImage = profileImageURL
	}
	if resumeURL != "" {
		user.Resume = resumeURL
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return UserToResponse(user), nil
}

// RequestPasswordReset emails a reset token to the account, if it exists.
// The response never reveals whether the email is registered.
func (s *AuthService) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(1 * time.Hour)

	if err := s.userRepo.SetResetToken(user.ID, token, expiresAt); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.email.SendPasswordReset(user.Email, token); err != nil {
		return apperrors.UpstreamError(err, "email", "Failed to send reset email")
	}

	logger.Info("password reset requested", "user_id", user.ID)
	return nil
}

// ResetPassword consumes a reset token, rotates the password hash and
// revokes every active session.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, hash); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.ClearResetToken(user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.DeleteUserRefreshTokens(user.ID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("password reset completed", "user_id", user.ID)
	return nil
}

func (s *AuthService) issueSession(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().AddDate(0, 0, s.cfg.JWT.RefreshTTLDay),
	}
	if err := s.userRepo.CreateRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success:      true,
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         UserToResponse(user),
	}, nil
}

// UserToResponse maps a user row to its API shape.
func UserToResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         string(user.Role),
		ProfileImage: user.ProfileImage,
		Resume:       user.Resume,
		CreatedAt:    user.CreatedAt,
	}
}
