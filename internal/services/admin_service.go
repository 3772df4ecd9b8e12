package services

import (
	"errors"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

const adminUserPageSize = 10

// AdminService backs the minimal admin panel: account listings, account
// removal and the counter repair job.
type AdminService struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
}

func NewAdminService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository) *AdminService {
	return &AdminService{userRepo: userRepo, jobRepo: jobRepo}
}

// ListUsers pages through all accounts, filterable by role and search.
func (s *AdminService) ListUsers(query *dto.UserQuery) (*dto.UserListResponse, error) {
	users, pageInfo, err := s.listUsers(query, query.Role)
	if err != nil {
		return nil, err
	}

	return &dto.UserListResponse{
		Success:     true,
		Users:       users,
		TotalUsers:  pageInfo.Total,
		NumOfPages:  pageInfo.PageCount,
		CurrentPage: pageInfo.CurrentPage,
	}, nil
}

// ListRecruiters pages through recruiter accounts only.
func (s *AdminService) ListRecruiters(query *dto.UserQuery) (*dto.RecruiterListResponse, error) {
	recruiters, pageInfo, err := s.listUsers(query, string(models.UserRoleRecruiter))
	if err != nil {
		return nil, err
	}

	return &dto.RecruiterListResponse{
		Success:         true,
		Recruiters:      recruiters,
		TotalRecruiters: pageInfo.Total,
		NumOfPages:      pageInfo.PageCount,
		CurrentPage:     pageInfo.CurrentPage,
	}, nil
}

// DeleteUser removes an account and everything that hangs off it. Admins
// cannot delete themselves.
func (s *AdminService) DeleteUser(targetID, requesterID string) error {
	if targetID == requesterID {
		return apperrors.ErrCannotModifySelf
	}

	if err := s.userRepo.Delete(targetID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "User not found")
		}
		return apperrors.InternalError(err)
	}

	logger.Info("user deleted by admin", "target_id", targetID, "admin_id", requesterID)
	return nil
}

func (s *AdminService) listUsers(query *dto.UserQuery, role string) ([]dto.UserResponse, repositories.PageInfo, error) {
	filter := repositories.UserFilter{
		Role:   role,
		Search: query.Search,
		Sort:   query.Sort,
		Pagination: repositories.Pagination{
			Page:  query.Page,
			Limit: query.Limit,
		},
	}
	filter.Normalize(adminUserPageSize)

	users, pageInfo, err := s.userRepo.FindWithFilter(filter)
	if err != nil {
		return nil, repositories.PageInfo{}, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses, pageInfo, nil
}
