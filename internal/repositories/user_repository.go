package repositories

import (
	"errors"
	"strings"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdatePassword(userID, passwordHash string) error
	SetResetToken(userID, token string, expiresAt time.Time) error
	FindByResetToken(token string) (*models.User, error)
	ClearResetToken(userID string) error
	Delete(userID string) error
	FindWithFilter(filter UserFilter) ([]models.User, PageInfo, error)

	// RefreshToken operations
	CreateRefreshToken(token *models.RefreshToken) error
	FindRefreshToken(token string) (*models.RefreshToken, error)
	DeleteRefreshToken(token string) error
	DeleteUserRefreshTokens(userID string) error
	CleanExpiredRefreshTokens() error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail matches case-insensitively; emails are stored lowercase.
func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	user.Email = strings.ToLower(user.Email)

	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"name":          user.Name,
		"profile_image": user.ProfileImage,
		"resume":        user.Resume,
		"updated_at":    time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdatePassword(userID, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetResetToken(userID, token string, expiresAt time.Time) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"reset_token":     token,
		"reset_token_exp": expiresAt,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindByResetToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.Where("reset_token = ? AND reset_token != '' AND reset_token_exp > ?", token, time.Now()).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) ClearResetToken(userID string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"reset_token":     "",
		"reset_token_exp": nil,
	}).Error
}

// Delete removes the user and everything hanging off them: refresh tokens,
// their applications (with counter decrements on the affected jobs) and,
// for recruiters, their jobs plus all applications to those jobs. One
// transaction; partial cascades never leak.
func (r *UserRepositoryImpl) Delete(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}

		// The user's own applications: decrement each referenced job's
		// counter before the rows go away.
		if err := tx.Exec(`
			UPDATE jobs SET application_count = application_count - 1
			WHERE id IN (SELECT job_id FROM applications WHERE applicant_id = ?)
		`, userID).Error; err != nil {
			return err
		}
		if err := tx.Where("applicant_id = ?", userID).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		// Applications to the user's jobs, then the jobs themselves.
		if err := tx.Exec(`
			DELETE FROM applications
			WHERE job_id IN (SELECT id FROM jobs WHERE recruiter_id = ?)
		`, userID).Error; err != nil {
			return err
		}
		if err := tx.Where("recruiter_id = ?", userID).Delete(&models.Job{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepositoryImpl) FindWithFilter(filter UserFilter) ([]models.User, PageInfo, error) {
	var users []models.User
	query := filter.Apply(r.db.Model(&models.User{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PageInfo{}, err
	}

	err := query.Order(UserSortClause(filter.Sort)).
		Limit(filter.Limit).Offset(filter.Offset()).
		Find(&users).Error
	if err != nil {
		return nil, PageInfo{}, err
	}

	return users, NewPageInfo(total, filter.Pagination), nil
}

// RefreshToken operations

func (r *UserRepositoryImpl) CreateRefreshToken(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *UserRepositoryImpl) FindRefreshToken(token string) (*models.RefreshToken, error) {
	var refreshToken models.RefreshToken
	err := r.db.Where("token = ? AND expires_at > ?", token, time.Now()).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &refreshToken, nil
}

func (r *UserRepositoryImpl) DeleteRefreshToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.RefreshToken{}).Error
}

func (r *UserRepositoryImpl) DeleteUserRefreshTokens(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}

func (r *UserRepositoryImpl) CleanExpiredRefreshTokens() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{}).Error
}
