package repository

import (
	"time"

	"github.com/tasky-app/tasky-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID, excluding soft-deleted users
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier finds a user by username or email, excluding soft-deleted users
func (r *GormUserRepository) FindByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	err := r.db.
		Where("(username = ? OR email_address = ?) AND is_deleted = ?", identifier, identifier, false).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsWithUsernameOrEmail reports whether another user already holds the
// given username or email
func (r *GormUserRepository) ExistsWithUsernameOrEmail(excludeID uint64, username, email string) (bool, error) {
	if username == "" && email == "" {
		return false, nil
	}

	query := r.db.Model(&models.User{})
	switch {
	case username != "" && email != "":
		query = query.Where("username = ? OR email_address = ?", username, email)
	case username != "":
		query = query.Where("username = ?", username)
	default:
		query = query.Where("email_address = ?", email)
	}
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateFields applies the given columns and stamps last_profile_update
func (r *GormUserRepository) UpdateFields(id uint64, columns map[string]interface{}) error {
	updates := make(map[string]interface{}, len(columns)+1)
	for k, v := range columns {
		updates[k] = v
	}
	updates["last_profile_update"] = time.Now()

	result := r.db.Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash
func (r *GormUserRepository) UpdatePassword(id uint64, passwordHash string) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
