package repository

import (
	"github.com/tasky-app/tasky-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindOwned finds a task by ID for the given owner with the given soft-delete state
func (r *GormTaskRepository) FindOwned(id, ownerID uint64, deleted bool) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Where("id = ? AND owner_id = ? AND is_deleted = ?", id, ownerID, deleted).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindOwnedAny finds a task by ID for the given owner regardless of soft-delete state
func (r *GormTaskRepository) FindOwnedAny(id, ownerID uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves the owner's tasks matching the status filter, newest first
func (r *GormTaskRepository) List(ownerID uint64, status TaskStatusFilter) ([]models.Task, error) {
	query := r.db.Model(&models.Task{}).Where("owner_id = ?", ownerID)

	switch status {
	case StatusCompleted:
		query = query.Where("is_deleted = ? AND is_completed = ?", false, true)
	case StatusDeleted:
		query = query.Where("is_deleted = ?", true)
	default:
		query = query.Where("is_deleted = ? AND is_completed = ?", false, false)
	}

	var tasks []models.Task
	if err := query.Order("date_created DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateOwned applies columns behind an owner+lifecycle WHERE clause. The store
// evaluates the predicate atomically, so no row is ever mutated after falling
// out of the expected state.
func (r *GormTaskRepository) UpdateOwned(id, ownerID uint64, deleted bool, columns map[string]interface{}) error {
	result := r.db.Model(&models.Task{}).
		Where("id = ? AND owner_id = ? AND is_deleted = ?", id, ownerID, deleted).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Purge permanently erases the owner's task
func (r *GormTaskRepository) Purge(id, ownerID uint64) error {
	result := r.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
