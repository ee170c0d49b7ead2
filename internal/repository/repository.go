package repository

import (
	"github.com/tasky-app/tasky-api/internal/models"
)

// TaskStatusFilter selects which lifecycle slice of an owner's tasks to list.
type TaskStatusFilter string

const (
	StatusActive    TaskStatusFilter = "active"
	StatusCompleted TaskStatusFilter = "completed"
	StatusDeleted   TaskStatusFilter = "deleted"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID, excluding soft-deleted users
	FindByID(id uint64) (*models.User, error)

	// FindByIdentifier finds a user whose username or email matches identifier,
	// excluding soft-deleted users
	FindByIdentifier(identifier string) (*models.User, error)

	// ExistsWithUsernameOrEmail reports whether any user other than excludeID
	// already holds the given username or email. Empty values are skipped.
	ExistsWithUsernameOrEmail(excludeID uint64, username, email string) (bool, error)

	// UpdateFields applies the given columns to the user record. The
	// last_profile_update column is always stamped.
	UpdateFields(id uint64, columns map[string]interface{}) error

	// UpdatePassword replaces the stored password hash
	UpdatePassword(id uint64, passwordHash string) error
}

// TaskRepository defines the interface for task data access.
//
// Every method is owner-scoped: a task that does not exist, belongs to another
// user, or sits in the wrong lifecycle state is reported uniformly as
// gorm.ErrRecordNotFound.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindOwned finds a task by ID for the given owner with the given
	// soft-delete state
	FindOwned(id, ownerID uint64, deleted bool) (*models.Task, error)

	// FindOwnedAny finds a task by ID for the given owner regardless of
	// soft-delete state
	FindOwnedAny(id, ownerID uint64) (*models.Task, error)

	// List retrieves the owner's tasks matching the status filter, ordered by
	// creation time descending
	List(ownerID uint64, status TaskStatusFilter) ([]models.Task, error)

	// UpdateOwned applies columns to the task iff it belongs to ownerID and its
	// soft-delete flag equals deleted. Returns gorm.ErrRecordNotFound when no
	// row matched.
	UpdateOwned(id, ownerID uint64, deleted bool, columns map[string]interface{}) error

	// Purge permanently erases the owner's task from any lifecycle state
	Purge(id, ownerID uint64) error
}
