package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tasky-app/tasky-api/internal/models"
	"github.com/tasky-app/tasky-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskNotFoundInTrash = errors.New("task not found in trash")
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)

// TaskService enforces the task lifecycle state machine. Every transition is
// gated on ownership plus the task's current flags; a task that fails the
// lookup predicate is reported as not found, whatever the actual reason.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	OwnerID     uint64
	Title       string
	Description string
	Priority    models.TaskPriority
	Deadline    *time.Time
}

// UpdateTaskInput represents input for editing a task.
type UpdateTaskInput struct {
	Title         string
	Description   string
	Priority      *models.TaskPriority
	Deadline      *time.Time
	ClearDeadline bool
}

// Create creates a new active task for the owner.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityImportant
	}
	if !models.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	task := &models.Task{
		OwnerID:     input.OwnerID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Deadline:    input.Deadline,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// List returns the owner's tasks in the requested lifecycle slice, newest
// first. An empty status defaults to active.
func (s *TaskService) List(ownerID uint64, status string) ([]models.Task, error) {
	filter := repository.TaskStatusFilter(status)
	if status == "" {
		filter = repository.StatusActive
	}
	switch filter {
	case repository.StatusActive, repository.StatusCompleted, repository.StatusDeleted:
	default:
		return nil, ErrInvalidStatusFilter
	}

	tasks, err := s.taskRepo.List(ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns a single non-deleted task owned by ownerID.
func (s *TaskService) Get(ownerID, id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindOwned(id, ownerID, false)
	if err != nil {
		return nil, s.notFoundOr(err)
	}
	return task, nil
}

// Edit updates title, description and optionally priority and deadline of a
// non-deleted task.
func (s *TaskService) Edit(ownerID, id uint64, input UpdateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	columns := map[string]interface{}{
		"title":       title,
		"description": description,
	}
	if input.Priority != nil {
		if !models.ValidPriority(*input.Priority) {
			return nil, ErrInvalidPriority
		}
		columns["priority"] = *input.Priority
	}
	if input.ClearDeadline {
		columns["deadline"] = nil
	} else if input.Deadline != nil {
		columns["deadline"] = *input.Deadline
	}

	if err := s.taskRepo.UpdateOwned(id, ownerID, false, columns); err != nil {
		return nil, s.notFoundOr(err)
	}
	return s.Get(ownerID, id)
}

// MarkComplete marks a non-deleted task as completed.
func (s *TaskService) MarkComplete(ownerID, id uint64) (*models.Task, error) {
	return s.setCompleted(ownerID, id, true)
}

// MarkIncomplete marks a non-deleted task as not completed.
func (s *TaskService) MarkIncomplete(ownerID, id uint64) (*models.Task, error) {
	return s.setCompleted(ownerID, id, false)
}

func (s *TaskService) setCompleted(ownerID, id uint64, completed bool) (*models.Task, error) {
	columns := map[string]interface{}{"is_completed": completed}
	if err := s.taskRepo.UpdateOwned(id, ownerID, false, columns); err != nil {
		return nil, s.notFoundOr(err)
	}
	return s.Get(ownerID, id)
}

// SoftDelete moves a task to the trash. The completion flag is untouched so a
// later restore returns the task to its previous list.
func (s *TaskService) SoftDelete(ownerID, id uint64) error {
	columns := map[string]interface{}{"is_deleted": true}
	if err := s.taskRepo.UpdateOwned(id, ownerID, false, columns); err != nil {
		return s.notFoundOr(err)
	}
	return nil
}

// Restore brings a trashed task back, preserving its completion flag.
func (s *TaskService) Restore(ownerID, id uint64) (*models.Task, error) {
	columns := map[string]interface{}{"is_deleted": false}
	if err := s.taskRepo.UpdateOwned(id, ownerID, true, columns); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFoundInTrash
		}
		return nil, fmt.Errorf("failed to restore task: %w", err)
	}
	return s.Get(ownerID, id)
}

// Purge permanently erases a task from any lifecycle state.
func (s *TaskService) Purge(ownerID, id uint64) error {
	if err := s.taskRepo.Purge(id, ownerID); err != nil {
		return s.notFoundOr(err)
	}
	return nil
}

func (s *TaskService) notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTaskNotFound
	}
	return fmt.Errorf("task store error: %w", err)
}
