package dto

import (
	"time"

	"github.com/tasky-app/tasky-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64              `json:"id"`
	OwnerID     uint64              `json:"ownerId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    models.TaskPriority `json:"priority"`
	Deadline    *time.Time          `json:"deadline"`
	IsCompleted bool                `json:"isCompleted"`
	IsDeleted   bool                `json:"isDeleted"`
	DateCreated time.Time           `json:"dateCreated"`
	DateUpdated time.Time           `json:"dateUpdated"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		OwnerID:     task.OwnerID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Deadline:    task.Deadline,
		IsCompleted: task.IsCompleted,
		IsDeleted:   task.IsDeleted,
		DateCreated: task.DateCreated,
		DateUpdated: task.DateUpdated,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
