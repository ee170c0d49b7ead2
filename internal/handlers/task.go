package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tasky-app/tasky-api/internal/dto"
	apierrors "github.com/tasky-app/tasky-api/internal/errors"
	"github.com/tasky-app/tasky-api/internal/middleware"
	"github.com/tasky-app/tasky-api/internal/models"
	"github.com/tasky-app/tasky-api/internal/services"
)

// TaskHandler coordinates task lifecycle HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a new active task for the caller.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title       string              `json:"title" binding:"required"`
		Description string              `json:"description" binding:"required"`
		Priority    models.TaskPriority `json:"priority"`
		Deadline    *time.Time          `json:"deadline"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Validation failed", err.Error())
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Deadline:    req.Deadline,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    dto.ToTaskDTO(*task),
	})
}

// ListTasks returns the caller's tasks filtered by lifecycle status.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	status := c.DefaultQuery("status", "active")

	tasks, err := h.taskService.List(userID, status)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// GetTask returns a single non-deleted task.
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, taskID, ok := taskRequestIDs(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(userID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}

// UpdateTask edits title, description and optionally priority and deadline.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, taskID, ok := taskRequestIDs(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title         string               `json:"title" binding:"required"`
		Description   string               `json:"description" binding:"required"`
		Priority      *models.TaskPriority `json:"priority"`
		Deadline      *time.Time           `json:"deadline"`
		ClearDeadline bool                 `json:"clearDeadline"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Validation failed", err.Error())
		return
	}

	task, err := h.taskService.Edit(userID, taskID, services.UpdateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Deadline:      req.Deadline,
		ClearDeadline: req.ClearDeadline,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    dto.ToTaskDTO(*task),
	})
}

// CompleteTask marks a task as completed.
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID, taskID, ok := taskRequestIDs(c)
	if !ok {
		return
	}

	task, err := h.taskService.MarkComplete(userID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task marked as complete",
		"task":    dto.ToTaskDTO(*task),
	})
}

// IncompleteTask marks a task as not completed.
func (h *TaskHandler) IncompleteTask(c *gin.Context) {
	userID, taskID, ok := taskRequestIDs(c)
	if !ok {
		return
	}

	task, err := h.taskService.MarkIncomplete(userID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task marked as incomplete",
		"task":    dto.ToTaskDTO(*task),
	})
}

// DeleteTask moves a task to the trash.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, taskID, ok := taskRequestIDs(c)
	if !ok {
		return
	}

	if err := h.taskService.SoftDelete(userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// RestoreTask brings a trashed task back to its previous list.
func (h *TaskHandler) RestoreTask(c *gin.Context) {
	userID, taskID, ok := taskRequestIDs(c)
	if !ok {
		return
	}

	task, err := h.taskService.Restore(userID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task restored successfully",
		"task":    dto.ToTaskDTO(*task),
	})
}

// PurgeTask permanently erases a task from any lifecycle state.
func (h *TaskHandler) PurgeTask(c *gin.Context) {
	userID, taskID, ok := taskRequestIDs(c)
	if !ok {
		return
	}

	if err := h.taskService.Purge(userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task permanently deleted"})
}

func taskRequestIDs(c *gin.Context) (userID, taskID uint64, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return 0, 0, false
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return 0, 0, false
	}

	return userID, taskID, true
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrDescriptionRequired),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidStatusFilter):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFoundInTrash):
		apierrors.NotFound(c, "Task not found in trash")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	default:
		apierrors.InternalError(c, err.Error())
	}
}
