package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tasky-app/tasky-api/internal/constants"
	"github.com/tasky-app/tasky-api/internal/dto"
	apierrors "github.com/tasky-app/tasky-api/internal/errors"
	"github.com/tasky-app/tasky-api/internal/middleware"
	"github.com/tasky-app/tasky-api/internal/services"
)

// UserHandler coordinates profile and avatar HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUser returns the caller's profile.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserDTO(*user)})
}

// UpdateProfile applies the supplied profile fields.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateProfileRequest struct {
		FirstName    string `json:"firstName"`
		LastName     string `json:"lastName"`
		Username     string `json:"username"`
		EmailAddress string `json:"emailAddress" binding:"omitempty,email"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Validation failed", err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(userID, services.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		EmailAddress: req.EmailAddress,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    dto.ToUserDTO(*user),
	})
}

// UploadAvatar replaces the caller's avatar with the uploaded image.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		apierrors.BadRequest(c, "No file uploaded")
		return
	}
	if fileHeader.Size > constants.MaxAvatarSize {
		apierrors.BadRequest(c, "Avatar exceeds the maximum size of 5MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apierrors.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, constants.MaxAvatarSize+1))
	if err != nil {
		apierrors.InternalError(c, "Failed to read uploaded file")
		return
	}
	if len(data) > constants.MaxAvatarSize {
		apierrors.BadRequest(c, "Avatar exceeds the maximum size of 5MB")
		return
	}

	user, err := h.userService.UploadAvatar(c.Request.Context(), userID, data)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Avatar uploaded successfully",
		"user":    dto.ToUserDTO(*user),
	})
}

// RemoveAvatar clears the caller's avatar.
func (h *UserHandler) RemoveAvatar(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.userService.RemoveAvatar(c.Request.Context(), userID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Avatar removed successfully",
		"user":    dto.ToUserDTO(*user),
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoFileUploaded),
		errors.Is(err, services.ErrNotAnImage),
		errors.Is(err, services.ErrAvatarTooLarge):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicateUser):
		apierrors.BadRequest(c, "Username or email already exists")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		apierrors.InternalError(c, err.Error())
	}
}
