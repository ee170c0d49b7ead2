package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tasky-app/tasky-api/internal/constants"
	"github.com/tasky-app/tasky-api/internal/logger"
	"github.com/tasky-app/tasky-api/internal/models"
	"github.com/tasky-app/tasky-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNoFileUploaded = errors.New("no file uploaded")
	ErrNotAnImage     = errors.New("only image files are allowed")
	ErrAvatarTooLarge = errors.New("avatar exceeds the maximum size of 5MB")
)

// AssetStore is the narrow interface the profile manager needs from the
// external asset host.
type AssetStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (*UploadedAsset, error)
	Delete(ctx context.Context, publicID string) error
}

// UserService handles profile and avatar management.
type UserService struct {
	userRepo repository.UserRepository
	assets   AssetStore
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, assets AssetStore) *UserService {
	return &UserService{
		userRepo: userRepo,
		assets:   assets,
	}
}

// GetProfile returns the user's public profile.
func (s *UserService) GetProfile(userID uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateProfileInput holds the optional profile fields. Empty values are left
// untouched.
type UpdateProfileInput struct {
	FirstName    string
	LastName     string
	Username     string
	EmailAddress string
}

// UpdateProfile applies the supplied fields, guarding username and email
// uniqueness against every other user. last_profile_update is always stamped.
func (s *UserService) UpdateProfile(userID uint64, input UpdateProfileInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.EmailAddress)

	if username != "" || email != "" {
		taken, err := s.userRepo.ExistsWithUsernameOrEmail(userID, username, email)
		if err != nil {
			return nil, fmt.Errorf("failed to check uniqueness: %w", err)
		}
		if taken {
			return nil, ErrDuplicateUser
		}
	}

	columns := map[string]interface{}{}
	if v := strings.TrimSpace(input.FirstName); v != "" {
		columns["first_name"] = v
	}
	if v := strings.TrimSpace(input.LastName); v != "" {
		columns["last_name"] = v
	}
	if username != "" {
		columns["username"] = username
	}
	if email != "" {
		columns["email_address"] = email
	}

	if err := s.userRepo.UpdateFields(userID, columns); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.GetProfile(userID)
}

// UploadAvatar validates the image and hands the bytes to the asset host. A
// previously stored avatar is deleted best effort after the new upload
// succeeds; a failed cleanup only leaks the remote asset, it never fails the
// request.
func (s *UserService) UploadAvatar(ctx context.Context, userID uint64, data []byte) (*models.User, error) {
	if len(data) == 0 {
		return nil, ErrNoFileUploaded
	}
	if len(data) > constants.MaxAvatarSize {
		return nil, ErrAvatarTooLarge
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	asset, err := s.assets.Upload(ctx, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("avatar upload failed: %w", err)
	}

	if user.Avatar != "" {
		if publicID := PublicIDFromURL(user.Avatar); publicID != "" {
			if err := s.assets.Delete(ctx, publicID); err != nil {
				logger.Warn("failed to delete previous avatar",
					zap.Uint64("user_id", userID),
					zap.String("public_id", publicID),
					zap.Error(err))
			}
		}
	}

	if err := s.userRepo.UpdateFields(userID, map[string]interface{}{"avatar": asset.URL}); err != nil {
		return nil, fmt.Errorf("failed to store avatar url: %w", err)
	}

	return s.GetProfile(userID)
}

// RemoveAvatar deletes the remote asset best effort, then clears the stored
// URL regardless of the delete outcome.
func (s *UserService) RemoveAvatar(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if user.Avatar != "" {
		if publicID := PublicIDFromURL(user.Avatar); publicID != "" {
			if err := s.assets.Delete(ctx, publicID); err != nil {
				logger.Warn("failed to delete avatar asset",
					zap.Uint64("user_id", userID),
					zap.String("public_id", publicID),
					zap.Error(err))
			}
		}
	}

	if err := s.userRepo.UpdateFields(userID, map[string]interface{}{"avatar": ""}); err != nil {
		return nil, fmt.Errorf("failed to clear avatar url: %w", err)
	}

	return s.GetProfile(userID)
}
