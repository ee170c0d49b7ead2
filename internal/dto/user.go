package dto

import (
	"time"

	"github.com/tasky-app/tasky-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash never appears
// on any read path.
type UserDTO struct {
	ID                uint64    `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Username          string    `json:"username"`
	EmailAddress      string    `json:"emailAddress"`
	Avatar            string    `json:"avatar"`
	DateJoined        time.Time `json:"dateJoined"`
	LastProfileUpdate time.Time `json:"lastProfileUpdate"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:                user.ID,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Username:          user.Username,
		EmailAddress:      user.EmailAddress,
		Avatar:            user.Avatar,
		DateJoined:        user.DateJoined,
		LastProfileUpdate: user.LastProfileUpdate,
	}
}
