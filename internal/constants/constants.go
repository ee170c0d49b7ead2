package constants

import "time"

const (
	// ContextKeyUserID is the gin context key holding the authenticated user ID.
	ContextKeyUserID = "user_id"

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 6

	// BcryptCost is the cost factor used when hashing passwords.
	BcryptCost = 12

	// TokenLifetime is how long an issued bearer token stays valid.
	TokenLifetime = 7 * 24 * time.Hour

	// MaxAvatarSize is the largest accepted avatar upload in bytes (5MB).
	MaxAvatarSize = 5 * 1024 * 1024
)
