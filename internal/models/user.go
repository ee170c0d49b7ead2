package models

import (
	"time"
)

type User struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	FirstName         string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName          string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Username          string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	EmailAddress      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"emailAddress"`
	PasswordHash      string    `gorm:"type:varchar(255);not null" json:"-"`
	Avatar            string    `gorm:"type:varchar(512);default:''" json:"avatar"`
	DateJoined        time.Time `gorm:"autoCreateTime" json:"dateJoined"`
	LastProfileUpdate time.Time `gorm:"autoCreateTime" json:"lastProfileUpdate"`
	IsDeleted         bool      `gorm:"not null;default:false" json:"-"`

	// Relations
	Tasks []Task `gorm:"foreignKey:OwnerID" json:"-"`
}
