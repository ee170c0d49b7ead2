package models

import (
	"time"
)

type TaskPriority string

const (
	PriorityImportant  TaskPriority = "IMPORTANT"
	PriorityUrgent     TaskPriority = "URGENT"
	PriorityVeryUrgent TaskPriority = "VERY_URGENT"
)

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityImportant, PriorityUrgent, PriorityVeryUrgent:
		return true
	}
	return false
}

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	OwnerID     uint64       `gorm:"not null;index" json:"ownerId"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'IMPORTANT'" json:"priority"`
	Deadline    *time.Time   `json:"deadline"`
	IsCompleted bool         `gorm:"not null;default:false" json:"isCompleted"`
	IsDeleted   bool         `gorm:"not null;default:false;index" json:"isDeleted"`
	DateCreated time.Time    `gorm:"autoCreateTime;index" json:"dateCreated"`
	DateUpdated time.Time    `gorm:"autoUpdateTime" json:"dateUpdated"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}
