package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "Pending"
	TaskStatusWorking TaskStatus = "Working"
	TaskStatusReview  TaskStatus = "Review"
	TaskStatusDone    TaskStatus = "Done"
	TaskStatusArchive TaskStatus = "Archive"
)

// TaskStatuses lists every status in lifecycle order
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusWorking,
	TaskStatusReview,
	TaskStatusDone,
	TaskStatusArchive,
}

// IsValid reports whether s is one of the known statuses
func (s TaskStatus) IsValid() bool {
	for _, status := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s restricts further transitions
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusDone || s == TaskStatusArchive
}

// CanTransitionTo reports whether a task in status s may move to next.
// Done may only move to Archive, and Archive only accepts Archive again.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	if !next.IsValid() {
		return false
	}

	if s.IsTerminal() {
		return next == TaskStatusArchive
	}
	return true
}

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	AssignToID  *uint64    `json:"assignToId"`
	IsDeleted   bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	AssignTo *User `gorm:"foreignKey:AssignToID" json:"assignTo,omitempty"`
}

// IsAssignedTo reports whether the task currently points at userID
func (t *Task) IsAssignedTo(userID uint64) bool {
	return t.AssignToID != nil && *t.AssignToID == userID
}
