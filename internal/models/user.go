package models

import (
	"time"

	"gorm.io/datatypes"
)

type UserRole string

const (
	RoleEmployee UserRole = "Employee"
	RoleManager  UserRole = "Manager"
)

// IsValid reports whether r is a known role
func (r UserRole) IsValid() bool {
	return r == RoleEmployee || r == RoleManager
}

type User struct {
	ID        uint64                      `gorm:"primarykey" json:"id"`
	Name      string                      `gorm:"type:varchar(255);not null" json:"name"`
	Role      UserRole                    `gorm:"type:varchar(20);not null;default:'Employee'" json:"role"`
	TasksList datatypes.JSONSlice[uint64] `json:"tasksList"`
	IsDeleted bool                        `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}
