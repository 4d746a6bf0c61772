package dto

import (
	"time"

	"github.com/yukikurage/task-tracker-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64          `json:"id"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
	TasksList []string        `json:"tasksList"`
	IsDeleted bool            `json:"isDeleted"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToUserDTO converts a User model and its resolved task names to UserDTO
func ToUserDTO(user models.User, taskNames []string) UserDTO {
	if taskNames == nil {
		taskNames = []string{}
	}
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Role:      user.Role,
		TasksList: taskNames,
		IsDeleted: user.IsDeleted,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
