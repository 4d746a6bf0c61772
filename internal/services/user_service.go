package services

import (
	"context"
	"errors"
	"fmt"

	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/logger"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"github.com/yukikurage/task-tracker-api/internal/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrUserNotFound = apierrors.NotFound("User not found")

const msgRoleEmpty = "Role is empty"

var userMessages = validation.Messages{
	"name.notblank": "Name is empty",
}

// UserService handles user business logic
type UserService struct {
	userRepo     repository.UserRepository
	taskRepo     repository.TaskRepository
	roleRequired bool
}

// NewUserService creates a new UserService. When roleRequired is unset a
// missing role defaults to Employee.
func NewUserService(userRepo repository.UserRepository, taskRepo repository.TaskRepository, roleRequired bool) *UserService {
	return &UserService{
		userRepo:     userRepo,
		taskRepo:     taskRepo,
		roleRequired: roleRequired,
	}
}

// UserWithTasks is a user together with the names of its live assigned tasks,
// in list order
type UserWithTasks struct {
	models.User
	TaskNames []string
}

// ListUsersInput represents filters for listing users
type ListUsersInput struct {
	Role           *models.UserRole `json:"role" validate:"omitnil,oneof=Employee Manager"`
	Name           string           `json:"name"`
	SortBy         string           `json:"sortBy" validate:"omitempty,oneof=name createdAt updatedAt"`
	SortOrder      string           `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page           int              `json:"page"`
	PageSize       int              `json:"limit"`
	IncludeDeleted bool             `json:"includeDeleted"`
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Name string          `json:"name" validate:"notblank"`
	Role models.UserRole `json:"role" validate:"omitempty,oneof=Employee Manager"`
}

// UpdateUserInput represents input for editing a user. Nil fields are left unchanged.
type UpdateUserInput struct {
	Name *string          `json:"name" validate:"omitnil,notblank"`
	Role *models.UserRole `json:"role" validate:"omitnil,oneof=Employee Manager"`
}

// ListUsers returns a page of users and the total number of matches
func (s *UserService) ListUsers(ctx context.Context, input ListUsersInput) ([]UserWithTasks, int64, error) {
	if err := validation.Struct(input, userMessages); err != nil {
		return nil, 0, err
	}

	users, total, err := s.userRepo.List(ctx, repository.UserFilter{
		Role:           input.Role,
		NameContains:   input.Name,
		SortBy:         input.SortBy,
		SortOrder:      input.SortOrder,
		Page:           input.Page,
		PageSize:       input.PageSize,
		IncludeDeleted: input.IncludeDeleted,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	result, err := s.withTaskNames(ctx, users...)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// GetUser returns a user with its assigned task names
func (s *UserService) GetUser(ctx context.Context, userID uint64, includeDeleted bool) (*UserWithTasks, error) {
	user, err := s.findUser(ctx, userID, repository.ReadOptions{IncludeDeleted: includeDeleted})
	if err != nil {
		return nil, err
	}
	return s.single(ctx, user)
}

// CreateUser validates and stores a new user
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*UserWithTasks, error) {
	fields, err := validation.Collect(input, userMessages)
	if err != nil {
		return nil, err
	}
	if input.Role == "" && s.roleRequired {
		fields = append(fields, apierrors.FieldError{Field: "role", Message: msgRoleEmpty})
	}
	if len(fields) > 0 {
		return nil, apierrors.Validation("", fields...)
	}

	role := input.Role
	if role == "" {
		role = models.RoleEmployee
	}

	user := &models.User{
		Name:      input.Name,
		Role:      role,
		TasksList: datatypes.JSONSlice[uint64]{},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	logger.InfoLog(ctx, "user %d created", user.ID)

	return &UserWithTasks{User: *user, TaskNames: []string{}}, nil
}

// UpdateUser edits a user's name and role
func (s *UserService) UpdateUser(ctx context.Context, userID uint64, input UpdateUserInput) (*UserWithTasks, error) {
	if err := validation.Struct(input, userMessages); err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, userID, repository.ReadOptions{})
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.single(ctx, user)
}

// DeleteUser soft deletes a user. Tasks assigned to the user keep their assignTo.
func (s *UserService) DeleteUser(ctx context.Context, userID uint64) (*UserWithTasks, error) {
	user, err := s.findUser(ctx, userID, repository.ReadOptions{})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.MarkDeleted(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	logger.InfoLog(ctx, "user %d soft deleted", user.ID)
	user.IsDeleted = true

	return s.single(ctx, user)
}

func (s *UserService) findUser(ctx context.Context, userID uint64, opts repository.ReadOptions) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID, opts)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *UserService) single(ctx context.Context, user *models.User) (*UserWithTasks, error) {
	result, err := s.withTaskNames(ctx, *user)
	if err != nil {
		return nil, err
	}
	return &result[0], nil
}

// withTaskNames resolves every user's tasks list to live task names with one query
func (s *UserService) withTaskNames(ctx context.Context, users ...models.User) ([]UserWithTasks, error) {
	var ids []uint64
	seen := make(map[uint64]bool)
	for _, u := range users {
		for _, id := range u.TasksList {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	tasks, err := s.taskRepo.FindByIDs(ctx, ids, repository.ReadOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tasks list: %w", err)
	}
	names := make(map[uint64]string, len(tasks))
	for _, t := range tasks {
		names[t.ID] = t.Name
	}

	result := make([]UserWithTasks, len(users))
	for i, u := range users {
		taskNames := make([]string, 0, len(u.TasksList))
		for _, id := range u.TasksList {
			if name, ok := names[id]; ok {
				taskNames = append(taskNames, name)
			}
		}
		result[i] = UserWithTasks{User: u, TaskNames: taskNames}
	}
	return result, nil
}
