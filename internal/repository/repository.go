package repository

import (
	"context"

	"github.com/yukikurage/task-tracker-api/internal/models"
)

// ReadOptions controls which rows a read may return. The zero value only
// returns live (not soft-deleted) rows.
type ReadOptions struct {
	IncludeDeleted bool
}

// Relations that can be preloaded on a task
const (
	PreloadAssignTo = "AssignTo"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(ctx context.Context, id uint64, opts ReadOptions, preload ...string) (*models.Task, error)

	// FindByName finds a task by exact name
	FindByName(ctx context.Context, name string, opts ReadOptions) (*models.Task, error)

	// FindByIDs returns the tasks among ids, in no particular order
	FindByIDs(ctx context.Context, ids []uint64, opts ReadOptions) ([]models.Task, error)

	// List retrieves tasks with filtering, sorting and pagination
	List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error)

	// Update writes the editable columns (name, description, status)
	Update(ctx context.Context, task *models.Task) error

	// MarkDeleted soft deletes a task
	MarkDeleted(ctx context.Context, id uint64) error

	// SaveAssignment writes task.AssignToID and user.TasksList in one transaction
	SaveAssignment(ctx context.Context, task *models.Task, user *models.User) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	Status         *models.TaskStatus
	NameContains   string
	SortBy         string
	SortOrder      string
	Page           int
	PageSize       int
	IncludeDeleted bool
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64, opts ReadOptions) (*models.User, error)

	// List retrieves users with filtering, sorting and pagination
	List(ctx context.Context, filter UserFilter) ([]models.User, int64, error)

	// Update writes the editable columns (name, role)
	Update(ctx context.Context, user *models.User) error

	// MarkDeleted soft deletes a user
	MarkDeleted(ctx context.Context, id uint64) error
}

// UserFilter holds filtering options for listing users
type UserFilter struct {
	Role           *models.UserRole
	NameContains   string
	SortBy         string
	SortOrder      string
	Page           int
	PageSize       int
	IncludeDeleted bool
}
