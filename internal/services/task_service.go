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
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound  = apierrors.NotFound("Task not found")
	ErrTaskNameTaken = apierrors.Conflict("Task name already exists")
)

var taskMessages = validation.Messages{
	"name.notblank":        "Task name is empty",
	"description.notblank": "Description is empty",
	"status.required":      "Status is empty",
}

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	assignments *AssignmentManager
	nameUnique  bool
}

// NewTaskService creates a new TaskService. When nameUnique is set, no two
// live tasks may share a name.
func NewTaskService(taskRepo repository.TaskRepository, assignments *AssignmentManager, nameUnique bool) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		assignments: assignments,
		nameUnique:  nameUnique,
	}
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	Status         *models.TaskStatus `json:"status" validate:"omitnil,oneof=Pending Working Review Done Archive"`
	Name           string             `json:"name"`
	SortBy         string             `json:"sortBy" validate:"omitempty,oneof=createdAt updatedAt"`
	SortOrder      string             `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page           int                `json:"page"`
	PageSize       int                `json:"limit"`
	IncludeDeleted bool               `json:"includeDeleted"`
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
}

// UpdateTaskInput represents input for editing a task. Nil fields are left unchanged.
type UpdateTaskInput struct {
	Name        *string           `json:"name" validate:"omitnil,notblank"`
	Description *string           `json:"description" validate:"omitnil,notblank"`
	Status      models.TaskStatus `json:"status" validate:"required,oneof=Pending Working Review Done Archive"`
}

// ListTasks returns a page of tasks and the total number of matches
func (s *TaskService) ListTasks(ctx context.Context, input ListTasksInput) ([]models.Task, int64, error) {
	if err := validation.Struct(input, taskMessages); err != nil {
		return nil, 0, err
	}

	tasks, total, err := s.taskRepo.List(ctx, repository.TaskFilter{
		Status:         input.Status,
		NameContains:   input.Name,
		SortBy:         input.SortBy,
		SortOrder:      input.SortOrder,
		Page:           input.Page,
		PageSize:       input.PageSize,
		IncludeDeleted: input.IncludeDeleted,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// GetTask returns a task with its assignee
func (s *TaskService) GetTask(ctx context.Context, taskID uint64, includeDeleted bool) (*models.Task, error) {
	return s.findTask(ctx, taskID, repository.ReadOptions{IncludeDeleted: includeDeleted}, repository.PreloadAssignTo)
}

// CreateTask validates and stores a new task in Pending status
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if err := validation.Struct(input, taskMessages); err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, input.Name, 0); err != nil {
		return nil, err
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		Status:      models.TaskStatusPending,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	logger.InfoLog(ctx, "task %d created", task.ID)

	return task, nil
}

// UpdateTask edits a task after checking the status change against its stored status
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	if err := validation.Struct(input, taskMessages); err != nil {
		return nil, err
	}

	task, err := s.findTask(ctx, taskID, repository.ReadOptions{})
	if err != nil {
		return nil, err
	}

	if err := ValidateStatusTransition(task.Status, input.Status); err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != task.Name {
		if err := s.ensureNameAvailable(ctx, *input.Name, task.ID); err != nil {
			return nil, err
		}
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	task.Status = input.Status

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.findTask(ctx, task.ID, repository.ReadOptions{}, repository.PreloadAssignTo)
}

// DeleteTask soft deletes a task and returns it
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) (*models.Task, error) {
	task, err := s.findTask(ctx, taskID, repository.ReadOptions{})
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.MarkDeleted(ctx, task.ID); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	logger.InfoLog(ctx, "task %d soft deleted", task.ID)

	return s.findTask(ctx, task.ID, repository.ReadOptions{IncludeDeleted: true}, repository.PreloadAssignTo)
}

// AssignTask toggles the task's assignment to userID
func (s *TaskService) AssignTask(ctx context.Context, taskID uint64, userID *uint64) (*models.Task, error) {
	return s.assignments.SetAssignment(ctx, taskID, userID)
}

func (s *TaskService) findTask(ctx context.Context, taskID uint64, opts repository.ReadOptions, preload ...string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID, opts, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// ensureNameAvailable fails when another live task already uses name
func (s *TaskService) ensureNameAvailable(ctx context.Context, name string, exceptID uint64) error {
	if !s.nameUnique {
		return nil
	}

	existing, err := s.taskRepo.FindByName(ctx, name, repository.ReadOptions{})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check task name: %w", err)
	}
	if existing.ID != exceptID {
		return ErrTaskNameTaken
	}
	return nil
}
