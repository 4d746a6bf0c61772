package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/yukikurage/task-tracker-api/internal/logger"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssignmentManager keeps task.AssignToID and user.TasksList in step
type AssignmentManager struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewAssignmentManager creates a new AssignmentManager
func NewAssignmentManager(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *AssignmentManager {
	return &AssignmentManager{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// SetAssignment toggles the assignment of a task to a user.
//
// Assigning the user the task already points at unassigns it. Assigning a
// different user overwrites assignTo but leaves the previous user's list
// untouched; callers that want a clean handover unassign first. A nil userID
// unassigns the task from whoever holds it and is a no-op on an unassigned task.
func (m *AssignmentManager) SetAssignment(ctx context.Context, taskID uint64, userID *uint64) (*models.Task, error) {
	task, err := m.taskRepo.FindByID(ctx, taskID, repository.ReadOptions{})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	logger.DebugLog(ctx, "set assignment: task=%d current=%s requested=%s", task.ID, formatID(task.AssignToID), formatID(userID))

	var user *models.User
	if userID == nil {
		if task.AssignToID == nil {
			return m.load(ctx, task.ID)
		}
		// The holder may have been soft deleted since; its list still needs the entry removed
		user, err = m.userRepo.FindByID(ctx, *task.AssignToID, repository.ReadOptions{IncludeDeleted: true})
		if err != nil {
			return nil, fmt.Errorf("failed to find assignee: %w", err)
		}
		unassign(task, user)
	} else {
		user, err = m.userRepo.FindByID(ctx, *userID, repository.ReadOptions{})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to find user: %w", err)
		}

		if task.IsAssignedTo(user.ID) {
			unassign(task, user)
		} else {
			if task.AssignToID != nil {
				logger.WarnLog(ctx, "task %d reassigned from user %d to user %d without unassign", task.ID, *task.AssignToID, user.ID)
			}
			assign(task, user)
		}
	}

	if err := m.taskRepo.SaveAssignment(ctx, task, user); err != nil {
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	if task.AssignToID != nil {
		logger.InfoLog(ctx, "task %d assigned to user %d", task.ID, *task.AssignToID)
	} else {
		logger.InfoLog(ctx, "task %d unassigned from user %d", task.ID, user.ID)
	}

	return m.load(ctx, task.ID)
}

func (m *AssignmentManager) load(ctx context.Context, taskID uint64) (*models.Task, error) {
	task, err := m.taskRepo.FindByID(ctx, taskID, repository.ReadOptions{}, repository.PreloadAssignTo)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return task, nil
}

func formatID(id *uint64) string {
	if id == nil {
		return "none"
	}
	return strconv.FormatUint(*id, 10)
}

func assign(task *models.Task, user *models.User) {
	id := user.ID
	task.AssignToID = &id
	task.AssignTo = user
	user.TasksList = appendTaskID(user.TasksList, task.ID)
}

func unassign(task *models.Task, user *models.User) {
	task.AssignToID = nil
	task.AssignTo = nil
	user.TasksList = removeTaskID(user.TasksList, task.ID)
}

func appendTaskID(list datatypes.JSONSlice[uint64], taskID uint64) datatypes.JSONSlice[uint64] {
	out := make(datatypes.JSONSlice[uint64], 0, len(list)+1)
	out = append(out, list...)
	return append(out, taskID)
}

// removeTaskID drops the first occurrence of taskID, if any
func removeTaskID(list datatypes.JSONSlice[uint64], taskID uint64) datatypes.JSONSlice[uint64] {
	out := make(datatypes.JSONSlice[uint64], 0, len(list))
	removed := false
	for _, id := range list {
		if id == taskID && !removed {
			removed = true
			continue
		}
		out = append(out, id)
	}
	return out
}
