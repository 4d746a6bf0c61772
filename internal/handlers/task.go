package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker-api/internal/constants"
	"github.com/yukikurage/task-tracker-api/internal/dto"
	"github.com/yukikurage/task-tracker-api/internal/middleware"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/services"
	"github.com/yukikurage/task-tracker-api/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns a page of tasks
// Filters: status, name (substring); sorting: sortBy, sortOrder
func (h *TaskHandler) ListTasks(c *gin.Context) {
	includeDeleted, err := queryBool(c, "includeDeleted")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	params := utils.GetPaginationParams(c)
	input := services.ListTasksInput{
		Name:           c.Query("name"),
		SortBy:         c.DefaultQuery("sortBy", constants.SortByCreatedAt),
		SortOrder:      c.DefaultQuery("sortOrder", constants.SortOrderAsc),
		Page:           params.Page,
		PageSize:       params.Limit,
		IncludeDeleted: includeDeleted,
	}
	if status := c.Query("status"); status != "" {
		s := models.TaskStatus(status)
		input.Status = &s
	}

	tasks, total, err := h.taskService.ListTasks(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondList(c, "Tasks retrieved", dto.ToTaskDTOs(tasks), utils.PaginationResponse{
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
	})
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, _ := middleware.GetResourceID(c)

	includeDeleted, err := queryBool(c, "includeDeleted")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID, includeDeleted)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Task retrieved", dto.ToTaskDTO(*task))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req services.CreateTaskInput
	if err := bindCreateBody(c, &req, "Create Task Error"); err != nil {
		utils.RespondError(c, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Task created", dto.ToTaskDTO(*task))
}

// UpdateTask edits name, description and status
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, _ := middleware.GetResourceID(c)

	var req services.UpdateTaskInput
	if err := bindBody(c, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Task updated", dto.ToTaskDTO(*task))
}

// AssignTask toggles the task's assignee
func (h *TaskHandler) AssignTask(c *gin.Context) {
	taskID, _ := middleware.GetResourceID(c)

	var req struct {
		UserID *uint64 `json:"userId"`
	}
	if err := bindBody(c, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	task, err := h.taskService.AssignTask(c.Request.Context(), taskID, req.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Task assignment updated", dto.ToTaskDTO(*task))
}

// DeleteTask soft deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, _ := middleware.GetResourceID(c)

	task, err := h.taskService.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Task deleted", dto.ToTaskDTO(*task))
}
