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

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns a page of users, sorted by name unless sortBy says otherwise
func (h *UserHandler) ListUsers(c *gin.Context) {
	includeDeleted, err := queryBool(c, "includeDeleted")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	params := utils.GetPaginationParams(c)
	input := services.ListUsersInput{
		Name:           c.Query("name"),
		SortBy:         c.DefaultQuery("sortBy", constants.SortByName),
		SortOrder:      c.DefaultQuery("sortOrder", constants.SortOrderAsc),
		Page:           params.Page,
		PageSize:       params.Limit,
		IncludeDeleted: includeDeleted,
	}
	if role := c.Query("role"); role != "" {
		r := models.UserRole(role)
		input.Role = &r
	}

	users, total, err := h.userService.ListUsers(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	items := make([]dto.UserDTO, len(users))
	for i, u := range users {
		items[i] = dto.ToUserDTO(u.User, u.TaskNames)
	}

	utils.RespondList(c, "Users retrieved", items, utils.PaginationResponse{
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
	})
}

// GetUser returns a specific user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, _ := middleware.GetResourceID(c)

	includeDeleted, err := queryBool(c, "includeDeleted")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID, includeDeleted)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "User retrieved", dto.ToUserDTO(user.User, user.TaskNames))
}

// CreateUser creates a new user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserInput
	if err := bindCreateBody(c, &req, "Create User Error"); err != nil {
		utils.RespondError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "User created", dto.ToUserDTO(user.User, user.TaskNames))
}

// UpdateUser edits name and role
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, _ := middleware.GetResourceID(c)

	var req services.UpdateUserInput
	if err := bindBody(c, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "User updated", dto.ToUserDTO(user.User, user.TaskNames))
}

// DeleteUser soft deletes a user
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, _ := middleware.GetResourceID(c)

	user, err := h.userService.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "User deleted", dto.ToUserDTO(user.User, user.TaskNames))
}
