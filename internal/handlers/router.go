package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker-api/internal/logger"
	"github.com/yukikurage/task-tracker-api/internal/middleware"
	"github.com/yukikurage/task-tracker-api/internal/services"
)

// SetupRouter builds the gin engine with every API route
func SetupRouter(taskService *services.TaskService, userService *services.UserService) *gin.Engine {
	r := gin.New()
	r.Use(logger.Middleware(), gin.Recovery())

	taskHandler := NewTaskHandler(taskService)
	userHandler := NewUserHandler(userService)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Task Tracker API"})
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task Tracker API is running",
		})
	})

	api := r.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", middleware.RequireResourceID("task"), taskHandler.GetTask)
			tasks.PUT("/:id", middleware.RequireResourceID("task"), taskHandler.UpdateTask)
			tasks.DELETE("/:id", middleware.RequireResourceID("task"), taskHandler.DeleteTask)
			tasks.PUT("/:id/assign", middleware.RequireResourceID("task"), taskHandler.AssignTask)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", middleware.RequireResourceID("user"), userHandler.GetUser)
			users.PUT("/:id", middleware.RequireResourceID("user"), userHandler.UpdateUser)
			users.DELETE("/:id", middleware.RequireResourceID("user"), userHandler.DeleteUser)
		}
	}

	return r
}
