package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/taskhive/backend/api/handler"
)

type Handlers struct {
	Task    *apiHandler.TaskHandler
	Project *apiHandler.ProjectHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Task routes
	r.POST("/api/tasks", handlers.Task.CreateTask)
	r.GET("/api/tasks", handlers.Task.GetTasks)
	r.GET("/api/tasks/search", handlers.Task.SearchTasks)
	r.GET("/api/tasks/{id}", handlers.Task.GetTask)
	r.PUT("/api/tasks/{id}", handlers.Task.UpdateTask)
	r.DELETE("/api/tasks/{id}", handlers.Task.DeleteTask)

	// Project routes
	r.POST("/api/projects", handlers.Project.CreateProject)
	r.GET("/api/projects", handlers.Project.GetProjects)
	r.GET("/api/projects/search", handlers.Project.SearchProjects)
	r.GET("/api/projects/{id}", handlers.Project.GetProject)
	r.PUT("/api/projects/{id}", handlers.Project.UpdateProject)
	r.DELETE("/api/projects/{id}", handlers.Project.DeleteProject)

	// Task assignment
	r.POST("/api/projects/{projectId}/tasks/{taskId}", handlers.Project.AssignTask)
	r.DELETE("/api/projects/{projectId}/tasks/{taskId}", handlers.Project.UnassignTask)

	return r
}
