package http

import (
	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, todoHandler *handlers.TodoHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	owned := api.Group("")
	owned.Use(middleware.OwnerMiddleware())
	{
		owned.GET("/todos", todoHandler.ListTodos)
		owned.POST("/todos", todoHandler.CreateTodo)
		owned.GET("/todos/:id", todoHandler.GetTodo)
		owned.PATCH("/todos/:id", todoHandler.UpdateTodo)
		owned.POST("/todos/:id/toggle", todoHandler.ToggleTodoCompletion)
		owned.DELETE("/todos/:id", todoHandler.DeleteTodo)
		owned.GET("/stats", todoHandler.GetStatistics)
	}
}
