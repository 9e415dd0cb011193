package http

import (
	"github.com/gin-gonic/gin"

	"github.com/YC815/entropy-backend/internal/adapter/http/handlers"
	"github.com/YC815/entropy-backend/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	dashboardHandler *handlers.DashboardHandler,
	intakeHandler *handlers.IntakeHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks", taskHandler.ListTasks)
		api.PATCH("/tasks/:id", taskHandler.UpdateTask)
		api.POST("/tasks/:id/complete", taskHandler.CompleteTask)

		api.GET("/dashboard", dashboardHandler.GetDashboard)

		if intakeHandler != nil {
			api.POST("/intake/audio", intakeHandler.ProcessAudio)
		}
	}
}
