package http

import (
	"timed/internal/adapter/http/handlers"
	"timed/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, planHandler *handlers.PlanHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	plans := api.Group("/plans")
	plans.Use(middleware.IdentityMiddleware())
	{
		plans.POST("", planHandler.CreatePlan)
		plans.GET("", planHandler.ListPlans)
		plans.GET("/date/:date", planHandler.GetPlanByDate)
		plans.GET("/:planID/stats", planHandler.GetPlanStats)
		plans.POST("/:planID/tasks", planHandler.AddTask)
		plans.PUT("/:planID/tasks/:taskID", planHandler.UpdateTask)
		plans.PUT("/:planID/tasks/:taskID/complete", planHandler.CompleteTask)
		plans.DELETE("/:planID/tasks/:taskID", planHandler.DeleteTask)
		plans.DELETE("/:planID", planHandler.DeletePlan)
	}
}
