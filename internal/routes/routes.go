package routes

import (
	"workhubb_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the WorkHubb API surface. Static segments
// (email, author, check, ...) take priority over the :id wildcards.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", h.HealthHandler.Health)

	api := r.Group("/api")

	users := api.Group("/users")
	{
		users.GET("", h.UserHandler.List)
		users.GET("/:id", h.UserHandler.GetByID)
		users.GET("/email/:email", h.UserHandler.GetByEmail)
		users.POST("", h.UserHandler.Create)
		users.PUT("/:id", h.UserHandler.Update)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.JobHandler.List)
		jobs.GET("/:id", h.JobHandler.GetByID)
		jobs.GET("/author/:authorId", h.JobHandler.ListByAuthor)
		jobs.POST("", h.JobHandler.Create)
		jobs.PUT("/:id", h.JobHandler.Update)
		jobs.DELETE("/:id", h.JobHandler.Delete)
	}

	applications := api.Group("/applications")
	{
		applications.GET("", h.ApplicationHandler.List)
		applications.GET("/details", h.ApplicationHandler.ListWithDetails)
		applications.GET("/check", h.ApplicationHandler.Check)
		applications.GET("/user/:userId", h.ApplicationHandler.ListByUser)
		applications.GET("/job/:jobId", h.ApplicationHandler.ListByJob)
		applications.POST("", h.ApplicationHandler.Create)
	}

	experiences := api.Group("/experiences")
	{
		experiences.GET("", h.ExperienceHandler.List)
		experiences.GET("/:id", h.ExperienceHandler.GetByID)
		experiences.GET("/user/:userId", h.ExperienceHandler.ListByUser)
		experiences.POST("", h.ExperienceHandler.Create)
		experiences.PUT("/:id", h.ExperienceHandler.Update)
		experiences.DELETE("/:id", h.ExperienceHandler.Delete)
	}

	api.POST("/upload", h.UploadHandler.Upload)
}
