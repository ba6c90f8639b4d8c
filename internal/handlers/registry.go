package handlers

// AppHandlers holds every handler for route registration.
type AppHandlers struct {
	UserHandler        *UserHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	ExperienceHandler  *ExperienceHandler
	UploadHandler      *UploadHandler
	HealthHandler      *HealthHandler
}
