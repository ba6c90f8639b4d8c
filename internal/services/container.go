package services

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	UserService        *UserService
	JobService         *JobService
	ApplicationService *ApplicationService
	ExperienceService  *ExperienceService
	UploadService      *UploadService
}
