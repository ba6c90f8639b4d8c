package services

import (
	"errors"

	"workhubb_backend/internal/apperrors"
	"workhubb_backend/internal/dto"
	"workhubb_backend/internal/models"
	"workhubb_backend/internal/repositories"

	"github.com/google/uuid"
)

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobService      *JobService
}

func NewApplicationService(applicationRepo repositories.ApplicationRepository, jobService *JobService) *ApplicationService {
	return &ApplicationService{applicationRepo: applicationRepo, jobService: jobService}
}

func (s *ApplicationService) List() ([]models.Application, error) {
	applications, err := s.applicationRepo.FindAll()
	if err != nil {
		return nil, storageErr(err)
	}
	return applications, nil
}

func (s *ApplicationService) GetByID(id string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, storageErr(err)
	}
	return application, nil
}

func (s *ApplicationService) ListByUser(userID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindByUser(userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return applications, nil
}

func (s *ApplicationService) ListByJob(jobID string) ([]dto.JobApplicant, error) {
	rows, err := s.applicationRepo.FindByJobWithUsers(jobID)
	if err != nil {
		return nil, storageErr(err)
	}

	applicants := make([]dto.JobApplicant, 0, len(rows))
	for _, row := range rows {
		applicants = append(applicants, dto.JobApplicant{
			Application: row.Application,
			User:        row.User,
		})
	}
	return applicants, nil
}

func (s *ApplicationService) ListWithDetails() ([]dto.ApplicationDetails, error) {
	rows, err := s.applicationRepo.FindAllWithDetails()
	if err != nil {
		return nil, storageErr(err)
	}

	details := make([]dto.ApplicationDetails, 0, len(rows))
	for _, row := range rows {
		var job *dto.JobResponse
		if row.Job != nil {
			job = s.jobService.toResponse(row.Job)
		}
		details = append(details, dto.ApplicationDetails{
			Application: row.Application,
			User:        row.User,
			Job:         job,
		})
	}
	return details, nil
}

// Create inserts the application; a second submission for the same
// (user, job) pair hits the unique index and comes back as a 409,
// regardless of what any earlier HasApplied check said.
func (s *ApplicationService) Create(req *dto.CreateApplicationRequest) (*models.Application, error) {
	application := &models.Application{
		ID:      uuid.NewString(),
		UserID:  req.UserID,
		JobID:   req.JobID,
		Message: req.Message,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, storageErr(err)
	}
	return application, nil
}

func (s *ApplicationService) HasApplied(userID, jobID string) (bool, error) {
	applied, err := s.applicationRepo.Exists(userID, jobID)
	if err != nil {
		return false, storageErr(err)
	}
	return applied, nil
}
