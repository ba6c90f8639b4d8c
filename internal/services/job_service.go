package services

import (
	"encoding/json"
	"errors"

	"workhubb_backend/internal/apperrors"
	"workhubb_backend/internal/dto"
	"workhubb_backend/internal/models"
	"workhubb_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type JobService struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) *JobService {
	return &JobService{jobRepo: jobRepo, userRepo: userRepo}
}

func (s *JobService) List() ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, storageErr(err)
	}
	return s.toResponses(jobs), nil
}

func (s *JobService) GetByID(id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, storageErr(err)
	}
	return s.toResponse(job), nil
}

func (s *JobService) ListByAuthor(authorID string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByAuthor(authorID)
	if err != nil {
		return nil, storageErr(err)
	}
	return s.toResponses(jobs), nil
}

func (s *JobService) Create(req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	// A listing must be authored by an existing account.
	if _, err := s.userRepo.FindByID(req.AuthorID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrAuthorNotFound
		}
		return nil, storageErr(err)
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	job := &models.Job{
		ID:           id,
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Remote:       *req.Remote,
		Salary:       normalizeOptional(req.Salary),
		Description:  req.Description,
		Requirements: encodeRequirements(req.Requirements),
		AuthorID:     req.AuthorID,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, storageErr(err)
	}
	return s.toResponse(job), nil
}

func (s *JobService) Update(id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Remote != nil {
		updates["remote"] = *req.Remote
	}
	if req.Salary != nil {
		updates["salary"] = normalizeOptional(req.Salary)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Requirements != nil {
		updates["requirements"] = encodeRequirements(req.Requirements)
	}

	job, err := s.jobRepo.UpdatePartial(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, storageErr(err)
	}
	return s.toResponse(job), nil
}

func (s *JobService) Delete(id string) error {
	deleted, err := s.jobRepo.Delete(id)
	if err != nil {
		return storageErr(err)
	}
	if !deleted {
		return apperrors.ErrJobNotFound
	}
	return nil
}

func (s *JobService) toResponse(job *models.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Remote:       job.Remote,
		Salary:       job.Salary,
		Description:  job.Description,
		Requirements: decodeRequirements(job.Requirements),
		AuthorID:     job.AuthorID,
		CreatedAt:    job.CreatedAt,
	}
}

func (s *JobService) toResponses(jobs []models.Job) []dto.JobResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, *s.toResponse(&jobs[i]))
	}
	return responses
}

// encodeRequirements serializes the ordered list into the JSON column.
// Marshaling a []string cannot fail.
func encodeRequirements(requirements []string) datatypes.JSON {
	if requirements == nil {
		requirements = []string{}
	}
	raw, _ := json.Marshal(requirements)
	return datatypes.JSON(raw)
}

// decodeRequirements restores the list; a corrupt column yields an
// empty list rather than a failed read.
func decodeRequirements(raw datatypes.JSON) []string {
	var requirements []string
	if len(raw) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(raw, &requirements); err != nil {
		return []string{}
	}
	if requirements == nil {
		return []string{}
	}
	return requirements
}
