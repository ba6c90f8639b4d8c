package services

import (
	"errors"

	"workhubb_backend/internal/apperrors"
	"workhubb_backend/internal/dto"
	"workhubb_backend/internal/models"
	"workhubb_backend/internal/repositories"

	"github.com/google/uuid"
)

type ExperienceService struct {
	experienceRepo repositories.ExperienceRepository
}

func NewExperienceService(experienceRepo repositories.ExperienceRepository) *ExperienceService {
	return &ExperienceService{experienceRepo: experienceRepo}
}

func (s *ExperienceService) List() ([]models.Experience, error) {
	experiences, err := s.experienceRepo.FindAll()
	if err != nil {
		return nil, storageErr(err)
	}
	return experiences, nil
}

func (s *ExperienceService) GetByID(id string) (*models.Experience, error) {
	experience, err := s.experienceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, storageErr(err)
	}
	return experience, nil
}

func (s *ExperienceService) ListByUser(userID string) ([]models.Experience, error) {
	experiences, err := s.experienceRepo.FindByUser(userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return experiences, nil
}

func (s *ExperienceService) Create(req *dto.CreateExperienceRequest) (*models.Experience, error) {
	experience := &models.Experience{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    normalizeOptional(req.Location),
		StartDate:   req.StartDate,
		EndDate:     normalizeOptional(req.EndDate),
		Current:     req.Current,
		Description: normalizeOptional(req.Description),
	}

	// An ongoing position has no end date, whatever the form sent.
	if experience.Current {
		experience.EndDate = nil
	}

	if err := s.experienceRepo.Create(experience); err != nil {
		return nil, storageErr(err)
	}
	return experience, nil
}

func (s *ExperienceService) Update(id string, req *dto.UpdateExperienceRequest) (*models.Experience, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Location != nil {
		updates["location"] = normalizeOptional(req.Location)
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = normalizeOptional(req.EndDate)
	}
	if req.Current != nil {
		updates["current"] = *req.Current
		if *req.Current {
			updates["end_date"] = nil
		}
	}

	experience, err := s.experienceRepo.UpdatePartial(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, storageErr(err)
	}
	return experience, nil
}

func (s *ExperienceService) Delete(id string) error {
	deleted, err := s.experienceRepo.Delete(id)
	if err != nil {
		return storageErr(err)
	}
	if !deleted {
		return apperrors.ErrExperienceNotFound
	}
	return nil
}
