package repositories

import (
	"errors"

	"workhubb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrExperienceNotFound = errors.New("experience not found")

type ExperienceRepository interface {
	FindAll() ([]models.Experience, error)
	FindByID(id string) (*models.Experience, error)
	FindByUser(userID string) ([]models.Experience, error)
	Create(experience *models.Experience) error
	UpdatePartial(id string, updates map[string]interface{}) (*models.Experience, error)
	Delete(id string) (bool, error)
}

type ExperienceRepositoryImpl struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &ExperienceRepositoryImpl{db: db}
}

func (r *ExperienceRepositoryImpl) FindAll() ([]models.Experience, error) {
	var experiences []models.Experience
	if err := r.db.Order("created_at DESC").Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

func (r *ExperienceRepositoryImpl) FindByID(id string) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.First(&experience, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return &experience, nil
}

// FindByUser returns entries newest-first by start date, ongoing roles
// first, matching how a profile renders a work history.
func (r *ExperienceRepositoryImpl) FindByUser(userID string) ([]models.Experience, error) {
	var experiences []models.Experience
	err := r.db.Where("user_id = ?", userID).
		Order("current DESC").
		Order("start_date DESC").
		Find(&experiences).Error
	if err != nil {
		return nil, err
	}
	return experiences, nil
}

func (r *ExperienceRepositoryImpl) Create(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

func (r *ExperienceRepositoryImpl) UpdatePartial(id string, updates map[string]interface{}) (*models.Experience, error) {
	existing, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return existing, nil
	}

	if err := r.db.Model(&models.Experience{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ExperienceRepositoryImpl) Delete(id string) (bool, error) {
	result := r.db.Delete(&models.Experience{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
