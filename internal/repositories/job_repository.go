package repositories

import (
	"errors"

	"workhubb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindAll() ([]models.Job, error)
	FindByID(id string) (*models.Job, error)
	FindByAuthor(authorID string) ([]models.Job, error)
	Create(job *models.Job) error
	UpdatePartial(id string, updates map[string]interface{}) (*models.Job, error)
	Delete(id string) (bool, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByAuthor(authorID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("author_id = ?", authorID).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) UpdatePartial(id string, updates map[string]interface{}) (*models.Job, error) {
	existing, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return existing, nil
	}

	if err := r.db.Model(&models.Job{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete reports true iff a row was removed.
func (r *JobRepositoryImpl) Delete(id string) (bool, error) {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
