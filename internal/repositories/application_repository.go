package repositories

import (
	"errors"

	"workhubb_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this user and job")
)

// ApplicationWithUser pairs an application with its applicant; the
// user side may be nil when the account cannot be resolved.
type ApplicationWithUser struct {
	Application models.Application
	User        *models.User
}

// ApplicationWithDetails additionally resolves the job side.
type ApplicationWithDetails struct {
	Application models.Application
	User        *models.User
	Job         *models.Job
}

type ApplicationRepository interface {
	FindAll() ([]models.Application, error)
	FindByID(id string) (*models.Application, error)
	FindByUser(userID string) ([]models.Application, error)
	FindByJobWithUsers(jobID string) ([]ApplicationWithUser, error)
	FindAllWithDetails() ([]ApplicationWithDetails, error)
	Create(application *models.Application) error
	Exists(userID, jobID string) (bool, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) FindAll() ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByUser(userID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// FindByJobWithUsers resolves applicants in a second query keyed by
// user id. A missing user never hides the application row.
func (r *ApplicationRepositoryImpl) FindByJobWithUsers(jobID string) ([]ApplicationWithUser, error) {
	var applications []models.Application
	err := r.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, err
	}

	userIndex, err := r.usersByID(collectUserIDs(applications))
	if err != nil {
		return nil, err
	}

	result := make([]ApplicationWithUser, 0, len(applications))
	for _, app := range applications {
		result = append(result, ApplicationWithUser{
			Application: app,
			User:        userIndex[app.UserID],
		})
	}
	return result, nil
}

func (r *ApplicationRepositoryImpl) FindAllWithDetails() ([]ApplicationWithDetails, error) {
	var applications []models.Application
	if err := r.db.Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}

	userIndex, err := r.usersByID(collectUserIDs(applications))
	if err != nil {
		return nil, err
	}

	jobIDs := make([]string, 0, len(applications))
	for _, app := range applications {
		jobIDs = append(jobIDs, app.JobID)
	}
	var jobs []models.Job
	if len(jobIDs) > 0 {
		if err := r.db.Where("id IN ?", jobIDs).Find(&jobs).Error; err != nil {
			return nil, err
		}
	}
	jobIndex := make(map[string]*models.Job, len(jobs))
	for i := range jobs {
		jobIndex[jobs[i].ID] = &jobs[i]
	}

	result := make([]ApplicationWithDetails, 0, len(applications))
	for _, app := range applications {
		result = append(result, ApplicationWithDetails{
			Application: app,
			User:        userIndex[app.UserID],
			Job:         jobIndex[app.JobID],
		})
	}
	return result, nil
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateApplication
	}
	return err
}

// Exists is the advisory "has applied" check (limit 1). Correctness
// against concurrent double-submission comes from the unique index,
// not from this read.
func (r *ApplicationRepositoryImpl) Exists(userID, jobID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ApplicationRepositoryImpl) usersByID(ids []string) (map[string]*models.User, error) {
	index := make(map[string]*models.User, len(ids))
	if len(ids) == 0 {
		return index, nil
	}
	var users []models.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		index[users[i].ID] = &users[i]
	}
	return index, nil
}

func collectUserIDs(applications []models.Application) []string {
	ids := make([]string, 0, len(applications))
	for _, app := range applications {
		ids = append(ids, app.UserID)
	}
	return ids
}
