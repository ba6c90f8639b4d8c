package services

import (
	"errors"
	"strings"

	"workhubb_backend/internal/apperrors"
	"workhubb_backend/internal/dto"
	"workhubb_backend/internal/models"
	"workhubb_backend/internal/repositories"
)

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, storageErr(err)
	}
	return users, nil
}

func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storageErr(err)
	}
	return user, nil
}

// GetByEmail treats absence as a 404 and a backend failure as a 503.
// The registration flow reads the 404 as "email available", so the two
// outcomes must never collapse into each other.
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(normalized)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storageErr(err)
	}
	return user, nil
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	userType := models.UserType(req.Type)
	if !userType.Valid() {
		return nil, apperrors.ErrInvalidUserType
	}

	user := &models.User{
		ID:           req.ID,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Type:         userType,
		Bio:          normalizeOptional(req.Bio),
		Stack:        normalizeOptional(req.Stack),
		Github:       normalizeOptional(req.Github),
		Linkedin:     normalizeOptional(req.Linkedin),
		Company:      normalizeOptional(req.Company),
		ProfilePhoto: normalizeOptional(req.ProfilePhoto),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyTaken) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if errors.Is(err, repositories.ErrUserIDTaken) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, storageErr(err)
	}
	return user, nil
}

// Update applies only the supplied fields. Email and type have no
// update path: type is immutable after creation and the email is the
// login key.
func (s *UserService) Update(id string, req *dto.UpdateUserRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Bio != nil {
		updates["bio"] = normalizeOptional(req.Bio)
	}
	if req.Stack != nil {
		updates["stack"] = normalizeOptional(req.Stack)
	}
	if req.Github != nil {
		updates["github"] = normalizeOptional(req.Github)
	}
	if req.Linkedin != nil {
		updates["linkedin"] = normalizeOptional(req.Linkedin)
	}
	if req.Company != nil {
		updates["company"] = normalizeOptional(req.Company)
	}
	if req.ProfilePhoto != nil {
		updates["profile_photo"] = normalizeOptional(req.ProfilePhoto)
	}

	user, err := s.userRepo.UpdatePartial(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storageErr(err)
	}
	return user, nil
}

// normalizeOptional maps empty/whitespace input to nil so the storage
// layer sees one uniform "absent" representation.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
