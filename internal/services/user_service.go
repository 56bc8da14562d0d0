package services

import (
	"codelance_backend/internal/policy"
	"codelance_backend/internal/repositories"
	"codelance_backend/internal/services/dto"
	"codelance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetMe(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	ListProfiles(db *gorm.DB, actor policy.Actor, limit, offset int) ([]dto.ProfileResponse, int64, error)
	GetProfile(db *gorm.DB, actor policy.Actor, id string) (*dto.ProfileResponse, error)
	UpdateProfile(db *gorm.DB, actor policy.Actor, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	DeleteProfile(db *gorm.DB, actor policy.Actor, id string) error
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewUserService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo, profileRepo: profileRepo}
}

func (s *UserServiceImpl) GetMe(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *UserServiceImpl) ListProfiles(db *gorm.DB, actor policy.Actor, limit, offset int) ([]dto.ProfileResponse, int64, error) {
	if !actor.CanManageUsers() {
		return nil, 0, apperrors.ErrInsufficientPermissions
	}

	total, err := s.profileRepo.CountAll(db)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	profiles, err := s.profileRepo.FindAll(db, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	out := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, dto.NewProfileResponse(&profiles[i]))
	}
	return out, total, nil
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, actor policy.Actor, id string) (*dto.ProfileResponse, error) {
	if !actor.CanManageUsers() {
		return nil, apperrors.ErrInsufficientPermissions
	}
	profile, err := s.profileRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

// UpdateProfile applies the admin PATCH: role promotion, developer
// approval and the descriptive profile fields.
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, actor policy.Actor, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if !actor.CanManageUsers() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	profile, err := s.profileRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if req.Role != nil {
		profile.Role = *req.Role
	}
	if req.IsApproved != nil {
		profile.IsApproved = *req.IsApproved
	}
	if req.Skills != nil {
		profile.Skills = *req.Skills
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if req.Portfolio != nil {
		profile.Portfolio = *req.Portfolio
	}
	if req.GithubLink != nil {
		profile.GithubLink = *req.GithubLink
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}

	if err := s.profileRepo.Update(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

// DeleteProfile removes the account behind the profile. Deleting the
// user cascades to the profile, refresh tokens and owned records.
func (s *UserServiceImpl) DeleteProfile(db *gorm.DB, actor policy.Actor, id string) error {
	if !actor.CanManageUsers() {
		return apperrors.ErrInsufficientPermissions
	}

	profile, err := s.profileRepo.FindByID(db, id)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	if err := s.userRepo.Delete(db, profile.UserID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
