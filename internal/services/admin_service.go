package services

import (
	"codelance_backend/internal/models"
	"codelance_backend/internal/policy"
	"codelance_backend/internal/repositories"
	"codelance_backend/internal/services/dto"
	"codelance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AdminService interface {
	Stats(db *gorm.DB, actor policy.Actor) (*dto.AdminStatsResponse, error)
}

type AdminServiceImpl struct {
	profileRepo repositories.ProfileRepository
	projectRepo repositories.ProjectRepository
}

func NewAdminService(profileRepo repositories.ProfileRepository, projectRepo repositories.ProjectRepository) AdminService {
	return &AdminServiceImpl{profileRepo: profileRepo, projectRepo: projectRepo}
}

// Stats computes the dashboard counters. The four counts are independent
// reads; a dashboard snapshot does not need to be transactional.
func (s *AdminServiceImpl) Stats(db *gorm.DB, actor policy.Actor) (*dto.AdminStatsResponse, error) {
	if !actor.CanViewStats() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	clients, err := s.profileRepo.CountByRole(db, models.UserRoleClient)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	developers, err := s.profileRepo.CountByRole(db, models.UserRoleDeveloper)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pending, err := s.projectRepo.CountByStatus(db, models.ProjectStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	completed, err := s.projectRepo.CountByStatus(db, models.ProjectStatusCompleted)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminStatsResponse{
		TotalClients:      clients,
		TotalDevelopers:   developers,
		PendingProjects:   pending,
		CompletedProjects: completed,
	}, nil
}
