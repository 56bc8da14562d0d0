package services

import (
	"codelance_backend/internal/models"
	"codelance_backend/internal/policy"
	"codelance_backend/internal/repositories"
	"codelance_backend/internal/services/dto"
	"codelance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProjectService interface {
	Create(db *gorm.DB, actor policy.Actor, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	List(db *gorm.DB, actor policy.Actor) ([]dto.ProjectResponse, error)
	Get(db *gorm.DB, actor policy.Actor, id string) (*dto.ProjectResponse, error)
	Update(db *gorm.DB, actor policy.Actor, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(db *gorm.DB, actor policy.Actor, id string) error
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	taskRepo    repositories.TaskRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, taskRepo repositories.TaskRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo, taskRepo: taskRepo}
}

func (s *ProjectServiceImpl) Create(db *gorm.DB, actor policy.Actor, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if !actor.CanCreateProject() {
		return nil, apperrors.ErrOnlyClientsCreateProjects
	}

	project := &models.Project{
		ClientID:    actor.UserID,
		Title:       req.Title,
		Description: req.Description,
		ServiceType: req.ServiceType,
		Budget:      req.Budget,
		Deadline:    req.Deadline.TimePtr(),
		Status:      models.ProjectStatusPending,
	}

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.projectRepo.FindByID(db, project.ID)
	if err == nil {
		project = created
	}
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

// List dispatches by role: admins see everything, clients their own
// projects, developers the projects they work on plus active ones.
func (s *ProjectServiceImpl) List(db *gorm.DB, actor policy.Actor) ([]dto.ProjectResponse, error) {
	var (
		projects []models.Project
		err      error
	)
	switch {
	case actor.IsAdmin():
		projects, err = s.projectRepo.FindAll(db)
	case actor.IsClient():
		projects, err = s.projectRepo.FindByClient(db, actor.UserID)
	default:
		projects, err = s.projectRepo.FindVisibleToDeveloper(db, actor.UserID)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectResponseList(projects), nil
}

func (s *ProjectServiceImpl) Get(db *gorm.DB, actor policy.Actor, id string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	visible, err := s.isVisible(db, actor, project)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !visible {
		// Out-of-scope rows read as absent, not forbidden.
		return nil, apperrors.ErrNotFound(gorm.ErrRecordNotFound)
	}

	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (s *ProjectServiceImpl) isVisible(db *gorm.DB, actor policy.Actor, project *models.Project) (bool, error) {
	switch {
	case actor.IsAdmin():
		return true, nil
	case actor.IsClient():
		return project.ClientID == actor.UserID, nil
	default:
		if project.Status == models.ProjectStatusInProgress {
			return true, nil
		}
		return s.taskRepo.ExistsForProjectAndAssignee(db, project.ID, actor.UserID)
	}
}

func (s *ProjectServiceImpl) Update(db *gorm.DB, actor policy.Actor, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if !actor.CanUpdateProject(project) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ServiceType != nil {
		project.ServiceType = *req.ServiceType
	}
	if req.Budget != nil {
		project.Budget = req.Budget
	}
	if req.Deadline != nil {
		project.Deadline = req.Deadline.TimePtr()
	}
	if req.Status != nil {
		if !actor.CanSetProjectStatus() {
			return nil, apperrors.ErrInsufficientPermissions
		}
		if !models.ValidProjectStatus(*req.Status) {
			return nil, apperrors.ErrInvalidOperation("project", "unknown project status")
		}
		project.Status = *req.Status
	}

	if err := s.projectRepo.Update(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (s *ProjectServiceImpl) Delete(db *gorm.DB, actor policy.Actor, id string) error {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if !actor.CanDeleteProject(project) {
		return apperrors.ErrInsufficientPermissions
	}
	if err := s.projectRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
