package services

import (
	"codelance_backend/internal/models"
	"codelance_backend/internal/policy"
	"codelance_backend/internal/repositories"
	"codelance_backend/internal/services/dto"
	"codelance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, actor policy.Actor, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	List(db *gorm.DB, actor policy.Actor, projectID string) ([]dto.ApplicationResponse, error)
	Get(db *gorm.DB, actor policy.Actor, id string) (*dto.ApplicationResponse, error)
	Approve(db *gorm.DB, actor policy.Actor, id string) (*dto.ApplicationResponse, error)
	Reject(db *gorm.DB, actor policy.Actor, id string) (*dto.ApplicationResponse, error)
	Delete(db *gorm.DB, actor policy.Actor, id string) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	projectRepo     repositories.ProjectRepository
	taskRepo        repositories.TaskRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	projectRepo repositories.ProjectRepository,
	taskRepo repositories.TaskRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		projectRepo:     projectRepo,
		taskRepo:        taskRepo,
	}
}

// Apply files a developer's application. The duplicate check and the
// insert share one transaction so two concurrent submissions cannot both
// pass the check; a rejected application does not block re-applying.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, actor policy.Actor, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if !actor.CanApply() {
		return nil, apperrors.ErrOnlyDevelopersApply
	}

	if _, err := s.projectRepo.FindByID(db, req.ProjectID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	application := &models.ProjectApplication{
		ProjectID:   req.ProjectID,
		DeveloperID: actor.UserID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.apply(tx, application)
	}); err != nil {
		return nil, err
	}

	created, err := s.applicationRepo.FindByID(db, application.ID)
	if err == nil {
		application = created
	}
	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationServiceImpl) apply(tx *gorm.DB, application *models.ProjectApplication) error {
	exists, err := s.applicationRepo.ExistsActive(tx, application.ProjectID, application.DeveloperID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		return apperrors.ErrDuplicateApplication
	}
	if err := s.applicationRepo.Create(tx, application); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// List dispatches by role: admins see everything (optionally filtered by
// project), developers their own applications, clients nothing.
func (s *ApplicationServiceImpl) List(db *gorm.DB, actor policy.Actor, projectID string) ([]dto.ApplicationResponse, error) {
	var (
		applications []models.ProjectApplication
		err          error
	)
	switch {
	case actor.IsAdmin() && projectID != "":
		applications, err = s.applicationRepo.FindByProject(db, projectID)
	case actor.IsAdmin():
		applications, err = s.applicationRepo.FindAll(db)
	case actor.IsDeveloper():
		applications, err = s.applicationRepo.FindByDeveloper(db, actor.UserID)
	default:
		return []dto.ApplicationResponse{}, nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(applications), nil
}

func (s *ApplicationServiceImpl) Get(db *gorm.DB, actor policy.Actor, id string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if !actor.IsAdmin() && application.DeveloperID != actor.UserID {
		return nil, apperrors.ErrNotFound(gorm.ErrRecordNotFound)
	}
	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

// Approve marks the application approved and spawns the work item for the
// developer. Both writes happen in one transaction: a spawned task
// without the status flip (or the reverse) must never be observable.
func (s *ApplicationServiceImpl) Approve(db *gorm.DB, actor policy.Actor, id string) (*dto.ApplicationResponse, error) {
	if !actor.CanModerateApplications() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	application, err := s.applicationRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if application.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationProcessed
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		approved, err := s.approve(tx, id)
		if err != nil {
			return err
		}
		application = approved
		return nil
	}); err != nil {
		return nil, err
	}

	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

// approve reads and re-checks the application under the transaction, so
// two racing approvals cannot both pass the pending gate and spawn two
// tasks.
func (s *ApplicationServiceImpl) approve(tx *gorm.DB, id string) (*models.ProjectApplication, error) {
	application, err := s.applicationRepo.FindByID(tx, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if application.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationProcessed
	}

	project := application.Project
	if project == nil {
		found, err := s.projectRepo.FindByID(tx, application.ProjectID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		project = found
	}

	application.Status = models.ApplicationStatusApproved
	if err := s.applicationRepo.Update(tx, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	task := buildTaskForApproval(project, application.DeveloperID)
	if err := s.taskRepo.Create(tx, task); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

// buildTaskForApproval synthesizes the work item spawned by an approval.
// Missing project budget falls back to zero and a missing deadline to the
// project's creation date.
func buildTaskForApproval(project *models.Project, developerID string) *models.Task {
	budget := 0.0
	if project.Budget != nil {
		budget = *project.Budget
	}
	deadline := project.CreatedAt
	if project.Deadline != nil {
		deadline = *project.Deadline
	}
	assignee := developerID
	return &models.Task{
		ProjectID:   project.ID,
		AssignedTo:  &assignee,
		Title:       "Development: " + project.Title,
		Description: "Implementation of the project: " + project.Title,
		Budget:      budget,
		Deadline:    deadline,
		Status:      models.TaskStatusAssigned,
	}
}

// Reject marks a pending application rejected. The developer may apply
// again afterwards.
func (s *ApplicationServiceImpl) Reject(db *gorm.DB, actor policy.Actor, id string) (*dto.ApplicationResponse, error) {
	if !actor.CanModerateApplications() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	application, err := s.applicationRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if application.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationProcessed
	}

	application.Status = models.ApplicationStatusRejected
	if err := s.applicationRepo.Update(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

// Delete withdraws an application: the owning developer or the admin.
func (s *ApplicationServiceImpl) Delete(db *gorm.DB, actor policy.Actor, id string) error {
	application, err := s.applicationRepo.FindByID(db, id)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if !actor.IsAdmin() && application.DeveloperID != actor.UserID {
		return apperrors.ErrNotFound(gorm.ErrRecordNotFound)
	}
	if err := s.applicationRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
