package services

import (
	"codelance_backend/internal/models"
	"codelance_backend/internal/policy"
	"codelance_backend/internal/repositories"
	"codelance_backend/internal/services/dto"
	"codelance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type TaskService interface {
	Create(db *gorm.DB, actor policy.Actor, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	List(db *gorm.DB, actor policy.Actor) ([]dto.TaskResponse, error)
	Get(db *gorm.DB, actor policy.Actor, id string) (*dto.TaskResponse, error)
	Update(db *gorm.DB, actor policy.Actor, id string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(db *gorm.DB, actor policy.Actor, id string) error
}

type TaskServiceImpl struct {
	taskRepo    repositories.TaskRepository
	projectRepo repositories.ProjectRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, projectRepo repositories.ProjectRepository) TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo, projectRepo: projectRepo}
}

func (s *TaskServiceImpl) Create(db *gorm.DB, actor policy.Actor, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if !actor.CanCreateTask() {
		return nil, apperrors.ErrOnlyAdminCreatesTasks
	}

	if _, err := s.projectRepo.FindByID(db, req.ProjectID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	task := &models.Task{
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline.Time,
		Status:      models.TaskStatusAssigned,
	}

	if err := s.taskRepo.Create(db, task); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.taskRepo.FindByID(db, task.ID)
	if err == nil {
		task = created
	}
	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

// List dispatches by role: admins see all tasks, developers their
// assignments, clients the tasks spawned under their projects.
func (s *TaskServiceImpl) List(db *gorm.DB, actor policy.Actor) ([]dto.TaskResponse, error) {
	var (
		tasks []models.Task
		err   error
	)
	switch {
	case actor.IsAdmin():
		tasks, err = s.taskRepo.FindAll(db)
	case actor.IsDeveloper():
		tasks, err = s.taskRepo.FindByAssignee(db, actor.UserID)
	default:
		tasks, err = s.taskRepo.FindByProjectClient(db, actor.UserID)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTaskResponseList(tasks), nil
}

func (s *TaskServiceImpl) Get(db *gorm.DB, actor policy.Actor, id string) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if !s.isVisible(actor, task) {
		return nil, apperrors.ErrNotFound(gorm.ErrRecordNotFound)
	}
	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

func (s *TaskServiceImpl) isVisible(actor policy.Actor, task *models.Task) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsDeveloper():
		return task.AssignedTo != nil && *task.AssignedTo == actor.UserID
	default:
		return task.Project != nil && task.Project.ClientID == actor.UserID
	}
}

// Update lets the admin edit any field. The assigned developer may only
// move status and fill the submission fields; anything else is rejected.
func (s *TaskServiceImpl) Update(db *gorm.DB, actor policy.Actor, id string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if !actor.CanUpdateTask(task) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if !actor.IsAdmin() && requestsAdminTaskFields(req) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssignedTo != nil {
		task.AssignedTo = req.AssignedTo
	}
	if req.Budget != nil {
		task.Budget = *req.Budget
	}
	if req.Deadline != nil {
		task.Deadline = req.Deadline.Time
	}
	if req.Status != nil {
		if !models.ValidTaskStatus(*req.Status) {
			return nil, apperrors.ErrInvalidOperation("task", "unknown task status")
		}
		task.Status = *req.Status
	}
	if req.SubmissionGitLink != nil {
		task.SubmissionGitLink = *req.SubmissionGitLink
	}
	if req.SubmissionNotes != nil {
		task.SubmissionNotes = *req.SubmissionNotes
	}

	if err := s.taskRepo.Update(db, task); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

func requestsAdminTaskFields(req *dto.UpdateTaskRequest) bool {
	return req.Title != nil || req.Description != nil ||
		req.AssignedTo != nil || req.Budget != nil || req.Deadline != nil
}

func (s *TaskServiceImpl) Delete(db *gorm.DB, actor policy.Actor, id string) error {
	if !actor.CanDeleteTask() {
		return apperrors.ErrInsufficientPermissions
	}
	if _, err := s.taskRepo.FindByID(db, id); err != nil {
		return apperrors.ErrNotFound(err)
	}
	if err := s.taskRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
