package repositories

import (
	"errors"

	"codelance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	Create(db *gorm.DB, task *models.Task) error
	FindByID(db *gorm.DB, id string) (*models.Task, error)
	FindAll(db *gorm.DB) ([]models.Task, error)
	FindByAssignee(db *gorm.DB, userID string) ([]models.Task, error)
	FindByProjectClient(db *gorm.DB, clientID string) ([]models.Task, error)
	ExistsForProjectAndAssignee(db *gorm.DB, projectID, userID string) (bool, error)
	Update(db *gorm.DB, task *models.Task) error
	Delete(db *gorm.DB, id string) error
}

type TaskRepositoryImpl struct{}

func NewTaskRepository() TaskRepository {
	return &TaskRepositoryImpl{}
}

func (r *TaskRepositoryImpl) Create(db *gorm.DB, task *models.Task) error {
	return db.Create(task).Error
}

func (r *TaskRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Task, error) {
	var task models.Task
	err := db.Preload("Project").Preload("Assignee").First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) FindAll(db *gorm.DB) ([]models.Task, error) {
	var tasks []models.Task
	err := db.Preload("Project").Preload("Assignee").
		Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) FindByAssignee(db *gorm.DB, userID string) ([]models.Task, error) {
	var tasks []models.Task
	err := db.Preload("Project").Preload("Assignee").
		Where("assigned_to = ?", userID).
		Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// FindByProjectClient returns tasks under projects owned by the client.
func (r *TaskRepositoryImpl) FindByProjectClient(db *gorm.DB, clientID string) ([]models.Task, error) {
	var tasks []models.Task
	err := db.Preload("Project").Preload("Assignee").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.client_id = ?", clientID).
		Order("tasks.created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ExistsForProjectAndAssignee(db *gorm.DB, projectID, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.Task{}).
		Where("project_id = ? AND assigned_to = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *TaskRepositoryImpl) Update(db *gorm.DB, task *models.Task) error {
	return db.Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
