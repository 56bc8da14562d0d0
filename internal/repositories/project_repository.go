package repositories

import (
	"errors"

	"codelance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindAll(db *gorm.DB) ([]models.Project, error)
	FindByClient(db *gorm.DB, clientID string) ([]models.Project, error)
	FindVisibleToDeveloper(db *gorm.DB, developerID string) ([]models.Project, error)
	Update(db *gorm.DB, project *models.Project) error
	Delete(db *gorm.DB, id string) error
	CountByStatus(db *gorm.DB, status models.ProjectStatus) (int64, error)
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.Preload("Client").First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindAll(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	err := db.Preload("Client").Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) FindByClient(db *gorm.DB, clientID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Preload("Client").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindVisibleToDeveloper returns projects where the developer holds an
// assigned task, plus projects in "In Progress", de-duplicated.
func (r *ProjectRepositoryImpl) FindVisibleToDeveloper(db *gorm.DB, developerID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Preload("Client").
		Distinct("projects.*").
		Joins("LEFT JOIN tasks ON tasks.project_id = projects.id").
		Where("tasks.assigned_to = ? OR projects.status = ?", developerID, models.ProjectStatusInProgress).
		Order("projects.created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) Update(db *gorm.DB, project *models.Project) error {
	return db.Save(project).Error
}

func (r *ProjectRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) CountByStatus(db *gorm.DB, status models.ProjectStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Project{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
