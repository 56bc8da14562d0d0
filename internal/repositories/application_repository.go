package repositories

import (
	"errors"

	"codelance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.ProjectApplication) error
	FindByID(db *gorm.DB, id string) (*models.ProjectApplication, error)
	FindAll(db *gorm.DB) ([]models.ProjectApplication, error)
	FindByProject(db *gorm.DB, projectID string) ([]models.ProjectApplication, error)
	FindByDeveloper(db *gorm.DB, developerID string) ([]models.ProjectApplication, error)
	ExistsActive(db *gorm.DB, projectID, developerID string) (bool, error)
	Update(db *gorm.DB, application *models.ProjectApplication) error
	Delete(db *gorm.DB, id string) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.ProjectApplication) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ProjectApplication, error) {
	var application models.ProjectApplication
	err := db.Preload("Project").Preload("Developer").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindAll(db *gorm.DB) ([]models.ProjectApplication, error) {
	var applications []models.ProjectApplication
	err := db.Preload("Project").Preload("Developer").
		Order("created_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByProject(db *gorm.DB, projectID string) ([]models.ProjectApplication, error) {
	var applications []models.ProjectApplication
	err := db.Preload("Project").Preload("Developer").
		Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByDeveloper(db *gorm.DB, developerID string) ([]models.ProjectApplication, error) {
	var applications []models.ProjectApplication
	err := db.Preload("Project").Preload("Developer").
		Where("developer_id = ?", developerID).
		Order("created_at DESC").Find(&applications).Error
	return applications, err
}

// ExistsActive reports whether a non-rejected application already exists
// for the pair. Run inside the same transaction as the insert to close
// the race between concurrent duplicate submissions.
func (r *ApplicationRepositoryImpl) ExistsActive(db *gorm.DB, projectID, developerID string) (bool, error) {
	var count int64
	err := db.Model(&models.ProjectApplication{}).
		Where("project_id = ? AND developer_id = ? AND status <> ?",
			projectID, developerID, models.ApplicationStatusRejected).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, application *models.ProjectApplication) error {
	return db.Save(application).Error
}

func (r *ApplicationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.ProjectApplication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
