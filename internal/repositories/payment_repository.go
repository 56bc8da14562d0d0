package repositories

import (
	"errors"

	"codelance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	Create(db *gorm.DB, payment *models.Payment) error
	FindByID(db *gorm.DB, id string) (*models.Payment, error)
	FindAll(db *gorm.DB) ([]models.Payment, error)
	FindInvolving(db *gorm.DB, userID string) ([]models.Payment, error)
	Update(db *gorm.DB, payment *models.Payment) error
	Delete(db *gorm.DB, id string) error
}

type PaymentRepositoryImpl struct{}

func NewPaymentRepository() PaymentRepository {
	return &PaymentRepositoryImpl{}
}

func (r *PaymentRepositoryImpl) Create(db *gorm.DB, payment *models.Payment) error {
	return db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Payment, error) {
	var payment models.Payment
	err := db.Preload("Payer").Preload("Payee").Preload("Project").
		First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindAll(db *gorm.DB) ([]models.Payment, error) {
	var payments []models.Payment
	err := db.Preload("Payer").Preload("Payee").Preload("Project").
		Order("created_at DESC").Find(&payments).Error
	return payments, err
}

// FindInvolving returns payments where the user is payer or payee.
func (r *PaymentRepositoryImpl) FindInvolving(db *gorm.DB, userID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := db.Preload("Payer").Preload("Payee").Preload("Project").
		Where("payer_id = ? OR payee_id = ?", userID, userID).
		Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) Update(db *gorm.DB, payment *models.Payment) error {
	return db.Save(payment).Error
}

func (r *PaymentRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Payment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
