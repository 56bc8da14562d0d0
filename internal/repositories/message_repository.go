package repositories

import (
	"errors"

	"codelance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindByID(db *gorm.DB, id string) (*models.Message, error)
	// FindInvolving returns the actor's messages in ascending
	// chronological order; partnerID narrows to one conversation.
	FindInvolving(db *gorm.DB, userID, partnerID string) ([]models.Message, error)
	// FindInvolvingDesc returns the actor's messages newest-first, the
	// scan order the conversations view is derived from.
	FindInvolvingDesc(db *gorm.DB, userID string) ([]models.Message, error)
	Update(db *gorm.DB, message *models.Message) error
	Delete(db *gorm.DB, id string) error
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Message, error) {
	var message models.Message
	err := db.Preload("Sender").Preload("Receiver").First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) FindInvolving(db *gorm.DB, userID, partnerID string) ([]models.Message, error) {
	query := db.Preload("Sender").Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID)
	if partnerID != "" {
		query = query.Where("sender_id = ? OR receiver_id = ?", partnerID, partnerID)
	}

	var messages []models.Message
	err := query.Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) FindInvolvingDesc(db *gorm.DB, userID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.Preload("Sender").Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) Update(db *gorm.DB, message *models.Message) error {
	return db.Save(message).Error
}

func (r *MessageRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Message{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
