package services

import (
	"codelance_backend/internal/models"
	"codelance_backend/internal/policy"
	"codelance_backend/internal/repositories"
	"codelance_backend/internal/services/dto"
	"codelance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MessageService interface {
	Send(db *gorm.DB, actor policy.Actor, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	List(db *gorm.DB, actor policy.Actor, partnerID string) ([]dto.MessageResponse, error)
	MarkRead(db *gorm.DB, actor policy.Actor, id string, req *dto.UpdateMessageRequest) (*dto.MessageResponse, error)
	Delete(db *gorm.DB, actor policy.Actor, id string) error
	Conversations(db *gorm.DB, actor policy.Actor) ([]dto.ConversationResponse, error)
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) MessageService {
	return &MessageServiceImpl{messageRepo: messageRepo, userRepo: userRepo}
}

// Send creates a message from the acting user. The sender field of the
// request body, if any, is ignored.
func (s *MessageServiceImpl) Send(db *gorm.DB, actor policy.Actor, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	if _, err := s.userRepo.FindByID(db, req.ReceiverID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	message := &models.Message{
		SenderID:   actor.UserID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		IsRead:     false,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.messageRepo.FindByID(db, message.ID)
	if err == nil {
		message = created
	}
	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

// List returns messages the actor sent or received, oldest first. An
// optional partner narrows the set to that one conversation.
func (s *MessageServiceImpl) List(db *gorm.DB, actor policy.Actor, partnerID string) ([]dto.MessageResponse, error) {
	messages, err := s.messageRepo.FindInvolving(db, actor.UserID, partnerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewMessageResponseList(messages), nil
}

// MarkRead flips the read flag. Content and addressing are immutable;
// only the receiver of the message may update it.
func (s *MessageServiceImpl) MarkRead(db *gorm.DB, actor policy.Actor, id string, req *dto.UpdateMessageRequest) (*dto.MessageResponse, error) {
	message, err := s.messageRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if message.SenderID != actor.UserID && message.ReceiverID != actor.UserID {
		return nil, apperrors.ErrNotFound(gorm.ErrRecordNotFound)
	}
	if !actor.CanMarkMessageRead(message) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	message.IsRead = *req.IsRead
	if err := s.messageRepo.Update(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

func (s *MessageServiceImpl) Delete(db *gorm.DB, actor policy.Actor, id string) error {
	message, err := s.messageRepo.FindByID(db, id)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if message.SenderID != actor.UserID && message.ReceiverID != actor.UserID {
		return apperrors.ErrNotFound(gorm.ErrRecordNotFound)
	}
	if err := s.messageRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Conversations derives the inbox overview: for every distinct partner,
// the most recent message exchanged with them.
func (s *MessageServiceImpl) Conversations(db *gorm.DB, actor policy.Actor) ([]dto.ConversationResponse, error) {
	messages, err := s.messageRepo.FindInvolvingDesc(db, actor.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildConversations(actor.UserID, messages), nil
}

// buildConversations scans newest-first messages and keeps the first
// occurrence per partner. A conversation counts as read when its latest
// message is read or the actor sent it.
func buildConversations(actorID string, messages []models.Message) []dto.ConversationResponse {
	seen := make(map[string]bool)
	out := make([]dto.ConversationResponse, 0)

	for i := range messages {
		m := &messages[i]

		partnerID := m.SenderID
		partner := m.Sender
		if m.SenderID == actorID {
			partnerID = m.ReceiverID
			partner = m.Receiver
		}
		if seen[partnerID] {
			continue
		}
		seen[partnerID] = true

		entry := dto.ConversationResponse{
			UserID:      partnerID,
			LastMessage: m.Content,
			Timestamp:   m.CreatedAt,
			IsRead:      m.IsRead || m.SenderID == actorID,
		}
		if partner != nil {
			entry.Username = partner.Username
		}
		out = append(out, entry)
	}
	return out
}
