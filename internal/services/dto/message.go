package dto

import (
	"time"

	"codelance_backend/internal/models"
)

type CreateMessageRequest struct {
	ReceiverID string `json:"receiver" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// UpdateMessageRequest: messages are immutable except for the read flag.
type UpdateMessageRequest struct {
	IsRead *bool `json:"is_read" binding:"required"`
}

type MessageResponse struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"sender"`
	SenderName   string    `json:"sender_name"`
	ReceiverID   string    `json:"receiver"`
	ReceiverName string    `json:"receiver_name"`
	Content      string    `json:"content"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

// ConversationResponse is one entry of the derived conversations view:
// the most recent exchange per distinct partner.
type ConversationResponse struct {
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	LastMessage string    `json:"last_message"`
	Timestamp   time.Time `json:"timestamp"`
	IsRead      bool      `json:"is_read"`
}

func NewMessageResponse(m *models.Message) MessageResponse {
	resp := MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
	if m.Sender != nil {
		resp.SenderName = m.Sender.Username
	}
	if m.Receiver != nil {
		resp.ReceiverName = m.Receiver.Username
	}
	return resp
}

func NewMessageResponseList(messages []models.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, NewMessageResponse(&messages[i]))
	}
	return out
}
