package dto

import (
	"time"

	"codelance_backend/internal/models"
)

// CreatePaymentRequest: payer defaults to the acting user when omitted
// (the admin treasury sets an explicit payee for payouts).
type CreatePaymentRequest struct {
	ProjectID   *string            `json:"project"`
	PayerID     *string            `json:"payer"`
	PayeeID     string             `json:"payee" binding:"required"`
	Amount      float64            `json:"amount" binding:"required,gt=0"`
	PaymentType models.PaymentType `json:"payment_type" binding:"omitempty,oneof=Incoming Payout"`
}

type UpdatePaymentRequest struct {
	Status *models.PaymentStatus `json:"status" binding:"omitempty,oneof=Pending Paid Failed"`
}

type PaymentResponse struct {
	ID          string               `json:"id"`
	ProjectID   *string              `json:"project"`
	PayerID     string               `json:"payer"`
	PayerName   string               `json:"payer_name"`
	PayeeID     string               `json:"payee"`
	PayeeName   string               `json:"payee_name"`
	Amount      float64              `json:"amount"`
	PaymentType models.PaymentType   `json:"payment_type"`
	Status      models.PaymentStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

func NewPaymentResponse(p *models.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		PayerID:     p.PayerID,
		PayeeID:     p.PayeeID,
		Amount:      p.Amount,
		PaymentType: p.PaymentType,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
	if p.Payer != nil {
		resp.PayerName = p.Payer.Username
	}
	if p.Payee != nil {
		resp.PayeeName = p.Payee.Username
	}
	return resp
}

func NewPaymentResponseList(payments []models.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, NewPaymentResponse(&payments[i]))
	}
	return out
}
