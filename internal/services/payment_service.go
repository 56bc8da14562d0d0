package services

import (
	"codelance_backend/internal/models"
	"codelance_backend/internal/policy"
	"codelance_backend/internal/repositories"
	"codelance_backend/internal/services/dto"
	"codelance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PaymentService interface {
	Create(db *gorm.DB, actor policy.Actor, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	List(db *gorm.DB, actor policy.Actor) ([]dto.PaymentResponse, error)
	Get(db *gorm.DB, actor policy.Actor, id string) (*dto.PaymentResponse, error)
	Update(db *gorm.DB, actor policy.Actor, id string, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	Delete(db *gorm.DB, actor policy.Actor, id string) error
}

type PaymentServiceImpl struct {
	paymentRepo repositories.PaymentRepository
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
) PaymentService {
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

// Create records a payment. The payer defaults to the acting user; the
// admin treasury passes an explicit payer when recording payouts.
func (s *PaymentServiceImpl) Create(db *gorm.DB, actor policy.Actor, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	payerID := actor.UserID
	if req.PayerID != nil && *req.PayerID != "" {
		payerID = *req.PayerID
	}

	if _, err := s.userRepo.FindByID(db, req.PayeeID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(db, *req.ProjectID); err != nil {
			return nil, apperrors.ErrNotFound(err)
		}
	}

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = models.PaymentTypeIncoming
	}

	payment := &models.Payment{
		ProjectID:   req.ProjectID,
		PayerID:     payerID,
		PayeeID:     req.PayeeID,
		Amount:      req.Amount,
		PaymentType: paymentType,
		Status:      models.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(db, payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.paymentRepo.FindByID(db, payment.ID)
	if err == nil {
		payment = created
	}
	resp := dto.NewPaymentResponse(payment)
	return &resp, nil
}

// List dispatches by role: the admin sees the full ledger, everyone else
// the payments they pay or receive.
func (s *PaymentServiceImpl) List(db *gorm.DB, actor policy.Actor) ([]dto.PaymentResponse, error) {
	var (
		payments []models.Payment
		err      error
	)
	if actor.IsAdmin() {
		payments, err = s.paymentRepo.FindAll(db)
	} else {
		payments, err = s.paymentRepo.FindInvolving(db, actor.UserID)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaymentResponseList(payments), nil
}

func (s *PaymentServiceImpl) Get(db *gorm.DB, actor policy.Actor, id string) (*dto.PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if !s.isVisible(actor, payment) {
		return nil, apperrors.ErrNotFound(gorm.ErrRecordNotFound)
	}
	resp := dto.NewPaymentResponse(payment)
	return &resp, nil
}

func (s *PaymentServiceImpl) isVisible(actor policy.Actor, p *models.Payment) bool {
	return actor.IsAdmin() || p.PayerID == actor.UserID || p.PayeeID == actor.UserID
}

// Update moves payment status; settlement is an admin action.
func (s *PaymentServiceImpl) Update(db *gorm.DB, actor policy.Actor, id string, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if !s.isVisible(actor, payment) {
		return nil, apperrors.ErrNotFound(gorm.ErrRecordNotFound)
	}

	if req.Status != nil {
		if !actor.IsAdmin() {
			return nil, apperrors.ErrInsufficientPermissions
		}
		if !models.ValidPaymentStatus(*req.Status) {
			return nil, apperrors.ErrInvalidOperation("payment", "unknown payment status")
		}
		payment.Status = *req.Status
	}

	if err := s.paymentRepo.Update(db, payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewPaymentResponse(payment)
	return &resp, nil
}

func (s *PaymentServiceImpl) Delete(db *gorm.DB, actor policy.Actor, id string) error {
	payment, err := s.paymentRepo.FindByID(db, id)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if !s.isVisible(actor, payment) {
		return apperrors.ErrNotFound(gorm.ErrRecordNotFound)
	}
	if !actor.IsAdmin() {
		return apperrors.ErrInsufficientPermissions
	}
	if err := s.paymentRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
