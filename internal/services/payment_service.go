package services

import (
	"database/sql"
	"errors"
	"fmt"

	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/repositories"
	"gymdesk_backend/pkg/utils"
)

// --- Custom Service Errors for Payments ---
var (
	ErrPaymentValidation = errors.New("payment data validation error")
)

// --- Payment DTOs ---

type ManualPaymentRequest struct {
	MemberID    string  `json:"memberId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Method      string  `json:"method" binding:"required"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
}

// --- PaymentService Interface ---

// PaymentService logs manual payments and lists the ledger. Logging a
// payment adjusts the member's balance in the same transaction.
type PaymentService interface {
	ListPayments(gymID string) ([]models.Payment, error)
	LogManualPayment(gymID string, req ManualPaymentRequest) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	memberRepo  repositories.MemberRepository
	db          *sql.DB
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(paymentRepo repositories.PaymentRepository, memberRepo repositories.MemberRepository, db *sql.DB) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		db:          db,
	}
}

func (s *paymentService) ListPayments(gymID string) ([]models.Payment, error) {
	payments, err := s.paymentRepo.List(gymID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// LogManualPayment appends a ledger entry and applies its balance
// effect. A "payment" reduces what the member owes; a "charge"
// increases it. Both writes share one transaction.
func (s *paymentService) LogManualPayment(gymID string, req ManualPaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrPaymentValidation)
	}
	if utils.IsEmpty(req.Method) {
		return nil, fmt.Errorf("%w: method cannot be empty", ErrPaymentValidation)
	}

	paymentType := req.Type
	if paymentType == "" {
		paymentType = models.PaymentTypePayment
	}
	if paymentType != models.PaymentTypePayment && paymentType != models.PaymentTypeCharge {
		return nil, fmt.Errorf("%w: type must be %q or %q", ErrPaymentValidation, models.PaymentTypePayment, models.PaymentTypeCharge)
	}

	member, err := s.memberRepo.GetByID(gymID, req.MemberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member for payment: %w", err)
	}

	delta := req.Amount
	status := models.PaymentStatusPending
	if paymentType == models.PaymentTypePayment {
		delta = -req.Amount
		status = models.PaymentStatusPaid
	}

	payment := &models.Payment{
		GymID:       gymID,
		MemberID:    member.ID,
		Amount:      req.Amount,
		Method:      req.Method,
		Type:        paymentType,
		Status:      status,
		Description: req.Description,
		MemberName:  member.FullName,
		MemberEmail: member.Email,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin payment transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.paymentRepo.Insert(tx, payment); err != nil {
		return nil, fmt.Errorf("failed to log payment: %w", err)
	}
	if err := s.memberRepo.AdjustBalance(tx, gymID, member.ID, delta, payment.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to adjust member balance: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit payment transaction: %w", err)
	}

	return payment, nil
}
