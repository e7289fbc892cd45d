package services

import (
	"context"
	"errors"
	"log"

	"securepay-portal/internal/adapters/persistence/models"
	"securepay-portal/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Payment errors
var (
	// ErrPaymentNotPending covers both a missing record and a record
	// that already left the pending state: the conditioned update
	// cannot tell them apart, and neither can the caller.
	ErrPaymentNotPending = errors.New("pending payment not found")
)

// PaymentService handles payment record business logic
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repositories.PaymentRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

// CreatePaymentInput represents payment creation input
type CreatePaymentInput struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Provider string `json:"provider"`
}

// ListPaymentsOutput represents a paginated staff payment listing
type ListPaymentsOutput struct {
	Payments []*models.PaymentResponse `json:"payments"`
	Total    int64                     `json:"total"`
}

// Create creates a pending payment record owned by the given customer
func (s *PaymentService) Create(ctx context.Context, customerID string, input *CreatePaymentInput) (*models.PaymentResponse, error) {
	payment := &models.Payment{
		Amount:     input.Amount,
		Currency:   input.Currency,
		Provider:   input.Provider,
		Status:     models.StatusPending,
		CustomerID: customerID,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	log.Printf("✅ Payment created: %s %s %s via %s", payment.ID, payment.Amount, payment.Currency, payment.Provider)

	return payment.ToResponse(), nil
}

// ListByCustomer lists the payments owned by a customer
func (s *PaymentService) ListByCustomer(ctx context.Context, customerID string) ([]*models.PaymentResponse, error) {
	payments, err := s.paymentRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, p.ToResponse())
	}
	return responses, nil
}

// List lists all payments with customer details (staff view)
func (s *PaymentService) List(ctx context.Context, offset, limit int) (*ListPaymentsOutput, error) {
	payments, total, err := s.paymentRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, p.ToResponse())
	}

	return &ListPaymentsOutput{
		Payments: responses,
		Total:    total,
	}, nil
}

// Approve moves a pending payment to approved, recording the acting
// staff member. Races between approvers resolve in the store: the loser
// gets ErrPaymentNotPending.
func (s *PaymentService) Approve(ctx context.Context, paymentID, staffID string) (*models.PaymentResponse, error) {
	payment, err := s.paymentRepo.ApproveFromPending(ctx, paymentID, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotPending
		}
		return nil, err
	}

	log.Printf("✅ Payment approved: %s by staff %s", payment.ID, staffID)

	return payment.ToResponse(), nil
}

// Reject moves a pending payment to rejected
func (s *PaymentService) Reject(ctx context.Context, paymentID, staffID string) (*models.PaymentResponse, error) {
	payment, err := s.paymentRepo.RejectFromPending(ctx, paymentID, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotPending
		}
		return nil, err
	}

	log.Printf("✅ Payment rejected: %s by staff %s", payment.ID, staffID)

	return payment.ToResponse(), nil
}
