package repositories

import (
	"context"
	"time"

	"securepay-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// paymentRepository implements PaymentRepository
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new payment record
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// GetByID gets a payment by ID with its customer
func (r *paymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListByCustomer lists a customer's payments, newest first
func (r *paymentRepository) ListByCustomer(ctx context.Context, customerID string) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

// List lists all payments with pagination and customer details, newest first
func (r *paymentRepository) List(ctx context.Context, offset, limit int) ([]*models.Payment, int64, error) {
	var payments []*models.Payment
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&payments).Error

	return payments, total, err
}

// Count counts all payments
func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Count(&count).Error
	return count, err
}

// CountByStatus counts payments by status
func (r *paymentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// ApproveFromPending atomically moves a pending payment to approved.
// Compare-and-set on status: concurrent approvals of the same record
// resolve to exactly one winner, the rest see gorm.ErrRecordNotFound.
func (r *paymentRepository) ApproveFromPending(ctx context.Context, id, actorID string) (*models.Payment, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":      models.StatusApproved,
			"approved_at": now,
			"approved_by": actorID,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// RejectFromPending atomically moves a pending payment to rejected
func (r *paymentRepository) RejectFromPending(ctx context.Context, id, actorID string) (*models.Payment, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":      models.StatusRejected,
			"rejected_at": now,
			"rejected_by": actorID,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
