package repositories

import (
	"context"
	"time"

	"securepay-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// staffRepository implements StaffRepository
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

// Create creates a new staff record
func (r *staffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

// GetByID gets a staff record by ID
func (r *staffRepository) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetByUsername gets a staff record by username
func (r *staffRepository) GetByUsername(ctx context.Context, username string) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// ExistsByUsername checks if a staff username exists
func (r *staffRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Staff{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// ListByStatus lists staff records by status, newest first
func (r *staffRepository) ListByStatus(ctx context.Context, status string) ([]*models.Staff, error) {
	var staff []*models.Staff
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&staff).Error
	return staff, err
}

// Count counts all staff records
func (r *staffRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Staff{}).Count(&count).Error
	return count, err
}

// CountByStatus counts staff records by status
func (r *staffRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Staff{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// ApproveFromPending atomically moves a pending staff record to approved.
// The status condition makes the update a compare-and-set: when two staff
// race on the same record, only one update matches and the other caller
// sees gorm.ErrRecordNotFound.
func (r *staffRepository) ApproveFromPending(ctx context.Context, id, actorID string) (*models.Staff, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&models.Staff{}).
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

// RejectFromPending atomically moves a pending staff record to rejected
func (r *staffRepository) RejectFromPending(ctx context.Context, id, actorID string) (*models.Staff, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&models.Staff{}).
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
