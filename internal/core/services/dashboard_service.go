package services

import (
	"context"

	"securepay-portal/internal/adapters/persistence/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardService builds the staff dashboard read model. It is
// read-only, so it queries the store directly instead of going through
// the repositories.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardStats represents staff dashboard statistics
type DashboardStats struct {
	TotalUsers            int64             `json:"totalUsers"`
	TotalPayments         int64             `json:"totalPayments"`
	PendingPayments       int64             `json:"pendingPayments"`
	PendingStaff          int64             `json:"pendingStaff"`
	TotalAmountByCurrency map[string]string `json:"totalAmountByCurrency"`
}

// GetStats returns dashboard statistics for staff
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.WithContext(ctx).Model(&models.Customer{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Payment{}).Count(&stats.TotalPayments).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Payment{}).
		Where("status = ?", models.StatusPending).
		Count(&stats.PendingPayments).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Staff{}).
		Where("status = ?", models.StatusPending).
		Count(&stats.PendingStaff).Error; err != nil {
		return nil, err
	}

	totals, err := s.sumAmountsByCurrency(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalAmountByCurrency = totals

	return stats, nil
}

// sumAmountsByCurrency groups payment amounts per currency. Amounts are
// stored as exact decimal strings, so the summation runs over decimals
// in application code rather than casting to floats in SQL.
func (s *DashboardService) sumAmountsByCurrency(ctx context.Context) (map[string]string, error) {
	var rows []struct {
		Currency string
		Amount   string
	}

	err := s.db.WithContext(ctx).Model(&models.Payment{}).
		Select("currency", "amount").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal)
	for _, row := range rows {
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			// stored amounts are validated on the way in
			continue
		}
		sums[row.Currency] = sums[row.Currency].Add(amount)
	}

	totals := make(map[string]string, len(sums))
	for currency, sum := range sums {
		totals[currency] = sum.StringFixed(2)
	}
	return totals, nil
}
