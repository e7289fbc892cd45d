package services

import (
	"context"
	"errors"
	"log"

	"securepay-portal/internal/adapters/persistence/models"
	"securepay-portal/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Staff management errors
var (
	ErrStaffNotPending = errors.New("pending staff not found")
)

// StaffService handles staff approval workflow and staff-assisted
// customer management
type StaffService struct {
	staffRepo    repositories.StaffRepository
	customerRepo repositories.CustomerRepository
}

// NewStaffService creates a new staff service
func NewStaffService(
	staffRepo repositories.StaffRepository,
	customerRepo repositories.CustomerRepository,
) *StaffService {
	return &StaffService{
		staffRepo:    staffRepo,
		customerRepo: customerRepo,
	}
}

// ListCustomersOutput represents a paginated customer listing
type ListCustomersOutput struct {
	Customers []*models.CustomerResponse `json:"customers"`
	Total     int64                      `json:"total"`
}

// ListPendingStaff lists staff registrations awaiting review
func (s *StaffService) ListPendingStaff(ctx context.Context) ([]*models.StaffResponse, error) {
	pending, err := s.staffRepo.ListByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.StaffResponse, 0, len(pending))
	for _, st := range pending {
		responses = append(responses, st.ToResponse())
	}
	return responses, nil
}

// ApproveStaff moves a pending staff registration to approved. The
// transition is a compare-and-set in the store: when two reviewers race,
// exactly one wins and the other sees ErrStaffNotPending.
func (s *StaffService) ApproveStaff(ctx context.Context, staffID, actorID string) (*models.StaffResponse, error) {
	staff, err := s.staffRepo.ApproveFromPending(ctx, staffID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotPending
		}
		return nil, err
	}

	log.Printf("✅ Staff approved: %s by %s", staff.Username, actorID)

	return staff.ToResponse(), nil
}

// RejectStaff moves a pending staff registration to rejected
func (s *StaffService) RejectStaff(ctx context.Context, staffID, actorID string) (*models.StaffResponse, error) {
	staff, err := s.staffRepo.RejectFromPending(ctx, staffID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotPending
		}
		return nil, err
	}

	log.Printf("✅ Staff rejected: %s by %s", staff.Username, actorID)

	return staff.ToResponse(), nil
}

// ListCustomers lists registered customers (staff view)
func (s *StaffService) ListCustomers(ctx context.Context, offset, limit int) (*ListCustomersOutput, error) {
	customers, total, err := s.customerRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, c.ToResponse())
	}

	return &ListCustomersOutput{
		Customers: responses,
		Total:     total,
	}, nil
}
