package repositories

import (
	"context"

	"securepay-portal/internal/adapters/persistence/models"
)

// CustomerRepository defines customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByUsername(ctx context.Context, username string) (*models.Customer, error)
	GetByUsernameAndAccount(ctx context.Context, username, accountNumber string) (*models.Customer, error)
	ExistsByUsernameOrAccount(ctx context.Context, username, accountNumber string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.Customer, int64, error)
	Count(ctx context.Context) (int64, error)
}

// StaffRepository defines staff data access. ApproveFromPending and
// RejectFromPending are compare-and-set transitions: they only touch rows
// whose current status is pending, so concurrent callers cannot both win.
type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByUsername(ctx context.Context, username string) (*models.Staff, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ListByStatus(ctx context.Context, status string) ([]*models.Staff, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	ApproveFromPending(ctx context.Context, id, actorID string) (*models.Staff, error)
	RejectFromPending(ctx context.Context, id, actorID string) (*models.Staff, error)
}

// PaymentRepository defines payment data access with the same
// compare-and-set transition contract as StaffRepository.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*models.Payment, error)
	List(ctx context.Context, offset, limit int) ([]*models.Payment, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	ApproveFromPending(ctx context.Context, id, actorID string) (*models.Payment, error)
	RejectFromPending(ctx context.Context, id, actorID string) (*models.Payment, error)
}
