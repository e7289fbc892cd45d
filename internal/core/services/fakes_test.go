package services

import (
	"context"
	"sync"
	"time"

	"securepay-portal/internal/adapters/persistence/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests. Status
// transitions hold the mutex across check-and-write so they behave like
// the conditioned updates in the real repositories.

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]*models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*models.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	customer.CreatedAt = time.Now()
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) GetByUsername(ctx context.Context, username string) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) GetByUsernameAndAccount(ctx context.Context, username, accountNumber string) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.Username == username && c.AccountNumber == accountNumber {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) ExistsByUsernameOrAccount(ctx context.Context, username, accountNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.Username == username || c.AccountNumber == accountNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, offset, limit int) ([]*models.Customer, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		all = append(all, c)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeCustomerRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.customers)), nil
}

type fakeStaffRepo struct {
	mu    sync.Mutex
	staff map[string]*models.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[string]*models.Staff)}
}

func (r *fakeStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if staff.ID == "" {
		staff.ID = uuid.NewString()
	}
	if staff.Status == "" {
		staff.Status = models.StatusPending
	}
	staff.CreatedAt = time.Now()
	r.staff[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.staff[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeStaffRepo) GetByUsername(ctx context.Context, username string) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.staff {
		if s.Username == username {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStaffRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.staff {
		if s.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStaffRepo) ListByStatus(ctx context.Context, status string) ([]*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Staff
	for _, s := range r.staff {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStaffRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.staff)), nil
}

func (r *fakeStaffRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.staff {
		if s.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeStaffRepo) ApproveFromPending(ctx context.Context, id, actorID string) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.staff[id]
	if !ok || s.Status != models.StatusPending {
		return nil, gorm.ErrRecordNotFound
	}
	now := time.Now()
	s.Status = models.StatusApproved
	s.ApprovedAt = &now
	s.ApprovedBy = &actorID
	return s, nil
}

func (r *fakeStaffRepo) RejectFromPending(ctx context.Context, id, actorID string) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.staff[id]
	if !ok || s.Status != models.StatusPending {
		return nil, gorm.ErrRecordNotFound
	}
	now := time.Now()
	s.Status = models.StatusRejected
	s.RejectedAt = &now
	s.RejectedBy = &actorID
	return s, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if payment.Status == "" {
		payment.Status = models.StatusPending
	}
	payment.CreatedAt = time.Now()
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePaymentRepo) ListByCustomer(ctx context.Context, customerID string) ([]*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Payment
	for _, p := range r.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) List(ctx context.Context, offset, limit int) ([]*models.Payment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*models.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		all = append(all, p)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakePaymentRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.payments)), nil
}

func (r *fakePaymentRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.payments {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakePaymentRepo) ApproveFromPending(ctx context.Context, id, actorID string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok || p.Status != models.StatusPending {
		return nil, gorm.ErrRecordNotFound
	}
	now := time.Now()
	p.Status = models.StatusApproved
	p.ApprovedAt = &now
	p.ApprovedBy = &actorID
	return p, nil
}

func (r *fakePaymentRepo) RejectFromPending(ctx context.Context, id, actorID string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok || p.Status != models.StatusPending {
		return nil, gorm.ErrRecordNotFound
	}
	now := time.Now()
	p.Status = models.StatusRejected
	p.RejectedAt = &now
	p.RejectedBy = &actorID
	return p, nil
}
