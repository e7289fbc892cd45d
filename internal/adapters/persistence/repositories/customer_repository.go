package repositories

import (
	"context"

	"securepay-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// customerRepository implements CustomerRepository
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create creates a new customer
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// GetByID gets a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByUsername gets a customer by username
func (r *customerRepository) GetByUsername(ctx context.Context, username string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByUsernameAndAccount gets a customer by username and account number.
// Login matches on both, so a correct username with the wrong account
// number fails the same way as an unknown username.
func (r *customerRepository) GetByUsernameAndAccount(ctx context.Context, username, accountNumber string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("username = ? AND account_number = ?", username, accountNumber).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// ExistsByUsernameOrAccount checks whether username or account number is taken
func (r *customerRepository) ExistsByUsernameOrAccount(ctx context.Context, username, accountNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Where("username = ? OR account_number = ?", username, accountNumber).
		Count(&count).Error
	return count > 0, err
}

// List lists customers with pagination, newest first
func (r *customerRepository) List(ctx context.Context, offset, limit int) ([]*models.Customer, int64, error) {
	var customers []*models.Customer
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&customers).Error

	return customers, total, err
}

// Count counts all customers
func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error
	return count, err
}
