package services

import (
	"context"
	"errors"
	"log"

	"securepay-portal/internal/adapters/persistence/models"
	"securepay-portal/internal/adapters/persistence/repositories"
	"securepay-portal/internal/config"
	"securepay-portal/internal/pkg/jwt"
	"securepay-portal/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCustomerExists      = errors.New("username or account number already exists")
	ErrStaffExists         = errors.New("staff username already exists")
	ErrStaffPending        = errors.New("staff account is pending approval")
	ErrStaffRejected       = errors.New("staff account has been rejected")
	ErrAlreadyBootstrapped = errors.New("staff records already exist")
)

// AuthService handles authentication business logic for both principal
// classes
type AuthService struct {
	customerRepo repositories.CustomerRepository
	staffRepo    repositories.StaffRepository
	cfg          *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	customerRepo repositories.CustomerRepository,
	staffRepo repositories.StaffRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		customerRepo: customerRepo,
		staffRepo:    staffRepo,
		cfg:          cfg,
	}
}

// SignupInput represents customer registration input
type SignupInput struct {
	FullName      string `json:"fullName"`
	IDNumber      string `json:"idNumber"`
	AccountNumber string `json:"accountNumber"`
	Username      string `json:"username"`
	Password      string `json:"password"`
}

// CustomerLoginInput represents customer login input
type CustomerLoginInput struct {
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
}

// StaffRegisterInput represents staff self-registration input
type StaffRegisterInput struct {
	FullName string  `json:"fullName"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

// CustomerAuthResult represents a successful customer authentication
type CustomerAuthResult struct {
	Token    string                   `json:"token"`
	Customer *models.CustomerResponse `json:"customer"`
}

// StaffAuthResult represents a successful staff authentication
type StaffAuthResult struct {
	Token string                `json:"token"`
	Staff *models.StaffResponse `json:"staff"`
}

// CustomerSignup registers a new customer. When createdBy is non-empty
// the registration was performed by staff on the customer's behalf and
// the acting staff id is recorded on the record.
func (s *AuthService) CustomerSignup(ctx context.Context, input *SignupInput, createdBy string) (*models.CustomerResponse, error) {
	exists, err := s.customerRepo.ExistsByUsernameOrAccount(ctx, input.Username, input.AccountNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCustomerExists
	}

	hashedPassword, err := password.Hash(input.Password, s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		FullName:      input.FullName,
		IDNumber:      input.IDNumber,
		AccountNumber: input.AccountNumber,
		Username:      input.Username,
		Password:      hashedPassword,
	}
	if createdBy != "" {
		customer.CreatedBy = &createdBy
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	log.Printf("✅ Customer registered: %s (account: %s)", customer.Username, customer.AccountNumber)

	return customer.ToResponse(), nil
}

// CustomerLogin authenticates a customer by username, account number and
// password. Unknown principals and wrong passwords fail identically so
// the response cannot be used to enumerate usernames.
func (s *AuthService) CustomerLogin(ctx context.Context, input *CustomerLoginInput) (*CustomerAuthResult, error) {
	customer, err := s.customerRepo.GetByUsernameAndAccount(ctx, input.Username, input.AccountNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, customer.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateCustomerToken(
		customer.ID,
		customer.Username,
		customer.AccountNumber,
		s.cfg.JWT.Secret,
		s.cfg.JWT.ExpiryMinutes,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Customer logged in: %s", customer.Username)

	return &CustomerAuthResult{
		Token:    token,
		Customer: customer.ToResponse(),
	}, nil
}

// StaffRegister creates a pending staff registration
func (s *AuthService) StaffRegister(ctx context.Context, input *StaffRegisterInput) (*models.StaffResponse, error) {
	exists, err := s.staffRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrStaffExists
	}

	hashedPassword, err := password.Hash(input.Password, s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	staff := &models.Staff{
		Username: input.Username,
		Password: hashedPassword,
		FullName: input.FullName,
		Email:    input.Email,
		Status:   models.StatusPending,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	log.Printf("✅ Staff registration submitted: %s (pending approval)", staff.Username)

	return staff.ToResponse(), nil
}

// StaffLogin authenticates a staff member. Only approved accounts may
// log in; pending and rejected accounts fail with distinct errors before
// the password is ever compared.
func (s *AuthService) StaffLogin(ctx context.Context, username, plaintext string) (*StaffAuthResult, error) {
	staff, err := s.staffRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	switch staff.Status {
	case models.StatusApproved:
		// proceed
	case models.StatusPending:
		return nil, ErrStaffPending
	default:
		return nil, ErrStaffRejected
	}

	if !password.Verify(plaintext, staff.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateStaffToken(
		staff.ID,
		staff.Username,
		staff.FullName,
		s.cfg.JWT.Secret,
		s.cfg.JWT.ExpiryMinutes,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Staff logged in: %s", staff.Username)

	return &StaffAuthResult{
		Token: token,
		Staff: staff.ToResponse(),
	}, nil
}

// CreateBootstrapAdmin creates the one-time default admin account. It
// only succeeds while no staff record exists at all.
func (s *AuthService) CreateBootstrapAdmin(ctx context.Context) (*models.StaffResponse, error) {
	count, err := s.staffRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyBootstrapped
	}

	hashedPassword, err := password.Hash("Admin@123", s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	admin := &models.Staff{
		Username:       "admin",
		Password:       hashedPassword,
		FullName:       "System Administrator",
		Status:         models.StatusApproved,
		IsDefaultAdmin: true,
	}

	if err := s.staffRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	log.Printf("✅ Bootstrap admin created: %s", admin.Username)

	return admin.ToResponse(), nil
}
