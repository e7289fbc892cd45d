package models

import (
	"time"

	"securepay-portal/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stored status values, shared by staff registrations and payments
const (
	StatusPending  = string(domain.StatusPending)
	StatusApproved = string(domain.StatusApproved)
	StatusRejected = string(domain.StatusRejected)
)

// ============================================================
// Customer
// ============================================================

// Customer represents the customers table. CreatedBy is set only on the
// staff-assisted registration path and is a lookup reference, not an
// ownership edge.
type Customer struct {
	ID            string    `gorm:"type:char(36);primaryKey" json:"id"`
	FullName      string    `gorm:"size:50;not null" json:"full_name"`
	IDNumber      string    `gorm:"size:20;not null" json:"id_number"`
	AccountNumber string    `gorm:"uniqueIndex;size:20;not null" json:"account_number"`
	Username      string    `gorm:"uniqueIndex;size:20;not null" json:"username"`
	Password      string    `gorm:"size:255;not null" json:"-"`
	CreatedBy     *string   `gorm:"type:char(36)" json:"created_by,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CustomerResponse DTO
type CustomerResponse struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	AccountNumber string    `json:"account_number"`
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"created_at"`
}

func (c *Customer) ToResponse() *CustomerResponse {
	return &CustomerResponse{
		ID:            c.ID,
		FullName:      c.FullName,
		AccountNumber: c.AccountNumber,
		Username:      c.Username,
		CreatedAt:     c.CreatedAt,
	}
}

// ============================================================
// Staff
// ============================================================

// Staff represents the staff table. New registrations start pending and
// must be approved by an already-approved staff member before login is
// allowed. Approved and rejected are terminal.
type Staff struct {
	ID             string     `gorm:"type:char(36);primaryKey" json:"id"`
	Username       string     `gorm:"uniqueIndex;size:20;not null" json:"username"`
	Password       string     `gorm:"size:255;not null" json:"-"`
	FullName       string     `gorm:"size:50;not null" json:"full_name"`
	Email          *string    `gorm:"size:100" json:"email,omitempty"`
	Status         string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	IsDefaultAdmin bool       `gorm:"default:false" json:"is_default_admin"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	ApprovedBy     *string    `gorm:"type:char(36)" json:"approved_by,omitempty"`
	RejectedAt     *time.Time `json:"rejected_at,omitempty"`
	RejectedBy     *string    `gorm:"type:char(36)" json:"rejected_by,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// StaffResponse DTO
type StaffResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     *string   `json:"email,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Staff) ToResponse() *StaffResponse {
	return &StaffResponse{
		ID:        s.ID,
		Username:  s.Username,
		FullName:  s.FullName,
		Email:     s.Email,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
}

// ============================================================
// Payment
// ============================================================

// Payment represents the payments table. Amount is kept as the exact
// decimal string the customer submitted. CustomerID is immutable after
// creation; status moves pending -> approved/rejected exactly once.
type Payment struct {
	ID         string     `gorm:"type:char(36);primaryKey" json:"id"`
	Amount     string     `gorm:"size:32;not null" json:"amount"`
	Currency   string     `gorm:"size:3;not null" json:"currency"`
	Provider   string     `gorm:"size:20;not null" json:"provider"`
	Status     string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CustomerID string     `gorm:"type:char(36);not null;index" json:"customer_id"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	ApprovedBy *string    `gorm:"type:char(36)" json:"approved_by,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
	RejectedBy *string    `gorm:"type:char(36)" json:"rejected_by,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PaymentResponse DTO. Customer fields are populated on staff listings.
type PaymentResponse struct {
	ID         string     `json:"id"`
	Amount     string     `json:"amount"`
	Currency   string     `json:"currency"`
	Provider   string     `json:"provider"`
	Status     string     `json:"status"`
	CustomerID string     `json:"customer_id"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	ApprovedBy *string    `json:"approved_by,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
	RejectedBy *string    `json:"rejected_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`

	CustomerName    string `json:"customer_name,omitempty"`
	CustomerAccount string `json:"customer_account,omitempty"`
}

func (p *Payment) ToResponse() *PaymentResponse {
	resp := &PaymentResponse{
		ID:         p.ID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Provider:   p.Provider,
		Status:     p.Status,
		CustomerID: p.CustomerID,
		ApprovedAt: p.ApprovedAt,
		ApprovedBy: p.ApprovedBy,
		RejectedAt: p.RejectedAt,
		RejectedBy: p.RejectedBy,
		CreatedAt:  p.CreatedAt,
	}

	if p.Customer != nil {
		resp.CustomerName = p.Customer.FullName
		resp.CustomerAccount = p.Customer.AccountNumber
	}

	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Staff{},
		&Payment{},
	)
}
