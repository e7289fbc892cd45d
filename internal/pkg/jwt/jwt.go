package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Roles carried in token claims
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

// Claims represents the bearer token payload. Subject carries the
// principal id. Role and FullName are set for staff tokens,
// AccountNumber for customer tokens.
type Claims struct {
	Username      string `json:"username"`
	Role          string `json:"role,omitempty"`
	FullName      string `json:"fullName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	jwt.RegisteredClaims
}

// GenerateCustomerToken issues a signed token for a customer principal
func GenerateCustomerToken(customerID, username, accountNumber, secret string, expiryMinutes int) (string, error) {
	claims := Claims{
		Username:      username,
		Role:          RoleCustomer,
		AccountNumber: accountNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "securepay-portal",
			Subject:   customerID,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateStaffToken issues a signed token for a staff principal
func GenerateStaffToken(staffID, username, fullName, secret string, expiryMinutes int) (string, error) {
	claims := Claims{
		Username: username,
		Role:     RoleStaff,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "securepay-portal",
			Subject:   staffID,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken verifies signature and expiry and returns the claims
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
