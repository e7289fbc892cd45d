package handlers

import (
	"errors"
	"strings"

	"securepay-portal/internal/core/services"
	"securepay-portal/internal/pkg/bruteforce"
	"securepay-portal/internal/pkg/password"
	"securepay-portal/internal/pkg/response"
	"securepay-portal/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles customer signup and login endpoints
type AuthHandler struct {
	authService *services.AuthService
	guard       bruteforce.Guard
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, guard bruteforce.Guard) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		guard:       guard,
	}
}

// SignupRequest represents customer signup request body
type SignupRequest struct {
	FullName      string `json:"fullName"`
	IDNumber      string `json:"idNumber"`
	AccountNumber string `json:"accountNumber"`
	Username      string `json:"username"`
	Password      string `json:"password"`
}

// LoginRequest represents customer login request body
type LoginRequest struct {
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
}

// validateSignup checks every signup field against its whitelist pattern
func validateSignup(req *SignupRequest) error {
	if req.FullName == "" || req.IDNumber == "" || req.AccountNumber == "" ||
		req.Username == "" || req.Password == "" {
		return errors.New("All fields are required.")
	}
	if !validation.IsValidFullName(req.FullName) ||
		!validation.IsValidIDNumber(req.IDNumber) ||
		!validation.IsValidAccountNumber(req.AccountNumber) ||
		!validation.IsValidUsername(req.Username) ||
		!password.MeetsPolicy(req.Password) {
		return errors.New("Invalid input format.")
	}
	return nil
}

// Signup handles customer registration
// @Summary Register new customer
// @Description Self-service customer registration
// @Tags User
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Signup data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /user/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Username = strings.TrimSpace(req.Username)

	if err := validateSignup(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	input := &services.SignupInput{
		FullName:      req.FullName,
		IDNumber:      req.IDNumber,
		AccountNumber: req.AccountNumber,
		Username:      req.Username,
		Password:      req.Password,
	}

	result, err := h.authService.CustomerSignup(c.Context(), input, "")
	if err != nil {
		if errors.Is(err, services.ErrCustomerExists) {
			return response.Conflict(c, "Username or account number already exists.")
		}
		return response.InternalServerError(c, "Signup failed.")
	}

	return response.Created(c, "Customer registered successfully.", fiber.Map{
		"user": result,
	})
}

// Login handles customer login
// @Summary Login customer
// @Description Authenticate customer and return a bearer token
// @Tags User
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /user/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	clientKey := c.IP()

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		h.guard.Fail(clientKey)
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.AccountNumber == "" || req.Password == "" {
		h.guard.Fail(clientKey)
		return response.BadRequest(c, "Username, account number and password are required.")
	}

	if !validation.IsValidUsername(req.Username) ||
		!validation.IsValidAccountNumber(req.AccountNumber) ||
		!password.MeetsPolicy(req.Password) {
		h.guard.Fail(clientKey)
		return response.BadRequest(c, "Invalid input format.")
	}

	input := &services.CustomerLoginInput{
		Username:      req.Username,
		AccountNumber: req.AccountNumber,
		Password:      req.Password,
	}

	result, err := h.authService.CustomerLogin(c.Context(), input)
	if err != nil {
		h.guard.Fail(clientKey)
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Deliberately the same message for unknown principal and
			// wrong password.
			return response.Unauthorized(c, "Authentication failed.")
		}
		return response.InternalServerError(c, "Login failed.")
	}

	h.guard.Reset(clientKey)

	return response.Success(c, "Authentication successful.", fiber.Map{
		"token": result.Token,
		"user":  result.Customer,
	})
}
