package handlers

import (
	"errors"
	"strings"

	"securepay-portal/internal/adapters/http/middleware"
	"securepay-portal/internal/core/services"
	"securepay-portal/internal/pkg/bruteforce"
	"securepay-portal/internal/pkg/pagination"
	"securepay-portal/internal/pkg/password"
	"securepay-portal/internal/pkg/response"
	"securepay-portal/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// StaffHandler handles staff authentication, the staff approval workflow
// and staff-assisted customer management
type StaffHandler struct {
	authService  *services.AuthService
	staffService *services.StaffService
	guard        bruteforce.Guard
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(
	authService *services.AuthService,
	staffService *services.StaffService,
	guard bruteforce.Guard,
) *StaffHandler {
	return &StaffHandler{
		authService:  authService,
		staffService: staffService,
		guard:        guard,
	}
}

// StaffRegisterRequest represents staff registration request body
type StaffRegisterRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// StaffLoginRequest represents staff login request body
type StaffLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles staff self-registration; the account starts pending
// @Summary Register new staff
// @Description Submit a staff registration awaiting approval
// @Tags Staff
// @Accept json
// @Produce json
// @Param body body StaffRegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/register [post]
func (h *StaffHandler) Register(c *fiber.Ctx) error {
	var req StaffRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Username = strings.TrimSpace(req.Username)

	if req.FullName == "" || req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "All fields are required.")
	}
	if !validation.IsValidFullName(req.FullName) ||
		!validation.IsValidUsername(req.Username) ||
		!password.MeetsPolicy(req.Password) {
		return response.BadRequest(c, "Invalid input format.")
	}

	input := &services.StaffRegisterInput{
		FullName: req.FullName,
		Username: req.Username,
		Password: req.Password,
	}
	if req.Email != "" {
		input.Email = &req.Email
	}

	result, err := h.authService.StaffRegister(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrStaffExists) {
			return response.Conflict(c, "Username already exists.")
		}
		return response.InternalServerError(c, "Registration failed.")
	}

	return response.Created(c, "Registration submitted. Awaiting approval from existing staff.", fiber.Map{
		"staff": result,
	})
}

// Login handles staff login
// @Summary Login staff
// @Description Authenticate an approved staff member and return a bearer token
// @Tags Staff
// @Accept json
// @Produce json
// @Param body body StaffLoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /staff/login [post]
func (h *StaffHandler) Login(c *fiber.Ctx) error {
	clientKey := c.IP()

	var req StaffLoginRequest
	if err := c.BodyParser(&req); err != nil {
		h.guard.Fail(clientKey)
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		h.guard.Fail(clientKey)
		return response.BadRequest(c, "Username and password are required.")
	}
	if !validation.IsValidUsername(req.Username) || !password.MeetsPolicy(req.Password) {
		h.guard.Fail(clientKey)
		return response.BadRequest(c, "Invalid input format.")
	}

	result, err := h.authService.StaffLogin(c.Context(), req.Username, req.Password)
	if err != nil {
		h.guard.Fail(clientKey)
		switch {
		case errors.Is(err, services.ErrStaffPending):
			return response.Forbidden(c, "Your account is pending approval. Please contact an existing staff member.")
		case errors.Is(err, services.ErrStaffRejected):
			return response.Forbidden(c, "Your account has been rejected. Please contact administration.")
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Authentication failed.")
		default:
			return response.InternalServerError(c, "Login failed.")
		}
	}

	h.guard.Reset(clientKey)

	return response.Success(c, "Authentication successful.", fiber.Map{
		"token": result.Token,
		"staff": result.Staff,
	})
}

// CreateAdmin handles the one-time bootstrap admin creation
// @Summary Create bootstrap admin
// @Description Create the default admin account; only succeeds while no staff exist
// @Tags Staff
// @Produce json
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /staff/create-admin [post]
func (h *StaffHandler) CreateAdmin(c *fiber.Ctx) error {
	result, err := h.authService.CreateBootstrapAdmin(c.Context())
	if err != nil {
		if errors.Is(err, services.ErrAlreadyBootstrapped) {
			return response.BadRequest(c, "Admin user already exists.")
		}
		return response.InternalServerError(c, "Failed to create admin user.")
	}

	return response.Created(c, "Admin user created successfully.", fiber.Map{
		"staff": result,
	})
}

// ListPendingStaff lists staff registrations awaiting review
// @Summary List pending staff
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /staff/pending-staff [get]
func (h *StaffHandler) ListPendingStaff(c *fiber.Ctx) error {
	pending, err := h.staffService.ListPendingStaff(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve pending staff.")
	}

	return response.Success(c, "Pending staff retrieved successfully.", fiber.Map{
		"count":        len(pending),
		"pendingStaff": pending,
	})
}

// ApproveStaff approves a pending staff registration
// @Summary Approve staff registration
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff/approve-staff/{id} [patch]
func (h *StaffHandler) ApproveStaff(c *fiber.Ctx) error {
	staffID := c.Params("id")
	if _, err := uuid.Parse(staffID); err != nil {
		return response.BadRequest(c, "Invalid staff ID")
	}

	actorID, _ := c.Locals(middleware.LocalPrincipalID).(string)

	result, err := h.staffService.ApproveStaff(c.Context(), staffID, actorID)
	if err != nil {
		if errors.Is(err, services.ErrStaffNotPending) {
			return response.NotFound(c, "Pending staff not found")
		}
		return response.InternalServerError(c, "Error approving staff")
	}

	return response.Success(c, "Staff approved successfully", fiber.Map{
		"staff": result,
	})
}

// RejectStaff rejects a pending staff registration
// @Summary Reject staff registration
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff/reject-staff/{id} [patch]
func (h *StaffHandler) RejectStaff(c *fiber.Ctx) error {
	staffID := c.Params("id")
	if _, err := uuid.Parse(staffID); err != nil {
		return response.BadRequest(c, "Invalid staff ID")
	}

	actorID, _ := c.Locals(middleware.LocalPrincipalID).(string)

	result, err := h.staffService.RejectStaff(c.Context(), staffID, actorID)
	if err != nil {
		if errors.Is(err, services.ErrStaffNotPending) {
			return response.NotFound(c, "Pending staff not found")
		}
		return response.InternalServerError(c, "Error rejecting staff")
	}

	return response.Success(c, "Staff registration rejected", fiber.Map{
		"staff": result,
	})
}

// RegisterUser handles staff-assisted customer registration
// @Summary Register customer on their behalf
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SignupRequest true "Customer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/register-user [post]
func (h *StaffHandler) RegisterUser(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Username = strings.TrimSpace(req.Username)

	if err := validateSignup(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	actorID, _ := c.Locals(middleware.LocalPrincipalID).(string)

	input := &services.SignupInput{
		FullName:      req.FullName,
		IDNumber:      req.IDNumber,
		AccountNumber: req.AccountNumber,
		Username:      req.Username,
		Password:      req.Password,
	}

	result, err := h.authService.CustomerSignup(c.Context(), input, actorID)
	if err != nil {
		if errors.Is(err, services.ErrCustomerExists) {
			return response.Conflict(c, "Username or account number already exists.")
		}
		return response.InternalServerError(c, "User registration failed.")
	}

	return response.Created(c, "User registered successfully by staff.", fiber.Map{
		"user": result,
	})
}

// ListUsers lists registered customers
// @Summary List customers
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /staff/users [get]
func (h *StaffHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.FromQuery(c)

	result, err := h.staffService.ListCustomers(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve users.")
	}

	return response.Success(c, "Users retrieved successfully.", fiber.Map{
		"count": len(result.Customers),
		"users": result.Customers,
		"meta":  pagination.BuildMeta(params, result.Total),
	})
}
