package handlers

import (
	"errors"
	"strings"

	"securepay-portal/internal/adapters/http/middleware"
	"securepay-portal/internal/core/services"
	"securepay-portal/internal/pkg/pagination"
	"securepay-portal/internal/pkg/response"
	"securepay-portal/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PaymentHandler handles payment endpoints for customers and staff
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentRequest represents payment creation request body
type CreatePaymentRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Provider string `json:"provider"`
}

// Create handles payment creation by the authenticated customer
// @Summary Create payment
// @Description Create a pending payment instruction owned by the caller
// @Tags Payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreatePaymentRequest true "Payment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /payment [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Amount == "" || req.Currency == "" || req.Provider == "" {
		return response.BadRequest(c, "Amount, currency and provider are required.")
	}
	if !validation.IsValidAmount(req.Amount) || !validation.IsValidCurrency(req.Currency) {
		return response.BadRequest(c, "Invalid amount or currency format.")
	}
	if !validation.IsValidProvider(req.Provider) {
		return response.BadRequest(c, "Invalid provider. Choose one of: "+strings.Join(validation.Providers, ", "))
	}

	customerID, ok := c.Locals(middleware.LocalPrincipalID).(string)
	if !ok || customerID == "" {
		return response.Unauthorized(c, "Unauthorized")
	}

	input := &services.CreatePaymentInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Provider: req.Provider,
	}

	result, err := h.paymentService.Create(c.Context(), customerID, input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create payment.")
	}

	return response.Created(c, "Payment record created successfully.", fiber.Map{
		"payment": result,
	})
}

// History lists the authenticated customer's own payments
// @Summary Payment history
// @Description List payments owned by the caller
// @Tags Payment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /payment [get]
func (h *PaymentHandler) History(c *fiber.Ctx) error {
	customerID, ok := c.Locals(middleware.LocalPrincipalID).(string)
	if !ok || customerID == "" {
		return response.Unauthorized(c, "Unauthorized")
	}

	payments, err := h.paymentService.ListByCustomer(c.Context(), customerID)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve payments.")
	}

	return response.Success(c, "Payments retrieved successfully.", fiber.Map{
		"count":    len(payments),
		"payments": payments,
	})
}

// Approve approves a pending payment (staff only)
// @Summary Approve payment
// @Tags Payment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payment/approve/{id} [patch]
func (h *PaymentHandler) Approve(c *fiber.Ctx) error {
	paymentID := c.Params("id")
	if _, err := uuid.Parse(paymentID); err != nil {
		return response.BadRequest(c, "Invalid payment ID")
	}

	staffID, _ := c.Locals(middleware.LocalPrincipalID).(string)

	result, err := h.paymentService.Approve(c.Context(), paymentID, staffID)
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotPending) {
			return response.NotFound(c, "Pending payment not found")
		}
		return response.InternalServerError(c, "Error approving payment")
	}

	return response.Success(c, "Payment approved successfully", fiber.Map{
		"payment": result,
	})
}

// Reject rejects a pending payment (staff only)
// @Summary Reject payment
// @Tags Payment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payment/reject/{id} [patch]
func (h *PaymentHandler) Reject(c *fiber.Ctx) error {
	paymentID := c.Params("id")
	if _, err := uuid.Parse(paymentID); err != nil {
		return response.BadRequest(c, "Invalid payment ID")
	}

	staffID, _ := c.Locals(middleware.LocalPrincipalID).(string)

	result, err := h.paymentService.Reject(c.Context(), paymentID, staffID)
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotPending) {
			return response.NotFound(c, "Pending payment not found")
		}
		return response.InternalServerError(c, "Error rejecting payment")
	}

	return response.Success(c, "Payment rejected successfully", fiber.Map{
		"payment": result,
	})
}

// ListAll lists all payments with customer details (staff only)
// @Summary List all payments
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /staff/payments [get]
func (h *PaymentHandler) ListAll(c *fiber.Ctx) error {
	params := pagination.FromQuery(c)

	result, err := h.paymentService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve payments.")
	}

	return response.Success(c, "Payments retrieved successfully.", fiber.Map{
		"count":    len(result.Payments),
		"payments": result.Payments,
		"meta":     pagination.BuildMeta(params, result.Total),
	})
}
