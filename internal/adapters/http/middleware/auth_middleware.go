package middleware

import (
	"strings"

	"securepay-portal/internal/adapters/persistence/models"
	"securepay-portal/internal/adapters/persistence/repositories"
	"securepay-portal/internal/config"
	"securepay-portal/internal/pkg/jwt"
	"securepay-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Context local keys set by AuthMiddleware
const (
	LocalPrincipalID = "principalID"
	LocalUsername    = "username"
	LocalRole        = "role"
	LocalFullName    = "fullName"
)

// AuthMiddleware extracts and verifies the bearer token and attaches the
// resolved claims to the request context
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Access token required.")
		}
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.ValidateToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired.")
			}
			return response.Unauthorized(c, "Invalid access token.")
		}

		c.Locals(LocalPrincipalID, claims.Subject)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalFullName, claims.FullName)

		return c.Next()
	}
}

// RequireRole gates a route by the role claim
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claimed, ok := c.Locals(LocalRole).(string)
		if !ok || claimed == "" {
			return response.Forbidden(c, "Access denied. No role assigned.")
		}
		if claimed != role {
			return response.Forbidden(c, "Access denied. Insufficient permissions.")
		}
		return c.Next()
	}
}

// CustomerOnly allows only customer tokens
func CustomerOnly() fiber.Handler {
	return RequireRole(jwt.RoleCustomer)
}

// ApprovedStaffOnly allows only staff tokens whose account is still
// approved in the store. The token's role claim alone is not trusted: a
// staff account can be rejected after the token was issued, and that
// must take effect immediately rather than at token expiry.
func ApprovedStaffOnly(staffRepo repositories.StaffRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claimed, ok := c.Locals(LocalRole).(string)
		if !ok || claimed != jwt.RoleStaff {
			return response.Forbidden(c, "Access denied. Staff only.")
		}

		staffID, ok := c.Locals(LocalPrincipalID).(string)
		if !ok || staffID == "" {
			return response.Unauthorized(c, "Unauthorized")
		}

		staff, err := staffRepo.GetByID(c.Context(), staffID)
		if err != nil {
			return response.Forbidden(c, "Access denied. Staff only.")
		}
		if staff.Status != models.StatusApproved {
			return response.Forbidden(c, "Access denied. Staff only.")
		}

		return c.Next()
	}
}
