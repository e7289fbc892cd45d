package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"securepay-portal/internal/pkg/bruteforce"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginApp(guard bruteforce.Guard) *fiber.App {
	app := fiber.New()
	app.Post("/login", LoginGuard(guard), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestLoginGuardAdmits(t *testing.T) {
	guard := bruteforce.NewMemoryGuard(6, 15*time.Minute)
	app := newLoginApp(guard)

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLoginGuardBlocksAfterFailures(t *testing.T) {
	guard := bruteforce.NewMemoryGuard(2, 15*time.Minute)
	app := newLoginApp(guard)

	// fiber's test requests originate from 0.0.0.0
	guard.Fail("0.0.0.0")
	guard.Fail("0.0.0.0")

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))
}

func TestLoginGuardRecoversAfterReset(t *testing.T) {
	guard := bruteforce.NewMemoryGuard(2, 15*time.Minute)
	app := newLoginApp(guard)

	guard.Fail("0.0.0.0")
	guard.Fail("0.0.0.0")
	guard.Reset("0.0.0.0")

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
