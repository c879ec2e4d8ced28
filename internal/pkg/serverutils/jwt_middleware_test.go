package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsms-be/internal/constant"
)

const testSecret = "test-secret"

func protectedApp(roles ...constant.Role) (*fiber.App, *uuid.UUID, *constant.Role) {
	var gotId uuid.UUID
	var gotRole constant.Role

	app := fiber.New()
	app.Get("/protected", JwtMiddleware(testSecret, roles...), func(ctx *fiber.Ctx) error {
		gotId = AccountId(ctx)
		gotRole = AccountRole(ctx)
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app, &gotId, &gotRole
}

func TestJwtMiddlewareRoundTrip(t *testing.T) {
	accountId := uuid.New()
	token, err := GenerateToken(testSecret, accountId, constant.RoleCustomer, time.Hour)
	require.NoError(t, err)

	app, gotId, gotRole := protectedApp(constant.RoleCustomer)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, accountId, *gotId)
	assert.Equal(t, constant.RoleCustomer, *gotRole)
}

func TestJwtMiddlewareMissingToken(t *testing.T) {
	app, _, _ := protectedApp()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareWrongSecret(t *testing.T) {
	token, err := GenerateToken("another-secret", uuid.New(), constant.RoleCustomer, time.Hour)
	require.NoError(t, err)

	app, _, _ := protectedApp()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareExpiredToken(t *testing.T) {
	token, err := GenerateToken(testSecret, uuid.New(), constant.RoleCustomer, -time.Minute)
	require.NoError(t, err)

	app, _, _ := protectedApp()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareRoleDenied(t *testing.T) {
	token, err := GenerateToken(testSecret, uuid.New(), constant.RoleCustomer, time.Hour)
	require.NoError(t, err)

	app, _, _ := protectedApp(constant.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestJwtMiddlewareMultipleRolesAllowed(t *testing.T) {
	token, err := GenerateToken(testSecret, uuid.New(), constant.RoleProvider, time.Hour)
	require.NoError(t, err)

	app, _, gotRole := protectedApp(constant.RoleCustomer, constant.RoleProvider)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, constant.RoleProvider, *gotRole)
}
