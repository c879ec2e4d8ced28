package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsms-be/internal/constant"
	"hsms-be/internal/dto"
	"hsms-be/internal/pkg/serverutils"
	"hsms-be/internal/service"
)

const routeTestSecret = "route-test-secret"

type stubRequestService struct {
	service.IRequestService
}

func (stubRequestService) ListOpen(context.Context, *dto.ListRequestsQuery) ([]*dto.RequestResponse, map[string]interface{}, error) {
	return []*dto.RequestResponse{}, map[string]interface{}{}, nil
}

func (stubRequestService) GetById(context.Context, uuid.UUID, uuid.UUID) (*dto.RequestDetailResponse, error) {
	return &dto.RequestDetailResponse{}, nil
}

func (stubRequestService) Cancel(context.Context, uuid.UUID, uuid.UUID, *dto.CancelRequestRequest) (*dto.RequestResponse, int, error) {
	return &dto.RequestResponse{}, 2, nil
}

func requestTestApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewRequestController(stubRequestService{}, routeTestSecret).RegisterRoutes(api)
	return app
}

func bearerRequest(t *testing.T, method, target string, role constant.Role) *http.Request {
	t.Helper()
	token, err := serverutils.GenerateToken(routeTestSecret, uuid.New(), role, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRequestRoutesProviderCanListOpen(t *testing.T) {
	app := requestTestApp()

	resp, err := app.Test(bearerRequest(t, http.MethodGet, "/api/service-request/open", constant.RoleProvider))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequestRoutesCustomerCanShowById(t *testing.T) {
	app := requestTestApp()
	target := "/api/service-request/" + uuid.NewString()

	resp, err := app.Test(bearerRequest(t, http.MethodGet, target, constant.RoleCustomer))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequestRoutesRoleSeparation(t *testing.T) {
	app := requestTestApp()

	resp, err := app.Test(bearerRequest(t, http.MethodGet, "/api/service-request/open", constant.RoleCustomer))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(bearerRequest(t, http.MethodGet, "/api/service-request/my-requests", constant.RoleProvider))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequestRoutesRequireToken(t *testing.T) {
	app := requestTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/service-request/open", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCancelEchoesNotificationCount(t *testing.T) {
	app := requestTestApp()
	target := "/api/service-request/" + uuid.NewString() + "/cancel"

	resp, err := app.Test(bearerRequest(t, http.MethodPost, target, constant.RoleCustomer))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"notificationsCreated":2`)
}
