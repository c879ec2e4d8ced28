package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsms-be/internal/dto"
	"hsms-be/internal/service"
)

type stubProviderService struct {
	service.IProviderService
}

func (stubProviderService) GetPublicProfile(context.Context, uuid.UUID) (*dto.ProviderResponse, error) {
	return &dto.ProviderResponse{}, nil
}

func (stubProviderService) List(context.Context, *dto.ListQuery) ([]*dto.ProviderResponse, map[string]interface{}, error) {
	return []*dto.ProviderResponse{}, map[string]interface{}{}, nil
}

func providerTestApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewProviderController(stubProviderService{}, routeTestSecret).RegisterRoutes(api)
	return app
}

func TestProviderPublicProfileNeedsNoToken(t *testing.T) {
	app := providerTestApp()
	target := "/api/service-provider/" + uuid.NewString()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProviderPublicListNeedsNoToken(t *testing.T) {
	app := providerTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/service-provider/list", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProviderProfileRequiresToken(t *testing.T) {
	app := providerTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/service-provider/profile", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
