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

type stubCategoryService struct {
	service.ICategoryService
}

func (stubCategoryService) GetById(context.Context, uuid.UUID) (*dto.CategoryResponse, error) {
	return &dto.CategoryResponse{}, nil
}

func (stubCategoryService) ListActive(context.Context) ([]*dto.CategoryResponse, error) {
	return []*dto.CategoryResponse{}, nil
}

func categoryTestApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewCategoryController(stubCategoryService{}, routeTestSecret).RegisterRoutes(api)
	return app
}

func TestCategoryShowNeedsNoToken(t *testing.T) {
	app := categoryTestApp()
	target := "/api/service-categories/" + uuid.NewString()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCategoryListActiveNeedsNoToken(t *testing.T) {
	app := categoryTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/service-categories", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCategoryAdminListRequiresToken(t *testing.T) {
	app := categoryTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/service-categories/all", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
