package serverutils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(registerPayload{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestValidateRequestShortPassword(t *testing.T) {
	err := ValidateRequest(registerPayload{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "abc",
	})
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "Password must be at least 6 characters")
}

func TestValidateRequestMultipleFailures(t *testing.T) {
	err := ValidateRequest(registerPayload{Email: "not-an-email"})
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.True(t, errors.As(err, &fiberErr))
	assert.Contains(t, fiberErr.Message, "Name is required")
	assert.Contains(t, fiberErr.Message, "Email must be a valid email")
}
