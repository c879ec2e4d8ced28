package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hsms-be/internal/constant"
	"hsms-be/internal/dto"
	"hsms-be/internal/pkg/serverutils"
	"hsms-be/internal/service"
)

type IProviderController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	ToggleAvailability(ctx *fiber.Ctx) error
	Deactivate(ctx *fiber.Ctx) error
	Reactivate(ctx *fiber.Ctx) error
	RequestReactivation(ctx *fiber.Ctx) error
	ConfirmReactivation(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	GetPublicProfile(ctx *fiber.Ctx) error
}

type providerController struct {
	providerService service.IProviderService
	jwtSecret       string
}

func NewProviderController(providerService service.IProviderService, jwtSecret string) IProviderController {
	return &providerController{
		providerService: providerService,
		jwtSecret:       jwtSecret,
	}
}

func (c *providerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/service-provider")
	h.Post("register", c.Register)
	h.Post("login", c.Login)
	h.Post("request-reactivation", c.RequestReactivation)
	h.Post("confirm-reactivation", c.ConfirmReactivation)
	h.Get("list", c.List)
	h.Get("search", c.Search)

	// Role middleware is attached per route so the public param route below
	// stays reachable without a token.
	auth := serverutils.JwtMiddleware(c.jwtSecret, constant.RoleProvider)
	h.Get("profile", auth, c.GetProfile)
	h.Put("profile", auth, c.UpdateProfile)
	h.Put("availability", auth, c.ToggleAvailability)
	h.Post("deactivate", auth, c.Deactivate)
	h.Post("reactivate", auth, c.Reactivate)

	// Param route registered last so "list", "search" and "profile" keep priority.
	h.Get(":id", c.GetPublicProfile)
}

func (c *providerController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterProviderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.providerService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Service provider registered successfully", res))
}

func (c *providerController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.providerService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *providerController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.providerService.GetProfile(ctx.Context(), serverutils.AccountId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile retrieved successfully", res))
}

func (c *providerController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProviderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.providerService.UpdateProfile(ctx.Context(), serverutils.AccountId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated successfully", res))
}

func (c *providerController) ToggleAvailability(ctx *fiber.Ctx) error {
	var req dto.ToggleAvailabilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.providerService.ToggleAvailability(ctx.Context(), serverutils.AccountId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Availability updated successfully", res))
}

func (c *providerController) Deactivate(ctx *fiber.Ctx) error {
	if err := c.providerService.Deactivate(ctx.Context(), serverutils.AccountId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account deactivated successfully", nil))
}

func (c *providerController) Reactivate(ctx *fiber.Ctx) error {
	res, err := c.providerService.Reactivate(ctx.Context(), serverutils.AccountId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Account reactivated successfully", res))
}

func (c *providerController) RequestReactivation(ctx *fiber.Ctx) error {
	var req dto.ReactivationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	msg, err := c.providerService.RequestReactivation(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any](msg, nil))
}

func (c *providerController) ConfirmReactivation(ctx *fiber.Ctx) error {
	var req dto.ConfirmReactivationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.providerService.ConfirmReactivation(ctx.Context(), req.Token); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account reactivated successfully. You can now log in.", nil))
}

func (c *providerController) List(ctx *fiber.Ctx) error {
	var query dto.ListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	providers, pagination, err := c.providerService.List(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Providers retrieved successfully", fiber.Map{
		"providers":  providers,
		"pagination": pagination,
	}))
}

func (c *providerController) Search(ctx *fiber.Ctx) error {
	var query dto.SearchProvidersQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	providers, pagination, err := c.providerService.Search(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Providers retrieved successfully", fiber.Map{
		"providers":  providers,
		"pagination": pagination,
	}))
}

func (c *providerController) GetPublicProfile(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid provider id")
	}

	res, err := c.providerService.GetPublicProfile(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Provider retrieved successfully", res))
}
