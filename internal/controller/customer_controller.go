package controller

import (
	"github.com/gofiber/fiber/v2"

	"hsms-be/internal/constant"
	"hsms-be/internal/dto"
	"hsms-be/internal/pkg/serverutils"
	"hsms-be/internal/service"
)

type ICustomerController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	Deactivate(ctx *fiber.Ctx) error
	Reactivate(ctx *fiber.Ctx) error
	RequestReactivation(ctx *fiber.Ctx) error
	ConfirmReactivation(ctx *fiber.Ctx) error
}

type customerController struct {
	customerService service.ICustomerService
	jwtSecret       string
}

func NewCustomerController(customerService service.ICustomerService, jwtSecret string) ICustomerController {
	return &customerController{
		customerService: customerService,
		jwtSecret:       jwtSecret,
	}
}

func (c *customerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/customer")
	h.Post("register", c.Register)
	h.Post("login", c.Login)
	h.Post("request-reactivation", c.RequestReactivation)
	h.Post("confirm-reactivation", c.ConfirmReactivation)

	p := h.Group("", serverutils.JwtMiddleware(c.jwtSecret, constant.RoleCustomer))
	p.Get("profile", c.GetProfile)
	p.Put("profile", c.UpdateProfile)
	p.Post("deactivate", c.Deactivate)
	p.Post("reactivate", c.Reactivate)
}

func (c *customerController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterCustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.customerService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Customer registered successfully", res))
}

func (c *customerController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.customerService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *customerController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.customerService.GetProfile(ctx.Context(), serverutils.AccountId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile retrieved successfully", res))
}

func (c *customerController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateCustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.customerService.UpdateProfile(ctx.Context(), serverutils.AccountId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated successfully", res))
}

func (c *customerController) Deactivate(ctx *fiber.Ctx) error {
	if err := c.customerService.Deactivate(ctx.Context(), serverutils.AccountId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account deactivated successfully", nil))
}

func (c *customerController) Reactivate(ctx *fiber.Ctx) error {
	res, err := c.customerService.Reactivate(ctx.Context(), serverutils.AccountId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Account reactivated successfully", res))
}

func (c *customerController) RequestReactivation(ctx *fiber.Ctx) error {
	var req dto.ReactivationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	msg, err := c.customerService.RequestReactivation(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any](msg, nil))
}

func (c *customerController) ConfirmReactivation(ctx *fiber.Ctx) error {
	var req dto.ConfirmReactivationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.customerService.ConfirmReactivation(ctx.Context(), req.Token); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account reactivated successfully. You can now log in.", nil))
}
