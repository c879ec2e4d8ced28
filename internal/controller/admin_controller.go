package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hsms-be/internal/constant"
	"hsms-be/internal/dto"
	"hsms-be/internal/pkg/serverutils"
	"hsms-be/internal/service"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	ListCustomers(ctx *fiber.Ctx) error
	ListProviders(ctx *fiber.Ctx) error
	GetProvider(ctx *fiber.Ctx) error
	SuspendProvider(ctx *fiber.Ctx) error
	UnsuspendProvider(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
	jwtSecret    string
}

func NewAdminController(adminService service.IAdminService, jwtSecret string) IAdminController {
	return &adminController{
		adminService: adminService,
		jwtSecret:    jwtSecret,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Post("register", c.Register)
	h.Post("login", c.Login)

	p := h.Group("", serverutils.JwtMiddleware(c.jwtSecret, constant.RoleAdmin))
	p.Get("profile", c.GetProfile)
	p.Get("customers", c.ListCustomers)
	p.Get("service-providers", c.ListProviders)
	p.Get("service-providers/:id", c.GetProvider)
	p.Post("service-providers/:id/suspend", c.SuspendProvider)
	p.Post("service-providers/:id/unsuspend", c.UnsuspendProvider)
}

func (c *adminController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Admin registered successfully", res))
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *adminController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetProfile(ctx.Context(), serverutils.AccountId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile retrieved successfully", res))
}

func (c *adminController) ListCustomers(ctx *fiber.Ctx) error {
	var query dto.ListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	customers, pagination, err := c.adminService.ListCustomers(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Customers retrieved successfully", fiber.Map{
		"customers":  customers,
		"pagination": pagination,
	}))
}

func (c *adminController) ListProviders(ctx *fiber.Ctx) error {
	var query dto.ListProvidersQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	providers, pagination, err := c.adminService.ListProviders(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service providers retrieved successfully", fiber.Map{
		"providers":  providers,
		"pagination": pagination,
	}))
}

func (c *adminController) GetProvider(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid provider id")
	}

	res, err := c.adminService.GetProvider(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service provider retrieved successfully", res))
}

func (c *adminController) SuspendProvider(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid provider id")
	}

	var req dto.SuspendProviderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.SuspendProvider(ctx.Context(), id, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Service provider suspended successfully", nil))
}

func (c *adminController) UnsuspendProvider(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid provider id")
	}

	if err := c.adminService.UnsuspendProvider(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Service provider suspension lifted", nil))
}
