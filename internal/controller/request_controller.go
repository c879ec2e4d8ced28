package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hsms-be/internal/constant"
	"hsms-be/internal/dto"
	"hsms-be/internal/pkg/serverutils"
	"hsms-be/internal/service"
)

type IRequestController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Reschedule(ctx *fiber.Ctx) error
	ListOpen(ctx *fiber.Ctx) error
	ListAssigned(ctx *fiber.Ctx) error
	Accept(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type requestController struct {
	requestService service.IRequestService
	jwtSecret      string
}

func NewRequestController(requestService service.IRequestService, jwtSecret string) IRequestController {
	return &requestController{
		requestService: requestService,
		jwtSecret:      jwtSecret,
	}
}

func (c *requestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/service-request")

	// Role middleware is attached per route. A group-level Use on this prefix
	// would run for every route under it, customer and provider alike.
	customer := serverutils.JwtMiddleware(c.jwtSecret, constant.RoleCustomer)
	provider := serverutils.JwtMiddleware(c.jwtSecret, constant.RoleProvider)

	h.Post("", customer, c.Create)
	h.Get("my-requests", customer, c.ListMine)
	h.Get("open", provider, c.ListOpen)
	h.Get("assigned", provider, c.ListAssigned)
	h.Post(":id/cancel", customer, c.Cancel)
	h.Post(":id/reschedule", customer, c.Reschedule)
	h.Post(":id/accept", provider, c.Accept)
	h.Post(":id/start", provider, c.Start)
	h.Post(":id/complete", provider, c.Complete)

	// Param route registered last so the literal GET routes keep priority.
	h.Get(":id", customer, c.Show)
}

func (c *requestController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requestService.Create(ctx.Context(), serverutils.AccountId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Service request created successfully", res))
}

func (c *requestController) ListMine(ctx *fiber.Ctx) error {
	var query dto.ListRequestsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	requests, pagination, stats, err := c.requestService.ListMine(ctx.Context(), serverutils.AccountId(ctx), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service requests retrieved successfully", fiber.Map{
		"requests":   requests,
		"pagination": pagination,
		"statistics": stats,
	}))
}

func (c *requestController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	res, err := c.requestService.GetById(ctx.Context(), serverutils.AccountId(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service request retrieved successfully", res))
}

func (c *requestController) Cancel(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	// The reason body is optional.
	var req dto.CancelRequestRequest
	_ = ctx.BodyParser(&req)

	res, notified, err := c.requestService.Cancel(ctx.Context(), serverutils.AccountId(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service request cancelled successfully", fiber.Map{
		"request":              res,
		"notificationsCreated": notified,
	}))
}

func (c *requestController) Reschedule(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	var req dto.RescheduleRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, notified, err := c.requestService.Reschedule(ctx.Context(), serverutils.AccountId(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service request rescheduled successfully", fiber.Map{
		"request":              res,
		"notificationsCreated": notified,
	}))
}

func (c *requestController) ListOpen(ctx *fiber.Ctx) error {
	var query dto.ListRequestsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	requests, pagination, err := c.requestService.ListOpen(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Open service requests retrieved successfully", fiber.Map{
		"requests":   requests,
		"pagination": pagination,
	}))
}

func (c *requestController) ListAssigned(ctx *fiber.Ctx) error {
	var query dto.ListRequestsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	requests, pagination, err := c.requestService.ListAssigned(ctx.Context(), serverutils.AccountId(ctx), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Assigned service requests retrieved successfully", fiber.Map{
		"requests":   requests,
		"pagination": pagination,
	}))
}

func (c *requestController) Accept(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	res, err := c.requestService.Accept(ctx.Context(), serverutils.AccountId(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service request accepted successfully", res))
}

func (c *requestController) Start(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	res, err := c.requestService.Start(ctx.Context(), serverutils.AccountId(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service started successfully", res))
}

func (c *requestController) Complete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	var req dto.CompleteRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requestService.Complete(ctx.Context(), serverutils.AccountId(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Service completed successfully", res))
}
