package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hsms-be/internal/constant"
	"hsms-be/internal/dto"
	"hsms-be/internal/pkg/serverutils"
	"hsms-be/internal/service"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	ListMine(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
	MarkAllRead(ctx *fiber.Ctx) error
}

type notificationController struct {
	notificationService service.INotificationService
	jwtSecret           string
}

func NewNotificationController(notificationService service.INotificationService, jwtSecret string) INotificationController {
	return &notificationController{
		notificationService: notificationService,
		jwtSecret:           jwtSecret,
	}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notifications", serverutils.JwtMiddleware(c.jwtSecret, constant.RoleCustomer, constant.RoleProvider))
	h.Get("", c.ListMine)
	h.Patch("read-all", c.MarkAllRead)
	h.Patch(":id/read", c.MarkRead)
}

func (c *notificationController) ListMine(ctx *fiber.Ctx) error {
	var query dto.ListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	notifications, pagination, unread, err := c.notificationService.ListMine(
		ctx.Context(), serverutils.AccountId(ctx), serverutils.AccountRole(ctx), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Notifications retrieved successfully", fiber.Map{
		"notifications": notifications,
		"pagination":    pagination,
		"unreadCount":   unread,
	}))
}

func (c *notificationController) MarkRead(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid notification id")
	}

	if err := c.notificationService.MarkRead(ctx.Context(), id, serverutils.AccountId(ctx), serverutils.AccountRole(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Notification marked as read", nil))
}

func (c *notificationController) MarkAllRead(ctx *fiber.Ctx) error {
	updated, err := c.notificationService.MarkAllRead(ctx.Context(), serverutils.AccountId(ctx), serverutils.AccountRole(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("All notifications marked as read", fiber.Map{
		"updated": updated,
	}))
}
