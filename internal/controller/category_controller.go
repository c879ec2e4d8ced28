package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hsms-be/internal/constant"
	"hsms-be/internal/dto"
	"hsms-be/internal/pkg/serverutils"
	"hsms-be/internal/service"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	ListActive(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ToggleActive(ctx *fiber.Ctx) error
}

type categoryController struct {
	categoryService service.ICategoryService
	jwtSecret       string
}

func NewCategoryController(categoryService service.ICategoryService, jwtSecret string) ICategoryController {
	return &categoryController{
		categoryService: categoryService,
		jwtSecret:       jwtSecret,
	}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/service-categories")
	h.Get("", c.ListActive)

	// Role middleware is attached per route so the public param route below
	// stays reachable without a token.
	admin := serverutils.JwtMiddleware(c.jwtSecret, constant.RoleAdmin)
	h.Get("all", admin, c.List)
	h.Post("", admin, c.Create)
	h.Put(":id", admin, c.Update)
	h.Delete(":id", admin, c.Delete)
	h.Patch(":id/toggle", admin, c.ToggleActive)

	h.Get(":id", c.Show)
}

func (c *categoryController) ListActive(ctx *fiber.Ctx) error {
	res, err := c.categoryService.ListActive(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories retrieved successfully", res))
}

func (c *categoryController) List(ctx *fiber.Ctx) error {
	var query dto.ListCategoriesQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	categories, pagination, err := c.categoryService.List(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories retrieved successfully", fiber.Map{
		"categories": categories,
		"pagination": pagination,
	}))
}

func (c *categoryController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
	}

	res, err := c.categoryService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category retrieved successfully", res))
}

func (c *categoryController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.categoryService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Category created successfully", res))
}

func (c *categoryController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.categoryService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category updated successfully", res))
}

func (c *categoryController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
	}

	if err := c.categoryService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Category deleted successfully", nil))
}

func (c *categoryController) ToggleActive(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
	}

	res, err := c.categoryService.ToggleActive(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category status updated successfully", res))
}
