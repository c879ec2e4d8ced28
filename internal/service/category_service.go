package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hsms-be/internal/dto"
	"hsms-be/internal/entity"
	"hsms-be/internal/pkg/logger"
	"hsms-be/internal/repository/memory"
	"hsms-be/internal/repository/specification"
	"hsms-be/internal/repository/unitofwork"
)

var categorySortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
}

type ICategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, categoryId uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, categoryId uuid.UUID) error
	ToggleActive(ctx context.Context, categoryId uuid.UUID) (*dto.CategoryResponse, error)
	GetById(ctx context.Context, categoryId uuid.UUID) (*dto.CategoryResponse, error)
	List(ctx context.Context, query *dto.ListCategoriesQuery) ([]*dto.CategoryResponse, map[string]interface{}, error)
	ListActive(ctx context.Context) ([]*dto.CategoryResponse, error)
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.CategoryCache
	log        logger.ILogger
}

func NewCategoryService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.CategoryCache,
	log logger.ILogger,
) ICategoryService {
	return &categoryService{
		uowFactory: uowFactory,
		cache:      cache,
		log:        log,
	}
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Category name is required")
	}
	slug := req.Slug
	if slug == "" {
		slug = slugify(name)
	} else {
		slug = slugify(slug)
	}

	category := &entity.ServiceCategory{
		Name:           name,
		Slug:           slug,
		Description:    req.Description,
		Icon:           req.Icon,
		RequiredSkills: normalizeList(req.RequiredSkills),
		IsActive:       true,
	}
	if req.PriceRange != nil {
		if req.PriceRange.Min > 0 && req.PriceRange.Max > 0 && req.PriceRange.Min >= req.PriceRange.Max {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Price range min must be less than max")
		}
		category.PriceRange = entity.PriceRange{
			Min:  req.PriceRange.Min,
			Max:  req.PriceRange.Max,
			Unit: req.PriceRange.Unit,
		}
	}
	for _, cs := range req.CommonServices {
		if strings.TrimSpace(cs.Name) == "" {
			continue
		}
		category.CommonServices = append(category.CommonServices, entity.CommonService{
			Name:         strings.TrimSpace(cs.Name),
			TypicalPrice: cs.TypicalPrice,
			Duration:     cs.Duration,
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CategoryRepository().FindOne(ctx, specification.Filter("name", name))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing, err = uow.CategoryRepository().FindOne(ctx, specification.Filter("slug", slug))
		if err != nil {
			return nil, err
		}
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "A category with this name or slug already exists")
	}

	if err := uow.CategoryRepository().Create(ctx, category); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	s.log.Info("category", "Category created", map[string]interface{}{
		"category_id": category.Id,
		"slug":        category.Slug,
	})
	return categoryToResponse(category), nil
}

func (s *categoryService) Update(ctx context.Context, categoryId uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: categoryId})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Category not found")
	}

	if req.Name != "" {
		name := strings.TrimSpace(req.Name)
		if name != category.Name {
			other, err := uow.CategoryRepository().FindOne(ctx, specification.Filter("name", name))
			if err != nil {
				return nil, err
			}
			if other != nil && other.Id != category.Id {
				return nil, fiber.NewError(fiber.StatusBadRequest, "A category with this name already exists")
			}
			category.Name = name
		}
	}
	if req.Slug != "" {
		slug := slugify(req.Slug)
		if slug != category.Slug {
			other, err := uow.CategoryRepository().FindOne(ctx, specification.Filter("slug", slug))
			if err != nil {
				return nil, err
			}
			if other != nil && other.Id != category.Id {
				return nil, fiber.NewError(fiber.StatusBadRequest, "A category with this slug already exists")
			}
			category.Slug = slug
		}
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.PriceRange != nil {
		if req.PriceRange.Min > 0 && req.PriceRange.Max > 0 && req.PriceRange.Min >= req.PriceRange.Max {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Price range min must be less than max")
		}
		category.PriceRange = entity.PriceRange{
			Min:  req.PriceRange.Min,
			Max:  req.PriceRange.Max,
			Unit: req.PriceRange.Unit,
		}
	}
	if req.CommonServices != nil {
		category.CommonServices = category.CommonServices[:0]
		for _, cs := range req.CommonServices {
			if strings.TrimSpace(cs.Name) == "" {
				continue
			}
			category.CommonServices = append(category.CommonServices, entity.CommonService{
				Name:         strings.TrimSpace(cs.Name),
				TypicalPrice: cs.TypicalPrice,
				Duration:     cs.Duration,
			})
		}
	}
	if req.RequiredSkills != nil {
		category.RequiredSkills = normalizeList(req.RequiredSkills)
	}

	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return categoryToResponse(category), nil
}

// Delete removes a category outright. It refuses while open requests still
// reference the category; deactivation is the way to retire one in use.
func (s *categoryService) Delete(ctx context.Context, categoryId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: categoryId})
	if err != nil {
		return err
	}
	if category == nil {
		return fiber.NewError(fiber.StatusNotFound, "Category not found")
	}

	open, err := uow.RequestRepository().Count(ctx,
		specification.ReferencesCategory{CategoryID: categoryId},
		specification.NonTerminal{},
	)
	if err != nil {
		return err
	}
	if open > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Cannot delete category with %d open service requests. Deactivate it instead.", open))
	}

	if err := uow.CategoryRepository().Delete(ctx, categoryId); err != nil {
		return err
	}
	s.cache.Invalidate()

	s.log.Info("category", "Category deleted", map[string]interface{}{
		"category_id": categoryId,
	})
	return nil
}

func (s *categoryService) ToggleActive(ctx context.Context, categoryId uuid.UUID) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: categoryId})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Category not found")
	}

	category.IsActive = !category.IsActive
	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return categoryToResponse(category), nil
}

func (s *categoryService) GetById(ctx context.Context, categoryId uuid.UUID) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: categoryId})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Category not found")
	}
	return categoryToResponse(category), nil
}

func (s *categoryService) List(ctx context.Context, query *dto.ListCategoriesQuery) ([]*dto.CategoryResponse, map[string]interface{}, error) {
	query.Normalize()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var filters []specification.Specification
	if query.IsActive != nil {
		filters = append(filters, specification.IsActive{Value: *query.IsActive})
	}

	total, err := uow.CategoryRepository().Count(ctx, filters...)
	if err != nil {
		return nil, nil, err
	}

	column, ok := categorySortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	listSpecs := append(filters,
		specification.OrderBy{Field: column, Desc: query.Order == "desc"},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset()},
	)
	categories, err := uow.CategoryRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, categoryToResponse(c))
	}
	return responses, dto.Paginate(query.Page, query.Limit, total, "totalCategories"), nil
}

// ListActive serves the public category list through the TTL cache; admin
// mutations invalidate it.
func (s *categoryService) ListActive(ctx context.Context) ([]*dto.CategoryResponse, error) {
	if cached, found := s.cache.GetActive(); found {
		return categoriesToResponses(cached), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.CategoryRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	s.cache.SaveActive(categories)
	return categoriesToResponses(categories), nil
}

func categoriesToResponses(categories []*entity.ServiceCategory) []*dto.CategoryResponse {
	responses := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, categoryToResponse(c))
	}
	return responses
}

func categoryToResponse(c *entity.ServiceCategory) *dto.CategoryResponse {
	resp := &dto.CategoryResponse{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		PriceRange: dto.PriceRangeInput{
			Min:  c.PriceRange.Min,
			Max:  c.PriceRange.Max,
			Unit: c.PriceRange.Unit,
		},
		RequiredSkills: c.RequiredSkills,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	for _, cs := range c.CommonServices {
		resp.CommonServices = append(resp.CommonServices, dto.CommonServiceInput{
			Name:         cs.Name,
			TypicalPrice: cs.TypicalPrice,
			Duration:     cs.Duration,
		})
	}
	return resp
}
