package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hsms-be/internal/constant"
	"hsms-be/internal/dto"
	"hsms-be/internal/entity"
	"hsms-be/internal/pkg/logger"
	"hsms-be/internal/pkg/serverutils"
	"hsms-be/internal/repository/specification"
	"hsms-be/internal/repository/unitofwork"
	"hsms-be/pkg/events"
)

type IAdminService interface {
	Register(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.AdminResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, adminId uuid.UUID) (*dto.AdminResponse, error)

	ListCustomers(ctx context.Context, query *dto.ListQuery) ([]*dto.CustomerResponse, map[string]interface{}, error)
	ListProviders(ctx context.Context, query *dto.ListProvidersQuery) ([]*dto.ProviderResponse, map[string]interface{}, error)
	GetProvider(ctx context.Context, providerId uuid.UUID) (*dto.ProviderResponse, error)
	SuspendProvider(ctx context.Context, providerId uuid.UUID, req *dto.SuspendProviderRequest) error
	UnsuspendProvider(ctx context.Context, providerId uuid.UUID) error
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	log        logger.ILogger
	jwtSecret  string
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
	jwtSecret string,
) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
		jwtSecret:  jwtSecret,
	}
}

// Register creates the moderation account. The system holds exactly one admin;
// the count check and insert run inside one transaction.
func (s *adminService) Register(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	count, err := uow.AdminRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= 1 {
		return nil, fiber.NewError(fiber.StatusForbidden, "An admin account already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &entity.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := uow.AdminRepository().Create(ctx, admin); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("admin", "Admin registered", map[string]interface{}{
		"admin_id": admin.Id,
	})
	return adminToResponse(admin), nil
}

func (s *adminService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Admin not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid password")
	}

	now := time.Now()
	admin.LastLogin = &now
	if err := uow.AdminRepository().Update(ctx, admin); err != nil {
		return nil, err
	}

	token, err := serverutils.GenerateToken(s.jwtSecret, admin.Id, constant.RoleAdmin, tokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.LoginResponse{
			Id:        admin.Id,
			Name:      admin.Name,
			Email:     admin.Email,
			LastLogin: admin.LastLogin,
		},
	}, nil
}

func (s *adminService) GetProfile(ctx context.Context, adminId uuid.UUID) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Admin not found")
	}
	return adminToResponse(admin), nil
}

func (s *adminService) ListCustomers(ctx context.Context, query *dto.ListQuery) ([]*dto.CustomerResponse, map[string]interface{}, error) {
	query.Normalize()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.CustomerRepository().Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	customers, err := uow.CustomerRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: query.Order == "desc"},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset()},
	)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, customerToResponse(c))
	}
	return responses, dto.Paginate(query.Page, query.Limit, total, "totalCustomers"), nil
}

func (s *adminService) ListProviders(ctx context.Context, query *dto.ListProvidersQuery) ([]*dto.ProviderResponse, map[string]interface{}, error) {
	query.Normalize()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var filters []specification.Specification
	if query.IsActive != nil {
		filters = append(filters, specification.IsActive{Value: *query.IsActive})
	}
	if query.IsSuspended != nil {
		filters = append(filters, specification.IsSuspended{Value: *query.IsSuspended})
	}

	total, err := uow.ProviderRepository().Count(ctx, filters...)
	if err != nil {
		return nil, nil, err
	}

	listSpecs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: query.Order == "desc"},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset()},
	)
	providers, err := uow.ProviderRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		responses = append(responses, providerToResponse(p))
	}
	return responses, dto.Paginate(query.Page, query.Limit, total, "totalProviders"), nil
}

func (s *adminService) GetProvider(ctx context.Context, providerId uuid.UUID) (*dto.ProviderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx, specification.ByID{ID: providerId})
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service provider not found")
	}
	return providerToResponse(provider), nil
}

func (s *adminService) SuspendProvider(ctx context.Context, providerId uuid.UUID, req *dto.SuspendProviderRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx, specification.ByID{ID: providerId})
	if err != nil {
		return err
	}
	if provider == nil {
		return fiber.NewError(fiber.StatusNotFound, "Service provider not found")
	}
	if provider.IsSuspended {
		return fiber.NewError(fiber.StatusBadRequest, "Provider is already suspended")
	}

	provider.IsSuspended = true
	provider.SuspensionReason = &req.Reason
	provider.AvailabilityStatus = constant.AvailabilityOffline
	if err := uow.ProviderRepository().Update(ctx, provider); err != nil {
		return err
	}

	evt := events.NewBaseEvent(events.TypeProviderSuspended, map[string]interface{}{
		"email":  provider.Email,
		"name":   provider.Name,
		"reason": req.Reason,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.log.Error("admin", "Failed to queue suspension mail", map[string]interface{}{
			"provider_id": provider.Id,
			"error":       err.Error(),
		})
	}

	s.log.Warn("admin", "Provider suspended", map[string]interface{}{
		"provider_id": provider.Id,
		"reason":      req.Reason,
	})
	return nil
}

func (s *adminService) UnsuspendProvider(ctx context.Context, providerId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx, specification.ByID{ID: providerId})
	if err != nil {
		return err
	}
	if provider == nil {
		return fiber.NewError(fiber.StatusNotFound, "Service provider not found")
	}
	if !provider.IsSuspended {
		return fiber.NewError(fiber.StatusBadRequest, "Provider is not suspended")
	}

	provider.IsSuspended = false
	provider.SuspensionReason = nil
	if err := uow.ProviderRepository().Update(ctx, provider); err != nil {
		return err
	}

	evt := events.NewBaseEvent(events.TypeProviderUnsuspended, map[string]interface{}{
		"email": provider.Email,
		"name":  provider.Name,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.log.Error("admin", "Failed to queue unsuspension mail", map[string]interface{}{
			"provider_id": provider.Id,
			"error":       err.Error(),
		})
	}

	s.log.Info("admin", "Provider suspension lifted", map[string]interface{}{
		"provider_id": provider.Id,
	})
	return nil
}

func adminToResponse(a *entity.Admin) *dto.AdminResponse {
	return &dto.AdminResponse{
		Id:        a.Id,
		Name:      a.Name,
		Email:     a.Email,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}
