package service

import (
	"context"
	"fmt"
	"strings"
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

// providerSortColumns is the search sort allow-list. Anything else falls back
// to newest-first.
var providerSortColumns = map[string]string{
	"rating":     "average_rating",
	"experience": "experience_years",
	"jobs":       "total_jobs_completed",
	"createdAt":  "created_at",
}

type IProviderService interface {
	Register(ctx context.Context, req *dto.RegisterProviderRequest) (*dto.ProviderResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, providerId uuid.UUID) (*dto.ProviderResponse, error)
	UpdateProfile(ctx context.Context, providerId uuid.UUID, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error)
	ToggleAvailability(ctx context.Context, providerId uuid.UUID, req *dto.ToggleAvailabilityRequest) (*dto.ProviderResponse, error)
	Deactivate(ctx context.Context, providerId uuid.UUID) error
	Reactivate(ctx context.Context, providerId uuid.UUID) (*dto.ProviderResponse, error)
	RequestReactivation(ctx context.Context, req *dto.ReactivationRequest) (string, error)
	ConfirmReactivation(ctx context.Context, token string) error

	GetPublicProfile(ctx context.Context, providerId uuid.UUID) (*dto.ProviderResponse, error)
	List(ctx context.Context, query *dto.ListQuery) ([]*dto.ProviderResponse, map[string]interface{}, error)
	Search(ctx context.Context, query *dto.SearchProvidersQuery) ([]*dto.ProviderResponse, map[string]interface{}, error)
}

type providerService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	log        logger.ILogger
	jwtSecret  string
}

func NewProviderService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
	jwtSecret string,
) IProviderService {
	return &providerService{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
		jwtSecret:  jwtSecret,
	}
}

func (s *providerService) Register(ctx context.Context, req *dto.RegisterProviderRequest) (*dto.ProviderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ProviderRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	provider := &entity.ServiceProvider{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		PasswordHash:       string(hash),
		ProfilePicture:     req.ProfilePicture,
		Bio:                req.Bio,
		Skills:             normalizeList(req.Skills),
		ExperienceYears:    req.ExperienceYears,
		PricingType:        req.PricingType,
		AvailabilityStatus: constant.AvailabilityAvailable,
		IsActive:           true,
	}
	for _, c := range req.Certifications {
		provider.Certifications = append(provider.Certifications, entity.Certification{
			Name:           c.Name,
			IssuedBy:       c.IssuedBy,
			Year:           c.Year,
			CertificateURL: c.CertificateURL,
		})
	}
	if req.WorkingHours != nil {
		provider.WorkingHours = entity.WorkingHours{
			From:    req.WorkingHours.From,
			To:      req.WorkingHours.To,
			DaysOff: req.WorkingHours.DaysOff,
		}
	}
	if req.ServiceArea != nil {
		provider.ServiceArea = entity.ServiceArea{
			Cities: normalizeList(req.ServiceArea.Cities),
			Areas:  normalizeList(req.ServiceArea.Areas),
		}
	}

	if err := uow.ProviderRepository().Create(ctx, provider); err != nil {
		return nil, err
	}

	s.log.Info("provider", "Provider registered", map[string]interface{}{
		"provider_id": provider.Id,
	})
	return providerToResponse(provider), nil
}

func (s *providerService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service provider not found")
	}
	if !provider.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Your account is deactivated. Please reactivate to continue.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(provider.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid password")
	}

	now := time.Now()
	provider.LastLogin = &now
	if err := uow.ProviderRepository().Update(ctx, provider); err != nil {
		return nil, err
	}

	token, err := serverutils.GenerateToken(s.jwtSecret, provider.Id, constant.RoleProvider, tokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.LoginResponse{
			Id:        provider.Id,
			Name:      provider.Name,
			Email:     provider.Email,
			LastLogin: provider.LastLogin,
		},
	}, nil
}

func (s *providerService) GetProfile(ctx context.Context, providerId uuid.UUID) (*dto.ProviderResponse, error) {
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

func (s *providerService) UpdateProfile(ctx context.Context, providerId uuid.UUID, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx, specification.ByID{ID: providerId})
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service provider not found")
	}

	if req.Email != "" && req.Email != provider.Email {
		other, err := uow.ProviderRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Email already in use")
		}
		provider.Email = req.Email
	}
	if req.Name != "" {
		provider.Name = req.Name
	}
	if req.Phone != "" {
		provider.Phone = req.Phone
	}
	if req.Bio != "" {
		provider.Bio = req.Bio
	}
	if req.ProfilePicture != "" {
		provider.ProfilePicture = req.ProfilePicture
	}
	if req.Skills != nil {
		provider.Skills = normalizeList(req.Skills)
	}
	if req.ExperienceYears != nil {
		provider.ExperienceYears = *req.ExperienceYears
	}
	if req.Certifications != nil {
		provider.Certifications = provider.Certifications[:0]
		for _, c := range req.Certifications {
			provider.Certifications = append(provider.Certifications, entity.Certification{
				Name:           c.Name,
				IssuedBy:       c.IssuedBy,
				Year:           c.Year,
				CertificateURL: c.CertificateURL,
			})
		}
	}
	if req.PricingType != "" {
		provider.PricingType = req.PricingType
	}
	if req.WorkingHours != nil {
		provider.WorkingHours = entity.WorkingHours{
			From:    req.WorkingHours.From,
			To:      req.WorkingHours.To,
			DaysOff: req.WorkingHours.DaysOff,
		}
	}
	if req.ServiceArea != nil {
		provider.ServiceArea = entity.ServiceArea{
			Cities: normalizeList(req.ServiceArea.Cities),
			Areas:  normalizeList(req.ServiceArea.Areas),
		}
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		provider.PasswordHash = string(hash)
	}

	if err := uow.ProviderRepository().Update(ctx, provider); err != nil {
		return nil, err
	}
	return providerToResponse(provider), nil
}

func (s *providerService) ToggleAvailability(ctx context.Context, providerId uuid.UUID, req *dto.ToggleAvailabilityRequest) (*dto.ProviderResponse, error) {
	status, err := constant.ParseAvailability(req.Status)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx, specification.ByID{ID: providerId})
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service provider not found")
	}
	if provider.IsSuspended {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is suspended. Contact support.")
	}
	if !provider.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}

	provider.AvailabilityStatus = status
	if err := uow.ProviderRepository().Update(ctx, provider); err != nil {
		return nil, err
	}
	return providerToResponse(provider), nil
}

func (s *providerService) Deactivate(ctx context.Context, providerId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx, specification.ByID{ID: providerId})
	if err != nil {
		return err
	}
	if provider == nil {
		return fiber.NewError(fiber.StatusNotFound, "Service provider not found")
	}

	open, err := uow.RequestRepository().Count(ctx,
		specification.AssignedToProvider{ProviderID: providerId},
		specification.WithStatusIn{Statuses: []constant.RequestStatus{
			constant.StatusAssigned,
			constant.StatusInProgress,
		}},
	)
	if err != nil {
		return err
	}
	if open > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Cannot deactivate account with %d active assignments. Complete them first.", open))
	}

	now := time.Now()
	provider.IsActive = false
	provider.DeactivatedAt = &now
	provider.AvailabilityStatus = constant.AvailabilityOffline
	if err := uow.ProviderRepository().Update(ctx, provider); err != nil {
		return err
	}

	s.log.Info("provider", "Account deactivated", map[string]interface{}{
		"provider_id": provider.Id,
	})
	return nil
}

func (s *providerService) Reactivate(ctx context.Context, providerId uuid.UUID) (*dto.ProviderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx, specification.ByID{ID: providerId})
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service provider not found")
	}
	if provider.IsActive {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Account is already active")
	}
	if !provider.WithinGracePeriod(time.Now(), constant.GracePeriodDays) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Grace period of 30 days has expired. Account cannot be reactivated.")
	}

	provider.IsActive = true
	provider.DeactivatedAt = nil
	provider.ReactivationToken = nil
	provider.ReactivationExpires = nil
	if err := uow.ProviderRepository().Update(ctx, provider); err != nil {
		return nil, err
	}
	return providerToResponse(provider), nil
}

func (s *providerService) RequestReactivation(ctx context.Context, req *dto.ReactivationRequest) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return "", err
	}
	if provider == nil {
		return "If an account exists with this email, reactivation instructions have been sent.", nil
	}
	if provider.IsActive {
		return "", fiber.NewError(fiber.StatusBadRequest, "Account already active. Please login")
	}
	if provider.DeactivatedAt == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid account state. Please contact support")
	}
	if !provider.WithinGracePeriod(time.Now(), constant.GracePeriodDays) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Grace period has expired. Account cannot be reactivated.")
	}

	token, err := generateReactivationToken()
	if err != nil {
		return "", err
	}
	expires := time.Now().Add(reactivationTTL)
	provider.ReactivationToken = &token
	provider.ReactivationExpires = &expires
	if err := uow.ProviderRepository().Update(ctx, provider); err != nil {
		return "", err
	}

	evt := events.NewBaseEvent(events.TypeProviderDeactivated, map[string]interface{}{
		"email": provider.Email,
		"name":  provider.Name,
		"token": token,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.log.Error("provider", "Failed to queue reactivation mail", map[string]interface{}{
			"provider_id": provider.Id,
			"error":       err.Error(),
		})
	}

	return "Reactivation mail sent. Please check your inbox!", nil
}

func (s *providerService) ConfirmReactivation(ctx context.Context, token string) error {
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Reactivation token is required")
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx, specification.ByReactivationToken{
		Token: token,
		Now:   time.Now(),
	})
	if err != nil {
		return err
	}
	if provider == nil {
		return fiber.NewError(fiber.StatusBadRequest,
			"Invalid or expired token. Please request a new reactivation link.")
	}

	provider.IsActive = true
	provider.DeactivatedAt = nil
	provider.ReactivationToken = nil
	provider.ReactivationExpires = nil
	return uow.ProviderRepository().Update(ctx, provider)
}

// GetPublicProfile hides moderation state from callers; a suspended or
// deactivated provider simply does not exist publicly.
func (s *providerService) GetPublicProfile(ctx context.Context, providerId uuid.UUID) (*dto.ProviderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx,
		specification.ByID{ID: providerId},
		specification.ActiveOnly{},
		specification.NotSuspended{},
	)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service provider not found")
	}
	return providerToResponse(provider), nil
}

// List is the public provider directory: active, unsuspended, best rated
// first.
func (s *providerService) List(ctx context.Context, query *dto.ListQuery) ([]*dto.ProviderResponse, map[string]interface{}, error) {
	query.Normalize()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.ActiveOnly{},
		specification.NotSuspended{},
	}

	total, err := uow.ProviderRepository().Count(ctx, filters...)
	if err != nil {
		return nil, nil, err
	}

	listSpecs := append(filters,
		specification.OrderBy{Field: "average_rating", Desc: true},
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

func (s *providerService) Search(ctx context.Context, query *dto.SearchProvidersQuery) ([]*dto.ProviderResponse, map[string]interface{}, error) {
	query.Normalize()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.ActiveOnly{},
		specification.NotSuspended{},
	}
	if query.Skill != "" {
		filters = append(filters, specification.HasSkill{Skill: strings.ToLower(strings.TrimSpace(query.Skill))})
	}
	if query.City != "" {
		filters = append(filters, specification.ServesCity{City: strings.ToLower(strings.TrimSpace(query.City))})
	}
	if query.Area != "" {
		filters = append(filters, specification.ServesArea{Area: strings.ToLower(strings.TrimSpace(query.Area))})
	}
	if query.MinRating > 0 || query.MaxRating > 0 {
		filters = append(filters, specification.RatingBetween{Min: query.MinRating, Max: query.MaxRating})
	}
	if query.PricingType != "" {
		filters = append(filters, specification.ByPricingType{PricingType: query.PricingType})
	}
	if query.AvailabilityStatus != "" {
		status, err := constant.ParseAvailability(query.AvailabilityStatus)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		filters = append(filters, specification.ByAvailability{Status: string(status)})
	}

	total, err := uow.ProviderRepository().Count(ctx, filters...)
	if err != nil {
		return nil, nil, err
	}

	column, ok := providerSortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	listSpecs := append(filters,
		specification.OrderBy{Field: column, Desc: query.Order == "desc"},
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

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func providerToResponse(p *entity.ServiceProvider) *dto.ProviderResponse {
	resp := &dto.ProviderResponse{
		Id:                 p.Id,
		Name:               p.Name,
		Email:              p.Email,
		Phone:              p.Phone,
		ProfilePicture:     p.ProfilePicture,
		Bio:                p.Bio,
		Skills:             p.Skills,
		ExperienceYears:    p.ExperienceYears,
		PricingType:        p.PricingType,
		AvailabilityStatus: string(p.AvailabilityStatus),
		AverageRating:      p.AverageRating,
		TotalReviews:       p.TotalReviews,
		TotalJobsCompleted: p.TotalJobsCompleted,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
	}
	for _, c := range p.Certifications {
		resp.Certifications = append(resp.Certifications, dto.CertificationInput{
			Name:           c.Name,
			IssuedBy:       c.IssuedBy,
			Year:           c.Year,
			CertificateURL: c.CertificateURL,
		})
	}
	if p.WorkingHours.From != "" || p.WorkingHours.To != "" || len(p.WorkingHours.DaysOff) > 0 {
		resp.WorkingHours = &dto.WorkingHoursInput{
			From:    p.WorkingHours.From,
			To:      p.WorkingHours.To,
			DaysOff: p.WorkingHours.DaysOff,
		}
	}
	if len(p.ServiceArea.Cities) > 0 || len(p.ServiceArea.Areas) > 0 {
		resp.ServiceArea = &dto.ServiceAreaInput{
			Cities: p.ServiceArea.Cities,
			Areas:  p.ServiceArea.Areas,
		}
	}
	return resp
}
