package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
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

const (
	tokenTTL          = 7 * 24 * time.Hour
	reactivationTTL   = time.Hour
	reactivationBytes = 32
)

type ICustomerService interface {
	Register(ctx context.Context, req *dto.RegisterCustomerRequest) (*dto.CustomerResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, customerId uuid.UUID) (*dto.CustomerResponse, error)
	UpdateProfile(ctx context.Context, customerId uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Deactivate(ctx context.Context, customerId uuid.UUID) error
	Reactivate(ctx context.Context, customerId uuid.UUID) (*dto.CustomerResponse, error)
	RequestReactivation(ctx context.Context, req *dto.ReactivationRequest) (string, error)
	ConfirmReactivation(ctx context.Context, token string) error
}

type customerService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	log        logger.ILogger
	jwtSecret  string
}

func NewCustomerService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
	jwtSecret string,
) ICustomerService {
	return &customerService{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
		jwtSecret:  jwtSecret,
	}
}

func generateReactivationToken() (string, error) {
	buf := make([]byte, reactivationBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *customerService) Register(ctx context.Context, req *dto.RegisterCustomerRequest) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CustomerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
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

	customer := &entity.Customer{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		PasswordHash:   string(hash),
		ProfilePicture: req.ProfilePicture,
		IsActive:       true,
	}
	if req.Address != nil {
		customer.Address = entity.Address{
			Street:    req.Address.Street,
			City:      req.Address.City,
			State:     req.Address.State,
			Pincode:   req.Address.Pincode,
			Landmarks: req.Address.Landmarks,
		}
	}

	if err := uow.CustomerRepository().Create(ctx, customer); err != nil {
		return nil, err
	}

	s.log.Info("customer", "Customer registered", map[string]interface{}{
		"customer_id": customer.Id,
	})

	return customerToResponse(customer), nil
}

func (s *customerService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Customer not found")
	}
	if !customer.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Your account is deactivated. Please reactivate to continue.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid password")
	}

	now := time.Now()
	customer.LastLogin = &now
	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		return nil, err
	}

	token, err := serverutils.GenerateToken(s.jwtSecret, customer.Id, constant.RoleCustomer, tokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.LoginResponse{
			Id:        customer.Id,
			Name:      customer.Name,
			Email:     customer.Email,
			LastLogin: customer.LastLogin,
		},
	}, nil
}

func (s *customerService) GetProfile(ctx context.Context, customerId uuid.UUID) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Customer not found")
	}
	return customerToResponse(customer), nil
}

func (s *customerService) UpdateProfile(ctx context.Context, customerId uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Customer not found")
	}

	if req.Email != "" && req.Email != customer.Email {
		other, err := uow.CustomerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Email already in use")
		}
		customer.Email = req.Email
	}
	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.ProfilePicture != "" {
		customer.ProfilePicture = req.ProfilePicture
	}
	if req.Address != nil {
		customer.Address = entity.Address{
			Street:    req.Address.Street,
			City:      req.Address.City,
			State:     req.Address.State,
			Pincode:   req.Address.Pincode,
			Landmarks: req.Address.Landmarks,
		}
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = string(hash)
	}

	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

func (s *customerService) Deactivate(ctx context.Context, customerId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return err
	}
	if customer == nil {
		return fiber.NewError(fiber.StatusNotFound, "Customer not found")
	}

	open, err := uow.RequestRepository().Count(ctx,
		specification.OwnedByCustomer{CustomerID: customerId},
		specification.NonTerminal{},
	)
	if err != nil {
		return err
	}
	if open > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Cannot deactivate account with %d open service requests. Cancel or complete them first.", open))
	}

	now := time.Now()
	customer.IsActive = false
	customer.DeactivatedAt = &now
	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		return err
	}

	s.log.Info("customer", "Account deactivated", map[string]interface{}{
		"customer_id": customer.Id,
	})
	return nil
}

// Reactivate restores a deactivated account for an authenticated caller still
// inside the grace period. The email-token flow exists separately for callers
// who can no longer log in.
func (s *customerService) Reactivate(ctx context.Context, customerId uuid.UUID) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Customer not found")
	}
	if customer.IsActive {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Account is already active")
	}
	if !customer.WithinGracePeriod(time.Now(), constant.GracePeriodDays) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Grace period of 30 days has expired. Account cannot be reactivated.")
	}

	customer.IsActive = true
	customer.DeactivatedAt = nil
	customer.ReactivationToken = nil
	customer.ReactivationExpires = nil
	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

func (s *customerService) RequestReactivation(ctx context.Context, req *dto.ReactivationRequest) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return "", err
	}
	// Do not reveal whether the account exists.
	if customer == nil {
		return "If an account exists with this email, reactivation instructions have been sent.", nil
	}
	if customer.IsActive {
		return "", fiber.NewError(fiber.StatusBadRequest, "Account already active. Please login")
	}
	if customer.DeactivatedAt == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid account state. Please contact support")
	}
	if !customer.WithinGracePeriod(time.Now(), constant.GracePeriodDays) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Grace period has expired. Account cannot be reactivated.")
	}

	token, err := generateReactivationToken()
	if err != nil {
		return "", err
	}
	expires := time.Now().Add(reactivationTTL)
	customer.ReactivationToken = &token
	customer.ReactivationExpires = &expires
	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		return "", err
	}

	evt := events.NewBaseEvent(events.TypeCustomerDeactivated, map[string]interface{}{
		"email": customer.Email,
		"name":  customer.Name,
		"token": token,
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.log.Error("customer", "Failed to queue reactivation mail", map[string]interface{}{
			"customer_id": customer.Id,
			"error":       err.Error(),
		})
	}

	return "Reactivation mail sent. Please check your inbox!", nil
}

func (s *customerService) ConfirmReactivation(ctx context.Context, token string) error {
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Reactivation token is required")
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByReactivationToken{
		Token: token,
		Now:   time.Now(),
	})
	if err != nil {
		return err
	}
	if customer == nil {
		return fiber.NewError(fiber.StatusBadRequest,
			"Invalid or expired token. Please request a new reactivation link.")
	}

	customer.IsActive = true
	customer.DeactivatedAt = nil
	customer.ReactivationToken = nil
	customer.ReactivationExpires = nil
	return uow.CustomerRepository().Update(ctx, customer)
}

func customerToResponse(c *entity.Customer) *dto.CustomerResponse {
	resp := &dto.CustomerResponse{
		Id:             c.Id,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		ProfilePicture: c.ProfilePicture,
		IsActive:       c.IsActive,
		LastLogin:      c.LastLogin,
		CreatedAt:      c.CreatedAt,
	}
	if c.Address != (entity.Address{}) {
		resp.Address = &dto.AddressInput{
			Street:    c.Address.Street,
			City:      c.Address.City,
			State:     c.Address.State,
			Pincode:   c.Address.Pincode,
			Landmarks: c.Address.Landmarks,
		}
	}
	return resp
}
