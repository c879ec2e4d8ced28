package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hsms-be/internal/constant"
	"hsms-be/internal/dto"
	"hsms-be/internal/entity"
	"hsms-be/internal/pkg/logger"
	"hsms-be/internal/repository/specification"
	"hsms-be/internal/repository/unitofwork"
)

type INotificationService interface {
	// EmitForRequest writes one inbox document for the owning customer and one
	// more for the assigned provider when there is one. Returns the number of
	// documents written; the write is the whole delivery contract.
	EmitForRequest(ctx context.Context, request *entity.ServiceRequest, ntype constant.NotificationType, title, message string) (int, error)

	ListMine(ctx context.Context, recipientId uuid.UUID, role constant.Role, query *dto.ListQuery) ([]*dto.NotificationResponse, map[string]interface{}, int64, error)
	MarkRead(ctx context.Context, notificationId, recipientId uuid.UUID, role constant.Role) error
	MarkAllRead(ctx context.Context, recipientId uuid.UUID, role constant.Role) (int64, error)
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *notificationService) EmitForRequest(ctx context.Context, request *entity.ServiceRequest, ntype constant.NotificationType, title, message string) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipients := []struct {
		id   uuid.UUID
		role constant.Role
	}{
		{id: request.CustomerId, role: constant.RoleCustomer},
	}
	if request.ServiceProviderId != nil {
		recipients = append(recipients, struct {
			id   uuid.UUID
			role constant.Role
		}{id: *request.ServiceProviderId, role: constant.RoleProvider})
	}

	created := 0
	for _, r := range recipients {
		requestId := request.Id
		notification := &entity.Notification{
			RecipientId:   r.id,
			RecipientType: r.role,
			Type:          ntype,
			Title:         title,
			Message:       message,
			RequestId:     &requestId,
		}
		if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
			return created, err
		}
		created++
	}

	s.log.Info("notification", "Notifications written", map[string]interface{}{
		"request_id": request.Id,
		"type":       string(ntype),
		"count":      created,
	})
	return created, nil
}

func (s *notificationService) ListMine(ctx context.Context, recipientId uuid.UUID, role constant.Role, query *dto.ListQuery) ([]*dto.NotificationResponse, map[string]interface{}, int64, error) {
	query.Normalize()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.Filter("recipient_id", recipientId),
		specification.Filter("recipient_type", string(role)),
	}

	total, err := uow.NotificationRepository().Count(ctx, filters...)
	if err != nil {
		return nil, nil, 0, err
	}

	listSpecs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset()},
	)
	notifications, err := uow.NotificationRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, nil, 0, err
	}

	unread, err := uow.NotificationRepository().CountUnread(ctx, recipientId, role)
	if err != nil {
		return nil, nil, 0, err
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, &dto.NotificationResponse{
			Id:        n.Id,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			RequestId: n.RequestId,
			IsRead:    n.IsRead,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}
	return responses, dto.Paginate(query.Page, query.Limit, total, "totalNotifications"), unread, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationId, recipientId uuid.UUID, role constant.Role) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affected, err := uow.NotificationRepository().MarkRead(ctx, notificationId, recipientId, role)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Notification not found")
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientId uuid.UUID, role constant.Role) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllRead(ctx, recipientId, role)
}
