package contract

import (
	"context"

	"github.com/google/uuid"

	"hsms-be/internal/constant"
	"hsms-be/internal/entity"
	"hsms-be/internal/repository/specification"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID, recipientType constant.Role) (int64, error)

	// MarkRead flips a single notification owned by the recipient. Returns
	// the number of rows touched so callers can distinguish "not yours"
	// from "already read".
	MarkRead(ctx context.Context, id uuid.UUID, recipientID uuid.UUID, recipientType constant.Role) (int64, error)
	MarkAllRead(ctx context.Context, recipientID uuid.UUID, recipientType constant.Role) (int64, error)
}
