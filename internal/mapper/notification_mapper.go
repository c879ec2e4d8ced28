package mapper

import (
	"hsms-be/internal/constant"
	"hsms-be/internal/entity"
	"hsms-be/internal/model"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	return &entity.Notification{
		Id:            n.Id,
		RecipientId:   n.RecipientId,
		RecipientType: constant.Role(n.RecipientType),
		Type:          constant.NotificationType(n.Type),
		Title:         n.Title,
		Message:       n.Message,
		RequestId:     n.RequestId,
		IsRead:        n.IsRead,
		ReadAt:        n.ReadAt,
		CreatedAt:     n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}
	return &model.Notification{
		Id:            n.Id,
		RecipientId:   n.RecipientId,
		RecipientType: string(n.RecipientType),
		Type:          string(n.Type),
		Title:         n.Title,
		Message:       n.Message,
		RequestId:     n.RequestId,
		IsRead:        n.IsRead,
		ReadAt:        n.ReadAt,
		CreatedAt:     n.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(notifications []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, len(notifications))
	for i, n := range notifications {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
