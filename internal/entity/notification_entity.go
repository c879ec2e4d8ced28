package entity

import (
	"time"

	"github.com/google/uuid"

	"hsms-be/internal/constant"
)

// Notification is a persisted inbox entry for a customer or provider. Writing
// the document is the whole delivery contract; there is no push channel.
type Notification struct {
	Id            uuid.UUID
	RecipientId   uuid.UUID
	RecipientType constant.Role
	Type          constant.NotificationType
	Title         string
	Message       string
	RequestId     *uuid.UUID
	IsRead        bool
	ReadAt        *time.Time
	CreatedAt     time.Time
}
