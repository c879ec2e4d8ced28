package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification stores one inbox entry per affected party. RecipientType
// disambiguates the polymorphic recipient id (customer vs serviceProvider).
type Notification struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipientId   uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_recipient,priority:1"`
	RecipientType string     `gorm:"type:varchar(20);not null;index:idx_notifications_recipient,priority:2"`
	Type          string     `gorm:"type:varchar(40);not null"`
	Title         string     `gorm:"type:varchar(200);not null"`
	Message       string     `gorm:"type:text;not null"`
	RequestId     *uuid.UUID `gorm:"type:uuid;index"`
	IsRead        bool       `gorm:"not null;default:false;index"`
	ReadAt        *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
}

func (Notification) TableName() string {
	return "notifications"
}
