package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification types.
const (
	NotificationTypeLike   = "like"
	NotificationTypeFollow = "follow"
)

// Notification records a social event addressed to a user. Unliking or
// unfollowing does not remove a previously created notification.
type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FromID    uint           `gorm:"not null" json:"from_id"`
	ToID      uint           `gorm:"not null;index" json:"to_id"`
	Type      string         `gorm:"not null" json:"type"`
	Read      bool           `gorm:"not null;default:false" json:"read"`
	From      User           `gorm:"foreignKey:FromID" json:"from"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
