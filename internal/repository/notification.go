package repository

import (
	"context"

	"chirp/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	// ListForUser returns the user's notifications newest-first and marks
	// every returned notification as read.
	ListForUser(ctx context.Context, userID uint) ([]*models.Notification, error)
	DeleteForUser(ctx context.Context, userID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a new NotificationRepository implementation.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID uint) ([]*models.Notification, error) {
	var notifications []*models.Notification
	if err := r.db.WithContext(ctx).
		Preload("From").
		Where("to_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("to_id = ? AND read = ?", userID, false).
		Update("read", true).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifications, nil
}

func (r *notificationRepository) DeleteForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("to_id = ?", userID).
		Delete(&models.Notification{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
