package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/repository"
)

type NotificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifRepo: notifRepo}
}

// List returns the user's notifications newest-first. Fetching marks them
// as read.
func (s *NotificationService) List(ctx context.Context, userID uint) ([]*models.Notification, error) {
	notifications, err := s.notifRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}
	return notifications, nil
}

// DeleteAll removes every notification addressed to the user.
func (s *NotificationService) DeleteAll(ctx context.Context, userID uint) error {
	return s.notifRepo.DeleteForUser(ctx, userID)
}
