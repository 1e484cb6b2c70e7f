package service

import (
	"context"

	"carf-backend/internal/model"
	"carf-backend/internal/repository"
)

// NotificationService is the read-state surface over the append-only
// notification store. Creation goes through the outbox dispatcher only.
type NotificationService interface {
	List(ctx context.Context, recipientUserID string, limit int) ([]model.Notification, error)
	ListByGencode(ctx context.Context, gencode string) ([]model.Notification, error)
	ListByType(ctx context.Context, recipientUserID, notificationType string) ([]model.Notification, error)
	UnreadCount(ctx context.Context, recipientUserID string) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, recipientUserID string) error
	Delete(ctx context.Context, id int64) error
	DeleteAllRead(ctx context.Context, recipientUserID string) error
}

const defaultNotificationLimit = 100

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, recipientUserID string, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > defaultNotificationLimit {
		limit = defaultNotificationLimit
	}
	return s.repo.ListByRecipient(ctx, recipientUserID, limit)
}

func (s *notificationService) ListByGencode(ctx context.Context, gencode string) ([]model.Notification, error) {
	return s.repo.ListByGencode(ctx, gencode)
}

func (s *notificationService) ListByType(ctx context.Context, recipientUserID, notificationType string) ([]model.Notification, error) {
	return s.repo.ListByType(ctx, recipientUserID, notificationType)
}

func (s *notificationService) UnreadCount(ctx context.Context, recipientUserID string) (int64, error) {
	return s.repo.UnreadCount(ctx, recipientUserID)
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientUserID string) error {
	return s.repo.MarkAllRead(ctx, recipientUserID)
}

func (s *notificationService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *notificationService) DeleteAllRead(ctx context.Context, recipientUserID string) error {
	return s.repo.DeleteAllRead(ctx, recipientUserID)
}
