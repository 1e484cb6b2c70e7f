package repository

import (
	"context"
	"time"

	"carf-backend/internal/model"

	"gorm.io/gorm"
)

// NotificationRepository persists workflow events. Rows are append-only
// except for the read-state columns.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	ListByRecipient(ctx context.Context, recipientUserID string, limit int) ([]model.Notification, error)
	ListByGencode(ctx context.Context, gencode string) ([]model.Notification, error)
	ListByType(ctx context.Context, recipientUserID, notificationType string) ([]model.Notification, error)
	UnreadCount(ctx context.Context, recipientUserID string) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, recipientUserID string) error
	Delete(ctx context.Context, id int64) error
	DeleteAllRead(ctx context.Context, recipientUserID string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return GetDB(ctx, r.db).Create(n).Error
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientUserID string, limit int) ([]model.Notification, error) {
	var out []model.Notification
	err := GetDB(ctx, r.db).
		Where("recipient_userid = ?", recipientUserID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *notificationRepository) ListByGencode(ctx context.Context, gencode string) ([]model.Notification, error) {
	var out []model.Notification
	err := GetDB(ctx, r.db).
		Where("gencode = ?", gencode).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *notificationRepository) ListByType(ctx context.Context, recipientUserID, notificationType string) ([]model.Notification, error) {
	var out []model.Notification
	err := GetDB(ctx, r.db).
		Where("recipient_userid = ? AND notification_type = ?", recipientUserID, notificationType).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// UnreadCount recomputes the badge from the store. Clients never maintain
// their own counter; multi-tab sessions drift otherwise.
func (r *notificationRepository) UnreadCount(ctx context.Context, recipientUserID string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).
		Model(&model.Notification{}).
		Where("recipient_userid = ? AND is_read = ?", recipientUserID, false).
		Count(&count).Error
	return count, err
}

// MarkRead is monotonic: a read notification never becomes unread again.
func (r *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	now := time.Now()
	return GetDB(ctx, r.db).
		Model(&model.Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now}).Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientUserID string) error {
	now := time.Now()
	return GetDB(ctx, r.db).
		Model(&model.Notification{}).
		Where("recipient_userid = ? AND is_read = ?", recipientUserID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now}).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	return GetDB(ctx, r.db).Delete(&model.Notification{}, id).Error
}

func (r *notificationRepository) DeleteAllRead(ctx context.Context, recipientUserID string) error {
	return GetDB(ctx, r.db).
		Where("recipient_userid = ? AND is_read = ?", recipientUserID, true).
		Delete(&model.Notification{}).Error
}
