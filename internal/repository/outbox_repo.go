package repository

import (
	"context"

	"carf-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutboxRepository stores pending notification deliveries. The workflow
// enqueues here inside its own transaction; the dispatcher drains outside it.
type OutboxRepository interface {
	Enqueue(ctx context.Context, entry *model.NotificationOutbox) error
	ListByStatus(ctx context.Context, status string, limit int) ([]model.NotificationOutbox, error)
	Claim(ctx context.Context, id uuid.UUID, fromStatus string) (bool, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, cause string) error
}

type outboxRepository struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) Enqueue(ctx context.Context, entry *model.NotificationOutbox) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

func (r *outboxRepository) ListByStatus(ctx context.Context, status string, limit int) ([]model.NotificationOutbox, error) {
	var out []model.NotificationOutbox
	err := GetDB(ctx, r.db).
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// Claim flips one entry from its listed status to SENDING. The conditional
// update makes the claim atomic: when two dispatchers race on the same
// entry, exactly one sees a row affected.
func (r *outboxRepository) Claim(ctx context.Context, id uuid.UUID, fromStatus string) (bool, error) {
	res := GetDB(ctx, r.db).
		Model(&model.NotificationOutbox{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", model.OutboxSending)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).
		Model(&model.NotificationOutbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     model.OutboxSent,
			"last_error": "",
			"attempts":   gorm.Expr("attempts + 1"),
		}).Error
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, cause string) error {
	return GetDB(ctx, r.db).
		Model(&model.NotificationOutbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     model.OutboxFailed,
			"last_error": cause,
			"attempts":   gorm.Expr("attempts + 1"),
		}).Error
}
