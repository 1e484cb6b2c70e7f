package service

import (
	"context"
	"encoding/json"
	"fmt"

	"carf-backend/internal/model"
	"carf-backend/internal/repository"

	"go.uber.org/zap"
)

// Pusher delivers a payload to a connected user's sessions. Satisfied by the
// websocket hub; tests substitute a recorder.
type Pusher interface {
	SendToUser(userID string, payload []byte)
}

// OutboxDispatcher drains the notification outbox: each pending entry
// becomes a stored notification plus a realtime push. A failed entry is
// marked FAILED and retried on the next RetryFailed sweep; the workflow
// transition that enqueued it has long since committed.
type OutboxDispatcher interface {
	Dispatch(ctx context.Context) (int, error)
	RetryFailed(ctx context.Context) (int, error)
}

type outboxDispatcher struct {
	outbox        repository.OutboxRepository
	notifications repository.NotificationRepository
	hub           Pusher
	log           *zap.Logger
	batchSize     int
}

func NewOutboxDispatcher(outbox repository.OutboxRepository, notifications repository.NotificationRepository, hub Pusher, log *zap.Logger) OutboxDispatcher {
	return &outboxDispatcher{
		outbox:        outbox,
		notifications: notifications,
		hub:           hub,
		log:           log,
		batchSize:     50,
	}
}

func (d *outboxDispatcher) Dispatch(ctx context.Context) (int, error) {
	return d.drain(ctx, model.OutboxPending)
}

func (d *outboxDispatcher) RetryFailed(ctx context.Context) (int, error) {
	return d.drain(ctx, model.OutboxFailed)
}

func (d *outboxDispatcher) drain(ctx context.Context, status string) (int, error) {
	entries, err := d.outbox.ListByStatus(ctx, status, d.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list outbox entries: %w", err)
	}

	delivered := 0
	for _, entry := range entries {
		// Claim before delivering: concurrent dispatchers list the same
		// batch, but only one wins the conditional status update per entry.
		claimed, err := d.outbox.Claim(ctx, entry.ID, status)
		if err != nil {
			return delivered, fmt.Errorf("claim outbox entry: %w", err)
		}
		if !claimed {
			continue
		}
		if err := d.deliver(ctx, entry); err != nil {
			d.log.Warn("outbox delivery failed",
				zap.String("entry_id", entry.ID.String()),
				zap.Int("attempts", entry.Attempts+1),
				zap.Error(err))
			if markErr := d.outbox.MarkFailed(ctx, entry.ID, err.Error()); markErr != nil {
				return delivered, fmt.Errorf("mark outbox entry failed: %w", markErr)
			}
			continue
		}
		if err := d.outbox.MarkSent(ctx, entry.ID); err != nil {
			return delivered, fmt.Errorf("mark outbox entry sent: %w", err)
		}
		delivered++
	}
	return delivered, nil
}

func (d *outboxDispatcher) deliver(ctx context.Context, entry model.NotificationOutbox) error {
	var notification model.Notification
	if err := json.Unmarshal([]byte(entry.Payload), &notification); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	if err := d.notifications.Create(ctx, &notification); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}

	// Push is fire-and-forget: offline recipients catch up from the store.
	if notification.RecipientUserID != "" {
		payload, err := json.Marshal(notification)
		if err != nil {
			return fmt.Errorf("encode push payload: %w", err)
		}
		d.hub.SendToUser(notification.RecipientUserID, payload)
	}
	return nil
}
