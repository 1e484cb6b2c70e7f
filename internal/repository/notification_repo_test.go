package repository

import (
	"context"
	"testing"

	"carf-backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestNotificationCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(41)))
	mock.ExpectCommit()

	n := &model.Notification{
		Gencode:          "GEN-001",
		NotificationType: model.NotifTypeSubmission,
		Action:           model.ActionPending,
		ActorUserID:      "maker1",
		ActorName:        "Anna Cruz",
		RecipientUserID:  "appr1",
		Title:            "CARF GEN-001 submitted",
		Message:          "A CARF is waiting for your approval",
		NewStatus:        model.StatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, int64(41), n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnreadCountScopesToRecipient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE recipient_userid = \$1 AND is_read = \$2`).
		WithArgs("user1", false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.UnreadCount(context.Background(), "user1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReadOnlyTouchesUnreadRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET .* WHERE id = \$\d+ AND is_read = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.MarkRead(context.Background(), 41))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllReadLeavesUnread(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "notifications" WHERE recipient_userid = \$1 AND is_read = \$2`).
		WithArgs("user1", true).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteAllRead(context.Background(), "user1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByRecipientOrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "gencode", "recipient_userid"}).
		AddRow(int64(2), "GEN-002", "user1").
		AddRow(int64(1), "GEN-001", "user1")
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE recipient_userid = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("user1", 50).
		WillReturnRows(rows)

	out, err := repo.ListByRecipient(context.Background(), "user1", 50)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "GEN-002", out[0].Gencode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
