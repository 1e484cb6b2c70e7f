package repository

import (
	"context"
	"errors"
	"testing"

	"carf-backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetReturnsRecordNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthorizationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "groupauthorizations" WHERE groupcode = \$1 AND menucmd = \$2`).
		WithArgs("SALES", model.ProgramCarfApprove, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "groupcode", "menucmd", "accesslevel"}))

	_, err := repo.Get(context.Background(), "SALES", model.ProgramCarfApprove)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertConvergesOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthorizationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "groupauthorizations" .* ON CONFLICT \("groupcode","menucmd"\) DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	auth := &model.GroupAuthorization{
		GroupCode:   "SALES",
		MenuCmd:     model.ProgramCarfEntry,
		AccessLevel: model.AccessFull,
	}
	require.NoError(t, repo.Upsert(context.Background(), auth))
	assert.Equal(t, int64(7), auth.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChildrenOfFiltersByType(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthorizationRepository(db)

	rows := sqlmock.NewRows([]string{"itemid", "menuid", "menucmd", "menuname", "menutype"}).
		AddRow(int64(4), "CARF", model.ProgramCarfEntry, "CARF Entry", model.MenuTypeProgram).
		AddRow(int64(5), "CARF", model.ProgramCarfApprove, "CARF Approval", model.MenuTypeProgram)
	mock.ExpectQuery(`SELECT \* FROM "schemas" WHERE menuid = \$1 AND menutype = \$2 ORDER BY itemid ASC`).
		WithArgs("CARF", model.MenuTypeProgram).
		WillReturnRows(rows)

	out, err := repo.ChildrenOf(context.Background(), "CARF", model.MenuTypeProgram)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, model.ProgramCarfEntry, out[0].MenuCmd)
	assert.NoError(t, mock.ExpectationsWereMet())
}
