package database

import (
	"carf-backend/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Notification{},
		&model.NotificationOutbox{},
		&model.GroupAuthorization{},
		&model.MenuSchema{},
		&model.UserGroup{},
		&model.ExecEmail{},
		&model.ApproverAssignment{},
		&model.SalesAgent{},
		&model.Company{},
		&model.MonthlyTheme{},
		&model.CarfDocument{},
		&model.AuditLog{},
	)
	if err != nil {
		log.Warn("failed to auto-migrate models", zap.Error(err))
	}

	return db, nil
}
