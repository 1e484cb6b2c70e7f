package service

import (
	"context"

	"carf-backend/internal/model"
	"carf-backend/internal/repository"
	"carf-backend/pkg/pagination"
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	FullName   string `json:"fullname"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error)
	GetAuditLogsByGencode(ctx context.Context, gencode string) ([]AuditLogResponse, error)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// GetAuditLogs retrieves strictly paginated records with Users pre-loaded joining details
func (s *auditService) GetAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error) {
	params := pagination.Clamp(page, limit)

	logs, total, err := s.repo.List(ctx, params.Page, params.Limit)
	if err != nil {
		return nil, 0, err
	}

	return mapAuditLogs(logs), total, nil
}

// GetAuditLogsByGencode returns the full change history of one CARF row.
func (s *auditService) GetAuditLogsByGencode(ctx context.Context, gencode string) ([]AuditLogResponse, error) {
	logs, err := s.repo.ListByGencode(ctx, gencode)
	if err != nil {
		return nil, err
	}
	return mapAuditLogs(logs), nil
}

func mapAuditLogs(logs []model.AuditLog) []AuditLogResponse {
	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		fullname := "System"
		userID := ""
		if l.User != nil {
			fullname = l.User.FullName
		}
		if l.UserID != nil {
			userID = l.UserID.String()
		}

		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			UserID:     userID,
			FullName:   fullname,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return res
}
