package service

import (
	"context"

	"carf-backend/internal/model"
	"carf-backend/internal/repository"
	"carf-backend/internal/sheets"
	"carf-backend/pkg/apperr"
	"carf-backend/pkg/format"

	"go.uber.org/zap"
)

type SubmitToEmailRequest struct {
	Rows []map[string]interface{} `json:"rows" binding:"required"`
}

type UpdateFormRequest struct {
	RowID string                 `json:"rowId" binding:"required"`
	Data  map[string]interface{} `json:"data" binding:"required"`
}

// FormService backs the sheet-facing form endpoints. It normalizes the
// display-formatted fields before they hit the sheet so every row stores
// the same shape regardless of which client wrote it.
type FormService interface {
	CustomerByGencode(ctx context.Context, gencode string) (map[string]string, error)
	SubmitToEmail(ctx context.Context, rows []map[string]interface{}) (int, error)
	UpdateForm(ctx context.Context, req UpdateFormRequest) (int, error)
	NextDocNo(ctx context.Context, actor Actor) (string, error)
}

type formService struct {
	forms  *sheets.FormStore
	refs   repository.ReferenceRepository
	audits repository.AuditRepository
	users  repository.UserRepository
	log    *zap.Logger
}

func NewFormService(
	forms *sheets.FormStore,
	refs repository.ReferenceRepository,
	audits repository.AuditRepository,
	users repository.UserRepository,
	log *zap.Logger,
) FormService {
	return &formService{forms: forms, refs: refs, audits: audits, users: users, log: log}
}

func (s *formService) CustomerByGencode(ctx context.Context, gencode string) (map[string]string, error) {
	return s.forms.MapByGencode(ctx, gencode)
}

func (s *formService) SubmitToEmail(ctx context.Context, rows []map[string]interface{}) (int, error) {
	if len(rows) == 0 {
		return 0, apperr.Validation("rows")
	}
	appended, err := s.forms.AppendData(ctx, s.forms.EmailSheet, rows)
	if err != nil {
		return 0, err
	}
	s.log.Info("email queue rows appended", zap.Int("rows", len(appended)))
	return len(appended), nil
}

// UpdateForm overwrites one sheet row. Formatted fields are normalized
// first: the TIN gets its dashes, amounts get their thousands separators.
func (s *formService) UpdateForm(ctx context.Context, req UpdateFormRequest) (int, error) {
	normalizeFormFields(req.Data)
	return s.forms.UpdateRow(ctx, s.forms.CustomerSheet, req.RowID, req.Data)
}

func (s *formService) NextDocNo(ctx context.Context, actor Actor) (string, error) {
	docNo, err := s.refs.NextDocNo(ctx)
	if err != nil {
		return "", err
	}

	entry := &model.AuditLog{
		Action:   model.ActionGenerateDocNo,
		EntityID: docNo,
	}
	if user, err := s.users.GetByUserID(ctx, actor.UserID); err == nil {
		entry.UserID = &user.ID
	}
	if err := s.audits.Log(ctx, entry); err != nil {
		s.log.Warn("doc-no audit write failed", zap.String("doc_no", docNo), zap.Error(err))
	}
	return docNo, nil
}

func normalizeFormFields(data map[string]interface{}) {
	if tin, ok := data["tin"].(string); ok && tin != "" {
		data["tin"] = format.TIN(tin)
	}
	for _, key := range []string{"creditlimit", "targetvolumeday", "targetvolumemonth"} {
		if v, ok := data[key].(string); ok && v != "" {
			data[key] = format.NumberWithCommas(v)
		}
	}
}
