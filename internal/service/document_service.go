package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"carf-backend/internal/drive"
	"carf-backend/internal/model"
	"carf-backend/internal/repository"
	"carf-backend/pkg/apperr"

	"go.uber.org/zap"
)

// DocumentService fronts the Drive-backed attachment store and writes the
// audit trail for mutations.
type DocumentService interface {
	Upload(ctx context.Context, gencode, docType string, files []drive.UploadFile, actor Actor) ([]drive.FileInfo, error)
	ListFiles(ctx context.Context, gencode, docType string) ([]drive.FileInfo, error)
	DownloadZip(ctx context.Context, gencode string) (*bytes.Buffer, string, error)
	Stream(ctx context.Context, fileID string) (drive.FileInfo, io.ReadCloser, error)
	Delete(ctx context.Context, fileID string, actor Actor) error
}

type documentService struct {
	docs   *drive.DocumentStore
	audits repository.AuditRepository
	users  repository.UserRepository
	log    *zap.Logger
}

func NewDocumentService(docs *drive.DocumentStore, audits repository.AuditRepository, users repository.UserRepository, log *zap.Logger) DocumentService {
	return &documentService{docs: docs, audits: audits, users: users, log: log}
}

func (s *documentService) Upload(ctx context.Context, gencode, docType string, files []drive.UploadFile, actor Actor) ([]drive.FileInfo, error) {
	if gencode == "" || docType == "" {
		var missing []string
		if gencode == "" {
			missing = append(missing, "gencode")
		}
		if docType == "" {
			missing = append(missing, "docType")
		}
		return nil, apperr.Validation(missing...)
	}
	if len(files) == 0 {
		return nil, apperr.Validation("files")
	}

	uploaded, err := s.docs.UploadFiles(ctx, gencode, docType, files)

	// Audit whatever landed, even on partial failure: earlier uploads stay.
	if len(uploaded) > 0 {
		names := make([]string, 0, len(uploaded))
		for _, f := range uploaded {
			names = append(names, f.Name)
		}
		s.writeAudit(ctx, actor, model.ActionUploadFiles, gencode, map[string]interface{}{
			"doc_type": docType,
			"files":    names,
		})
	}
	return uploaded, err
}

func (s *documentService) ListFiles(ctx context.Context, gencode, docType string) ([]drive.FileInfo, error) {
	return s.docs.ListGencodeFiles(ctx, gencode, docType)
}

// DownloadZip bundles every attachment under the gencode folder. The
// returned filename is what the handler puts in Content-Disposition.
func (s *documentService) DownloadZip(ctx context.Context, gencode string) (*bytes.Buffer, string, error) {
	buf, err := s.docs.BundleGencode(ctx, gencode)
	if err != nil {
		return nil, "", err
	}
	return buf, gencode + "-documents.zip", nil
}

func (s *documentService) Stream(ctx context.Context, fileID string) (drive.FileInfo, io.ReadCloser, error) {
	return s.docs.StreamFile(ctx, fileID)
}

func (s *documentService) Delete(ctx context.Context, fileID string, actor Actor) error {
	if err := s.docs.DeleteFile(ctx, fileID); err != nil {
		return err
	}
	s.writeAudit(ctx, actor, model.ActionDeleteFile, fileID, nil)
	return nil
}

func (s *documentService) writeAudit(ctx context.Context, actor Actor, action, entityID string, details map[string]interface{}) {
	entry := &model.AuditLog{
		Action:   action,
		EntityID: entityID,
	}
	if user, err := s.users.GetByUserID(ctx, actor.UserID); err == nil {
		entry.UserID = &user.ID
	}
	if details != nil {
		b, _ := json.Marshal(details)
		entry.Details = string(b)
	}
	if err := s.audits.Log(ctx, entry); err != nil {
		s.log.Warn("audit write failed",
			zap.String("action", action),
			zap.String("entity_id", entityID),
			zap.Error(err))
	}
}
