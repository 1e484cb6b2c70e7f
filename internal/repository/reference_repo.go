package repository

import (
	"context"
	"fmt"

	"carf-backend/internal/model"

	"gorm.io/gorm"
)

// ReferenceRepository covers the admin-maintained lookup tables and the
// CARF document number counter.
type ReferenceRepository interface {
	ListExecEmails(ctx context.Context) ([]model.ExecEmail, error)
	SaveExecEmail(ctx context.Context, e *model.ExecEmail) error
	DeleteExecEmail(ctx context.Context, id int64) error

	ApproverForLevel(ctx context.Context, level string) (*model.ApproverAssignment, error)
	SaveApprover(ctx context.Context, a *model.ApproverAssignment) error
	ListApprovers(ctx context.Context) ([]model.ApproverAssignment, error)

	ListSalesAgents(ctx context.Context) ([]model.SalesAgent, error)
	SaveSalesAgent(ctx context.Context, a *model.SalesAgent) error
	DeleteSalesAgent(ctx context.Context, id int64) error
	ListCompanies(ctx context.Context) ([]model.Company, error)

	ListMonthlyThemes(ctx context.Context) ([]model.MonthlyTheme, error)
	SaveMonthlyTheme(ctx context.Context, t *model.MonthlyTheme) error
	ActivateMonthlyTheme(ctx context.Context, month string) error

	NextDocNo(ctx context.Context) (string, error)
}

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) ListExecEmails(ctx context.Context) ([]model.ExecEmail, error) {
	var out []model.ExecEmail
	err := GetDB(ctx, r.db).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *referenceRepository) SaveExecEmail(ctx context.Context, e *model.ExecEmail) error {
	return GetDB(ctx, r.db).Save(e).Error
}

func (r *referenceRepository) DeleteExecEmail(ctx context.Context, id int64) error {
	return GetDB(ctx, r.db).Delete(&model.ExecEmail{}, id).Error
}

func (r *referenceRepository) ApproverForLevel(ctx context.Context, level string) (*model.ApproverAssignment, error) {
	var a model.ApproverAssignment
	if err := GetDB(ctx, r.db).First(&a, "level = ?", level).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *referenceRepository) SaveApprover(ctx context.Context, a *model.ApproverAssignment) error {
	return GetDB(ctx, r.db).Save(a).Error
}

func (r *referenceRepository) ListApprovers(ctx context.Context) ([]model.ApproverAssignment, error) {
	var out []model.ApproverAssignment
	err := GetDB(ctx, r.db).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *referenceRepository) ListSalesAgents(ctx context.Context) ([]model.SalesAgent, error) {
	var out []model.SalesAgent
	err := GetDB(ctx, r.db).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *referenceRepository) SaveSalesAgent(ctx context.Context, a *model.SalesAgent) error {
	return GetDB(ctx, r.db).Save(a).Error
}

func (r *referenceRepository) DeleteSalesAgent(ctx context.Context, id int64) error {
	return GetDB(ctx, r.db).Delete(&model.SalesAgent{}, id).Error
}

func (r *referenceRepository) ListCompanies(ctx context.Context) ([]model.Company, error) {
	var out []model.Company
	err := GetDB(ctx, r.db).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *referenceRepository) ListMonthlyThemes(ctx context.Context) ([]model.MonthlyTheme, error) {
	var out []model.MonthlyTheme
	err := GetDB(ctx, r.db).Order("month ASC").Find(&out).Error
	return out, err
}

func (r *referenceRepository) SaveMonthlyTheme(ctx context.Context, t *model.MonthlyTheme) error {
	return GetDB(ctx, r.db).Save(t).Error
}

// ActivateMonthlyTheme switches the active banner: exactly one month may be
// active at a time.
func (r *referenceRepository) ActivateMonthlyTheme(ctx context.Context, month string) error {
	return GetDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.MonthlyTheme{}).
			Where("isactivate = ?", true).
			Update("isactivate", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.MonthlyTheme{}).
			Where("month = ?", month).
			Update("isactivate", true).Error
	})
}

// NextDocNo issues the next CARF document number, formatted CARF-%010d.
// An advisory lock keeps concurrent sessions from allocating duplicates.
func (r *referenceRepository) NextDocNo(ctx context.Context) (string, error) {
	var docNo string
	err := GetDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "carf_doc_no")

		var doc model.CarfDocument
		if err := tx.First(&doc, "id = ?", 1).Error; err != nil {
			return fmt.Errorf("load doc counter: %w", err)
		}

		var next int64
		if _, err := fmt.Sscanf(doc.DocNo, "CARF-%d", &next); err != nil {
			next = 0
		}
		docNo = fmt.Sprintf("CARF-%010d", next+1)

		return tx.Model(&model.CarfDocument{}).
			Where("id = ?", 1).
			Update("doc_no", docNo).Error
	})
	if err != nil {
		return "", err
	}
	return docNo, nil
}
