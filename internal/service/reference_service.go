package service

import (
	"context"

	"carf-backend/internal/model"
	"carf-backend/internal/repository"
)

// ReferenceService exposes the admin-maintained lookup tables that back the
// form's pickers and the approval routing.
type ReferenceService interface {
	ListExecEmails(ctx context.Context) ([]model.ExecEmail, error)
	SaveExecEmail(ctx context.Context, e *model.ExecEmail) error
	DeleteExecEmail(ctx context.Context, id int64) error

	ListApprovers(ctx context.Context) ([]model.ApproverAssignment, error)
	SaveApprover(ctx context.Context, a *model.ApproverAssignment) error

	ListSalesAgents(ctx context.Context) ([]model.SalesAgent, error)
	SaveSalesAgent(ctx context.Context, a *model.SalesAgent) error
	DeleteSalesAgent(ctx context.Context, id int64) error
	ListCompanies(ctx context.Context) ([]model.Company, error)

	ListMonthlyThemes(ctx context.Context) ([]model.MonthlyTheme, error)
	SaveMonthlyTheme(ctx context.Context, t *model.MonthlyTheme) error
	ActivateMonthlyTheme(ctx context.Context, month string) error
}

type referenceService struct {
	repo repository.ReferenceRepository
}

func NewReferenceService(repo repository.ReferenceRepository) ReferenceService {
	return &referenceService{repo: repo}
}

func (s *referenceService) ListExecEmails(ctx context.Context) ([]model.ExecEmail, error) {
	return s.repo.ListExecEmails(ctx)
}

func (s *referenceService) SaveExecEmail(ctx context.Context, e *model.ExecEmail) error {
	return s.repo.SaveExecEmail(ctx, e)
}

func (s *referenceService) DeleteExecEmail(ctx context.Context, id int64) error {
	return s.repo.DeleteExecEmail(ctx, id)
}

func (s *referenceService) ListApprovers(ctx context.Context) ([]model.ApproverAssignment, error) {
	return s.repo.ListApprovers(ctx)
}

func (s *referenceService) SaveApprover(ctx context.Context, a *model.ApproverAssignment) error {
	return s.repo.SaveApprover(ctx, a)
}

func (s *referenceService) ListSalesAgents(ctx context.Context) ([]model.SalesAgent, error) {
	return s.repo.ListSalesAgents(ctx)
}

func (s *referenceService) SaveSalesAgent(ctx context.Context, a *model.SalesAgent) error {
	return s.repo.SaveSalesAgent(ctx, a)
}

func (s *referenceService) DeleteSalesAgent(ctx context.Context, id int64) error {
	return s.repo.DeleteSalesAgent(ctx, id)
}

func (s *referenceService) ListCompanies(ctx context.Context) ([]model.Company, error) {
	return s.repo.ListCompanies(ctx)
}

func (s *referenceService) ListMonthlyThemes(ctx context.Context) ([]model.MonthlyTheme, error) {
	return s.repo.ListMonthlyThemes(ctx)
}

func (s *referenceService) SaveMonthlyTheme(ctx context.Context, t *model.MonthlyTheme) error {
	return s.repo.SaveMonthlyTheme(ctx, t)
}

func (s *referenceService) ActivateMonthlyTheme(ctx context.Context, month string) error {
	return s.repo.ActivateMonthlyTheme(ctx, month)
}
