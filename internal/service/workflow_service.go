package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"carf-backend/internal/model"
	"carf-backend/internal/repository"
	"carf-backend/internal/sheets"
	"carf-backend/pkg/apperr"

	"go.uber.org/zap"
)

const stampLayout = "2006-01-02 15:04:05"

// Actor identifies who is driving a transition, resolved from the JWT by
// the handler layer.
type Actor struct {
	UserID   string
	FullName string
	Email    string
}

type TransitionRequest struct {
	Gencode string `json:"gencode" binding:"required"`
	Remarks string `json:"remarks"`
}

// WorkflowService drives a CARF row through its approval lifecycle. Every
// transition rewrites the sheet row first, then commits the notification
// outbox entry and audit record together; dispatch happens afterwards and
// never blocks the transition.
type WorkflowService interface {
	Submit(ctx context.Context, gencode string, actor Actor) (*model.CustomerFormRecord, error)
	Approve(ctx context.Context, gencode string, actor Actor, remarks string) (*model.CustomerFormRecord, error)
	Return(ctx context.Context, gencode string, actor Actor, remarks string) (*model.CustomerFormRecord, error)
	Cancel(ctx context.Context, gencode string, actor Actor, remarks string) (*model.CustomerFormRecord, error)
}

type workflowService struct {
	forms  *sheets.FormStore
	refs   repository.ReferenceRepository
	outbox repository.OutboxRepository
	audits repository.AuditRepository
	users  repository.UserRepository
	tx     repository.TransactionManager
	log    *zap.Logger
	now    func() time.Time
}

func NewWorkflowService(
	forms *sheets.FormStore,
	refs repository.ReferenceRepository,
	outbox repository.OutboxRepository,
	audits repository.AuditRepository,
	users repository.UserRepository,
	tx repository.TransactionManager,
	log *zap.Logger,
) WorkflowService {
	return &workflowService{
		forms:  forms,
		refs:   refs,
		outbox: outbox,
		audits: audits,
		users:  users,
		tx:     tx,
		log:    log,
		now:    time.Now,
	}
}

// Submit moves a draft (or returned) form into the approval chain. The row
// always re-enters at the first level: a resubmission is a fresh review, so
// earlier sign-off stamps are cleared.
func (s *workflowService) Submit(ctx context.Context, gencode string, actor Actor) (*model.CustomerFormRecord, error) {
	rec, err := s.forms.LoadByGencode(ctx, gencode)
	if err != nil {
		return nil, err
	}

	if rec.ApproveStatus != model.StatusDraft && rec.ApproveStatus != model.StatusReturned {
		return nil, apperr.Validation("approvestatus")
	}

	if err := ValidateForSubmit(rec); err != nil {
		return nil, err
	}

	// Resolve the first approver before touching the sheet; a broken routing
	// table should fail the whole submit, not strand a PENDING row.
	approver, err := s.refs.ApproverForLevel(ctx, model.LevelFirstApprover)
	if err != nil {
		return nil, apperr.NotFound("approver assignment", model.LevelFirstApprover)
	}

	prevStatus := rec.ApproveStatus
	rec.ApproveStatus = model.StatusPending
	rec.ApprovalLevel = model.LevelFirstApprover
	rec.FirstApproverName = ""
	rec.InitialApproveDate = ""
	rec.SecondApproverName = ""
	rec.SecondApproverDate = ""
	rec.ThirdApproverName = ""
	rec.ThirdApproverDate = ""
	rec.FinalApproverName = ""
	rec.FinalApproveDate = ""

	if err := s.forms.Save(ctx, rec); err != nil {
		return nil, err
	}

	// The FOR APPROVAL EMAIL sheet feeds the mail merge; one row per
	// submission, appended even on resubmit.
	_, err = s.forms.AppendData(ctx, s.forms.EmailSheet, []map[string]interface{}{{
		"gencode":     rec.Gencode,
		"custtype":    rec.CustType,
		"makername":   rec.MakerName,
		"datecreated": s.now().Format(stampLayout),
	}})
	if err != nil {
		s.log.Warn("approval email sheet append failed",
			zap.String("gencode", rec.Gencode), zap.Error(err))
	}

	event := s.buildEvent(rec, model.NotifTypeSubmission, model.ActionSubmitted, actor,
		approver.UserID, approver.FullName, "", prevStatus)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.enqueue(txCtx, event); err != nil {
			return err
		}
		return s.audit(txCtx, actor, model.ActionSubmitForm, rec, map[string]interface{}{
			"previous_status": prevStatus,
			"new_status":      rec.ApproveStatus,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("carf submitted",
		zap.String("gencode", rec.Gencode),
		zap.String("maker", actor.UserID),
		zap.String("level", rec.ApprovalLevel))
	return rec, nil
}

// Approve signs off the current level and advances the chain. Only the
// approver assigned to the row's current level may act.
func (s *workflowService) Approve(ctx context.Context, gencode string, actor Actor, remarks string) (*model.CustomerFormRecord, error) {
	rec, err := s.forms.LoadByGencode(ctx, gencode)
	if err != nil {
		return nil, err
	}

	if rec.ApproveStatus != model.StatusPending {
		return nil, apperr.Validation("approvestatus")
	}

	if err := s.requireAssignedApprover(ctx, rec.ApprovalLevel, actor); err != nil {
		return nil, err
	}

	stamp := s.now().Format(stampLayout)
	switch rec.ApprovalLevel {
	case model.LevelFirstApprover:
		rec.FirstApproverName = actor.FullName
		rec.InitialApproveDate = stamp
	case model.LevelSecondApprover:
		rec.SecondApproverName = actor.FullName
		rec.SecondApproverDate = stamp
	case model.LevelThirdApprover:
		rec.ThirdApproverName = actor.FullName
		rec.ThirdApproverDate = stamp
	case model.LevelComplianceFinal:
		rec.FinalApproverName = actor.FullName
		rec.FinalApproveDate = stamp
	default:
		return nil, apperr.Validation("approvallevel")
	}

	prevStatus := rec.ApproveStatus
	signedLevel := rec.ApprovalLevel

	var events []*model.Notification
	if next, ok := model.NextLevel(signedLevel); ok {
		rec.ApprovalLevel = next
		nextApprover, err := s.refs.ApproverForLevel(ctx, next)
		if err != nil {
			return nil, apperr.NotFound("approver assignment", next)
		}
		events = append(events,
			s.buildEvent(rec, model.NotifTypeApproval, model.ActionPending, actor,
				nextApprover.UserID, nextApprover.FullName, remarks, prevStatus))
	} else {
		rec.ApproveStatus = model.StatusApproved
	}

	// The maker always hears about progress, whether intermediate or final.
	events = append(events,
		s.buildEvent(rec, model.NotifTypeApproval, model.ActionApproved, actor,
			rec.MakerID, rec.MakerName, remarks, prevStatus))

	if err := s.forms.Save(ctx, rec); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, e := range events {
			if err := s.enqueue(txCtx, e); err != nil {
				return err
			}
		}
		return s.audit(txCtx, actor, model.ActionApproveForm, rec, map[string]interface{}{
			"signed_level":    signedLevel,
			"previous_status": prevStatus,
			"new_status":      rec.ApproveStatus,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("carf approved",
		zap.String("gencode", rec.Gencode),
		zap.String("approver", actor.UserID),
		zap.String("signed_level", signedLevel),
		zap.String("status", rec.ApproveStatus))
	return rec, nil
}

// Return sends a pending form back to its maker for correction.
func (s *workflowService) Return(ctx context.Context, gencode string, actor Actor, remarks string) (*model.CustomerFormRecord, error) {
	rec, err := s.forms.LoadByGencode(ctx, gencode)
	if err != nil {
		return nil, err
	}

	if rec.ApproveStatus != model.StatusPending {
		return nil, apperr.Validation("approvestatus")
	}

	if err := s.requireAssignedApprover(ctx, rec.ApprovalLevel, actor); err != nil {
		return nil, err
	}

	prevStatus := rec.ApproveStatus
	rec.ApproveStatus = model.StatusReturned
	rec.Remarks = remarks

	if err := s.forms.Save(ctx, rec); err != nil {
		return nil, err
	}

	event := s.buildEvent(rec, model.NotifTypeReturn, model.ActionReturned, actor,
		rec.MakerID, rec.MakerName, remarks, prevStatus)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.enqueue(txCtx, event); err != nil {
			return err
		}
		return s.audit(txCtx, actor, model.ActionReturnForm, rec, map[string]interface{}{
			"previous_status": prevStatus,
			"new_status":      rec.ApproveStatus,
			"remarks":         remarks,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("carf returned",
		zap.String("gencode", rec.Gencode),
		zap.String("approver", actor.UserID))
	return rec, nil
}

// Cancel withdraws a form permanently. Only the maker may cancel, and only
// before final approval.
func (s *workflowService) Cancel(ctx context.Context, gencode string, actor Actor, remarks string) (*model.CustomerFormRecord, error) {
	rec, err := s.forms.LoadByGencode(ctx, gencode)
	if err != nil {
		return nil, err
	}

	switch rec.ApproveStatus {
	case model.StatusDraft, model.StatusPending, model.StatusReturned:
	default:
		return nil, apperr.Validation("approvestatus")
	}

	if rec.MakerID != actor.UserID {
		return nil, apperr.Unauthorized("cancel form " + gencode)
	}

	prevStatus := rec.ApproveStatus
	pendingLevel := rec.ApprovalLevel
	rec.ApproveStatus = model.StatusCancelled
	rec.Remarks = remarks

	if err := s.forms.Save(ctx, rec); err != nil {
		return nil, err
	}

	var events []*model.Notification
	// A cancel mid-review tells the waiting approver their queue item is gone.
	if prevStatus == model.StatusPending {
		if approver, err := s.refs.ApproverForLevel(ctx, pendingLevel); err == nil {
			events = append(events,
				s.buildEvent(rec, model.NotifTypeCancel, model.ActionCancelled, actor,
					approver.UserID, approver.FullName, remarks, prevStatus))
		}
	}
	events = append(events,
		s.buildEvent(rec, model.NotifTypeCancel, model.ActionCancelled, actor,
			rec.MakerID, rec.MakerName, remarks, prevStatus))

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, e := range events {
			if err := s.enqueue(txCtx, e); err != nil {
				return err
			}
		}
		return s.audit(txCtx, actor, model.ActionCancelForm, rec, map[string]interface{}{
			"previous_status": prevStatus,
			"new_status":      rec.ApproveStatus,
			"remarks":         remarks,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("carf cancelled",
		zap.String("gencode", rec.Gencode),
		zap.String("maker", actor.UserID))
	return rec, nil
}

// --- Helpers ---

func (s *workflowService) requireAssignedApprover(ctx context.Context, level string, actor Actor) error {
	assignment, err := s.refs.ApproverForLevel(ctx, level)
	if err != nil {
		return apperr.NotFound("approver assignment", level)
	}
	if assignment.UserID != actor.UserID {
		return apperr.Unauthorized(fmt.Sprintf("approve at level %s", level))
	}
	return nil
}

func (s *workflowService) buildEvent(rec *model.CustomerFormRecord, notifType, action string, actor Actor, recipientID, recipientName, remarks, prevStatus string) *model.Notification {
	formData, _ := json.Marshal(rec)
	refID, _ := strconv.Atoi(rec.RowID)
	return &model.Notification{
		Gencode:          rec.Gencode,
		RefID:            refID,
		NotificationType: notifType,
		Action:           action,
		ActorUserID:      actor.UserID,
		ActorName:        actor.FullName,
		RecipientUserID:  recipientID,
		RecipientName:    recipientName,
		ApprovalLevel:    rec.ApprovalLevel,
		CustType:         rec.CustType,
		Title:            fmt.Sprintf("CARF %s %s", rec.Gencode, action),
		Message:          fmt.Sprintf("%s %s CARF %s", actor.FullName, action, rec.Gencode),
		Remarks:          remarks,
		FormData:         string(formData),
		PreviousStatus:   prevStatus,
		NewStatus:        rec.ApproveStatus,
	}
}

func (s *workflowService) enqueue(ctx context.Context, event *model.Notification) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	return s.outbox.Enqueue(ctx, &model.NotificationOutbox{
		Payload: string(payload),
		Status:  model.OutboxPending,
	})
}

func (s *workflowService) audit(ctx context.Context, actor Actor, action string, rec *model.CustomerFormRecord, details map[string]interface{}) error {
	entry := &model.AuditLog{
		Action:     action,
		EntityID:   rec.Gencode,
		EntityName: displayName(rec),
	}
	if user, err := s.users.GetByUserID(ctx, actor.UserID); err == nil {
		entry.UserID = &user.ID
	}
	if details != nil {
		b, _ := json.Marshal(details)
		entry.Details = string(b)
	}
	return s.audits.Log(ctx, entry)
}

func displayName(rec *model.CustomerFormRecord) string {
	if rec.Type == model.TypeCorporation {
		return rec.SoldToParty
	}
	name := rec.FirstName + " " + rec.LastName
	if name == " " {
		return rec.Gencode
	}
	return name
}
