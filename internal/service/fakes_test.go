package service

import (
	"context"
	"fmt"
	"sync"

	"carf-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- sheets fake ---

type fakeSheetClient struct {
	sheets map[string][][]string
	failOn string
}

func newFakeSheetClient() *fakeSheetClient {
	return &fakeSheetClient{sheets: make(map[string][][]string)}
}

func (f *fakeSheetClient) GetValues(ctx context.Context, sheetName string) ([][]string, error) {
	if f.failOn == "get" {
		return nil, fmt.Errorf("quota exceeded")
	}
	return f.sheets[sheetName], nil
}

func (f *fakeSheetClient) Append(ctx context.Context, sheetName string, rows [][]string) error {
	if f.failOn == "append" {
		return fmt.Errorf("quota exceeded")
	}
	f.sheets[sheetName] = append(f.sheets[sheetName], rows...)
	return nil
}

func (f *fakeSheetClient) Update(ctx context.Context, sheetName string, rowNumber int, row []string) error {
	if f.failOn == "update" {
		return fmt.Errorf("quota exceeded")
	}
	values := f.sheets[sheetName]
	if rowNumber < 1 || rowNumber > len(values) {
		return fmt.Errorf("row %d out of range", rowNumber)
	}
	values[rowNumber-1] = row
	return nil
}

// --- repository fakes ---

type fakeReferenceRepo struct {
	approvers map[string]model.ApproverAssignment
	docNo     int64
}

func newFakeReferenceRepo() *fakeReferenceRepo {
	return &fakeReferenceRepo{approvers: make(map[string]model.ApproverAssignment)}
}

func (f *fakeReferenceRepo) assign(level, userid, fullname string) {
	f.approvers[level] = model.ApproverAssignment{Level: level, UserID: userid, FullName: fullname}
}

func (f *fakeReferenceRepo) ApproverForLevel(ctx context.Context, level string) (*model.ApproverAssignment, error) {
	a, ok := f.approvers[level]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (f *fakeReferenceRepo) SaveApprover(ctx context.Context, a *model.ApproverAssignment) error {
	f.approvers[a.Level] = *a
	return nil
}

func (f *fakeReferenceRepo) ListApprovers(ctx context.Context) ([]model.ApproverAssignment, error) {
	var out []model.ApproverAssignment
	for _, a := range f.approvers {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeReferenceRepo) NextDocNo(ctx context.Context) (string, error) {
	f.docNo++
	return fmt.Sprintf("CARF-%010d", f.docNo), nil
}

func (f *fakeReferenceRepo) ListExecEmails(ctx context.Context) ([]model.ExecEmail, error) {
	return nil, nil
}
func (f *fakeReferenceRepo) SaveExecEmail(ctx context.Context, e *model.ExecEmail) error { return nil }
func (f *fakeReferenceRepo) DeleteExecEmail(ctx context.Context, id int64) error         { return nil }
func (f *fakeReferenceRepo) ListSalesAgents(ctx context.Context) ([]model.SalesAgent, error) {
	return nil, nil
}
func (f *fakeReferenceRepo) SaveSalesAgent(ctx context.Context, a *model.SalesAgent) error {
	return nil
}
func (f *fakeReferenceRepo) DeleteSalesAgent(ctx context.Context, id int64) error { return nil }
func (f *fakeReferenceRepo) ListCompanies(ctx context.Context) ([]model.Company, error) {
	return nil, nil
}
func (f *fakeReferenceRepo) ListMonthlyThemes(ctx context.Context) ([]model.MonthlyTheme, error) {
	return nil, nil
}
func (f *fakeReferenceRepo) SaveMonthlyTheme(ctx context.Context, t *model.MonthlyTheme) error {
	return nil
}
func (f *fakeReferenceRepo) ActivateMonthlyTheme(ctx context.Context, month string) error {
	return nil
}

type fakeOutboxRepo struct {
	mu      sync.Mutex
	entries []model.NotificationOutbox
}

func (f *fakeOutboxRepo) Enqueue(ctx context.Context, entry *model.NotificationOutbox) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Status == "" {
		entry.Status = model.OutboxPending
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeOutboxRepo) ListByStatus(ctx context.Context, status string, limit int) ([]model.NotificationOutbox, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.NotificationOutbox
	for _, e := range f.entries {
		if e.Status == status && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeOutboxRepo) Claim(ctx context.Context, id uuid.UUID, fromStatus string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == id && f.entries[i].Status == fromStatus {
			f.entries[i].Status = model.OutboxSending
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id uuid.UUID) error {
	return f.mark(id, model.OutboxSent, "")
}

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id uuid.UUID, cause string) error {
	return f.mark(id, model.OutboxFailed, cause)
}

func (f *fakeOutboxRepo) mark(id uuid.UUID, status, cause string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].Status = status
			f.entries[i].LastError = cause
			f.entries[i].Attempts++
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeOutboxRepo) byStatus(status string) []model.NotificationOutbox {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.NotificationOutbox
	for _, e := range f.entries {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

type fakeAuditRepo struct {
	entries []model.AuditLog
}

func (f *fakeAuditRepo) Log(ctx context.Context, entry *model.AuditLog) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) List(ctx context.Context, page, limit int) ([]model.AuditLog, int64, error) {
	return f.entries, int64(len(f.entries)), nil
}

func (f *fakeAuditRepo) ListByGencode(ctx context.Context, gencode string) ([]model.AuditLog, error) {
	var out []model.AuditLog
	for _, e := range f.entries {
		if e.EntityID == gencode {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]model.User // keyed by business userid
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

func (f *fakeUserRepo) GetByUserID(ctx context.Context, userid string) (*model.User, error) {
	u, ok := f.users[userid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.UserID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, page, limit int) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	f.users[user.UserID] = *user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeUserRepo) SaveRefreshToken(ctx context.Context, token *model.RefreshToken) error {
	return nil
}

func (f *fakeUserRepo) GetRefreshToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) DeleteRefreshToken(ctx context.Context, token string) error { return nil }

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeNotificationRepo struct {
	rows   []model.Notification
	nextID int64
	failOn string
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	if f.failOn == "create" {
		return fmt.Errorf("connection refused")
	}
	f.nextID++
	n.ID = f.nextID
	f.rows = append(f.rows, *n)
	return nil
}

func (f *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientUserID string, limit int) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range f.rows {
		if n.RecipientUserID == recipientUserID && len(out) < limit {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) ListByGencode(ctx context.Context, gencode string) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range f.rows {
		if n.Gencode == gencode {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) ListByType(ctx context.Context, recipientUserID, notificationType string) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range f.rows {
		if n.RecipientUserID == recipientUserID && n.NotificationType == notificationType {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) UnreadCount(ctx context.Context, recipientUserID string) (int64, error) {
	var count int64
	for _, n := range f.rows {
		if n.RecipientUserID == recipientUserID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id int64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, recipientUserID string) error {
	for i := range f.rows {
		if f.rows[i].RecipientUserID == recipientUserID {
			f.rows[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(ctx context.Context, id int64) error {
	out := f.rows[:0]
	for _, n := range f.rows {
		if n.ID != id {
			out = append(out, n)
		}
	}
	f.rows = out
	return nil
}

func (f *fakeNotificationRepo) DeleteAllRead(ctx context.Context, recipientUserID string) error {
	out := f.rows[:0]
	for _, n := range f.rows {
		if !(n.RecipientUserID == recipientUserID && n.IsRead) {
			out = append(out, n)
		}
	}
	f.rows = out
	return nil
}

type fakeAuthRepo struct {
	auths   map[string]model.GroupAuthorization // groupcode|menucmd
	schemas []model.MenuSchema
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{auths: make(map[string]model.GroupAuthorization)}
}

func authKey(groupcode, menucmd string) string { return groupcode + "|" + menucmd }

func (f *fakeAuthRepo) Get(ctx context.Context, groupcode, menucmd string) (*model.GroupAuthorization, error) {
	a, ok := f.auths[authKey(groupcode, menucmd)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (f *fakeAuthRepo) Upsert(ctx context.Context, auth *model.GroupAuthorization) error {
	f.auths[authKey(auth.GroupCode, auth.MenuCmd)] = *auth
	return nil
}

func (f *fakeAuthRepo) ListForGroup(ctx context.Context, groupcode string) ([]model.GroupAuthorization, error) {
	var out []model.GroupAuthorization
	for _, a := range f.auths {
		if a.GroupCode == groupcode {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAuthRepo) FindSchema(ctx context.Context, menucmd string) (*model.MenuSchema, error) {
	for _, s := range f.schemas {
		if s.MenuCmd == menucmd {
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) ChildrenOf(ctx context.Context, menuid, menutype string) ([]model.MenuSchema, error) {
	var out []model.MenuSchema
	for _, s := range f.schemas {
		if s.MenuID == menuid && s.MenuType == menutype {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeAuthRepo) ListSchemas(ctx context.Context) ([]model.MenuSchema, error) {
	return f.schemas, nil
}

func (f *fakeAuthRepo) ListGroups(ctx context.Context) ([]model.UserGroup, error) {
	return nil, nil
}

type fakePusher struct {
	sent map[string][][]byte
}

func newFakePusher() *fakePusher {
	return &fakePusher{sent: make(map[string][][]byte)}
}

func (f *fakePusher) SendToUser(userID string, payload []byte) {
	f.sent[userID] = append(f.sent[userID], payload)
}
