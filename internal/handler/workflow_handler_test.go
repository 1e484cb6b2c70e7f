package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"carf-backend/internal/model"
	"carf-backend/internal/service"
	"carf-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWorkflowService struct {
	calls   []string
	remarks string
	err     error
}

func (f *fakeWorkflowService) record(op, gencode string, actor service.Actor) (*model.CustomerFormRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, op+":"+gencode+":"+actor.UserID)
	return &model.CustomerFormRecord{Gencode: gencode}, nil
}

func (f *fakeWorkflowService) Submit(ctx context.Context, gencode string, actor service.Actor) (*model.CustomerFormRecord, error) {
	return f.record("submit", gencode, actor)
}

func (f *fakeWorkflowService) Approve(ctx context.Context, gencode string, actor service.Actor, remarks string) (*model.CustomerFormRecord, error) {
	f.remarks = remarks
	return f.record("approve", gencode, actor)
}

func (f *fakeWorkflowService) Return(ctx context.Context, gencode string, actor service.Actor, remarks string) (*model.CustomerFormRecord, error) {
	f.remarks = remarks
	return f.record("return", gencode, actor)
}

func (f *fakeWorkflowService) Cancel(ctx context.Context, gencode string, actor service.Actor, remarks string) (*model.CustomerFormRecord, error) {
	f.remarks = remarks
	return f.record("cancel", gencode, actor)
}

type fakeDispatcher struct {
	dispatched int
}

func (f *fakeDispatcher) Dispatch(ctx context.Context) (int, error) {
	f.dispatched++
	return 1, nil
}

func (f *fakeDispatcher) RetryFailed(ctx context.Context) (int, error) { return 0, nil }

// fakeAuthzService grants FULL per (groupcode, menucmd) key.
type fakeAuthzService struct {
	full map[string]bool
}

func (f *fakeAuthzService) grant(groupcode, menucmd string) {
	if f.full == nil {
		f.full = make(map[string]bool)
	}
	f.full[groupcode+"/"+menucmd] = true
}

func (f *fakeAuthzService) AccessLevel(ctx context.Context, groupcode, menucmd string) (string, error) {
	if f.full[groupcode+"/"+menucmd] {
		return model.AccessFull, nil
	}
	return model.AccessNone, nil
}

func (f *fakeAuthzService) Set(ctx context.Context, req service.SetAuthorizationRequest, actor service.Actor) (int, error) {
	return 0, nil
}

func (f *fakeAuthzService) ListForGroup(ctx context.Context, groupcode string) ([]model.GroupAuthorization, error) {
	return nil, nil
}

func (f *fakeAuthzService) ListSchemas(ctx context.Context) ([]model.MenuSchema, error) {
	return nil, nil
}

func (f *fakeAuthzService) ListGroups(ctx context.Context) ([]model.UserGroup, error) {
	return nil, nil
}

func newWorkflowRouter(workflow *fakeWorkflowService, dispatcher *fakeDispatcher, authz *fakeAuthzService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewWorkflowHandler(workflow, dispatcher, authz, zap.NewNop()).RegisterRoutes(api)
	return router
}

func TestSubmitDispatchesOutbox(t *testing.T) {
	workflow := &fakeWorkflowService{}
	dispatcher := &fakeDispatcher{}
	authz := &fakeAuthzService{}
	authz.grant("SALES", model.ProgramCarfEntry)
	router := newWorkflowRouter(workflow, dispatcher, authz)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/carf/GEN-001/submit"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"submit:GEN-001:user1"}, workflow.calls)
	assert.Equal(t, 1, dispatcher.dispatched)
}

func TestSubmitDeniedWithoutEntryProgram(t *testing.T) {
	workflow := &fakeWorkflowService{}
	dispatcher := &fakeDispatcher{}
	router := newWorkflowRouter(workflow, dispatcher, &fakeAuthzService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/carf/GEN-001/submit"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, workflow.calls)
	assert.Zero(t, dispatcher.dispatched)
}

func TestApproveRequiresApproveProgram(t *testing.T) {
	workflow := &fakeWorkflowService{}
	authz := &fakeAuthzService{}
	authz.grant("SALES", model.ProgramCarfEntry) // entry alone must not unlock approve
	router := newWorkflowRouter(workflow, &fakeDispatcher{}, authz)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/carf/GEN-001/approve"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, workflow.calls)
}

func TestReturnCarriesRemarks(t *testing.T) {
	workflow := &fakeWorkflowService{}
	authz := &fakeAuthzService{}
	authz.grant("SALES", model.ProgramCarfApprove)
	router := newWorkflowRouter(workflow, &fakeDispatcher{}, authz)

	req := httptest.NewRequest(http.MethodPost, "/api/carf/GEN-001/return",
		bytes.NewBufferString(`{"remarks": "missing TIN"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "appr1", "Ben Reyes", "SALES"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "missing TIN", workflow.remarks)
	assert.Equal(t, []string{"return:GEN-001:appr1"}, workflow.calls)
}

func TestTransitionErrorSkipsDispatch(t *testing.T) {
	workflow := &fakeWorkflowService{err: apperr.Unauthorized("cancel a CARF you did not create")}
	dispatcher := &fakeDispatcher{}
	authz := &fakeAuthzService{}
	authz.grant("SALES", model.ProgramCarfEntry)
	router := newWorkflowRouter(workflow, dispatcher, authz)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/carf/GEN-001/cancel"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, dispatcher.dispatched)
}
