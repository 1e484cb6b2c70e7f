package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carf-backend/internal/middleware"
	"carf-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, userID, name, groupcode string) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")

	claims := jwt.MapClaims{
		"sub":       userID,
		"name":      name,
		"groupcode": groupcode,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.GetJWTSecret())
	require.NoError(t, err)
	return signed
}

type fakeNotificationService struct {
	rows        []model.Notification
	markedRead  []int64
	readAllFor  string
	deleted     []int64
	clearedFor  string
	listUserID  string
	listLimit   int
	typedFilter string
}

func (f *fakeNotificationService) List(ctx context.Context, recipientUserID string, limit int) ([]model.Notification, error) {
	f.listUserID = recipientUserID
	f.listLimit = limit
	return f.rows, nil
}

func (f *fakeNotificationService) ListByGencode(ctx context.Context, gencode string) ([]model.Notification, error) {
	return f.rows, nil
}

func (f *fakeNotificationService) ListByType(ctx context.Context, recipientUserID, notificationType string) ([]model.Notification, error) {
	f.typedFilter = notificationType
	return f.rows, nil
}

func (f *fakeNotificationService) UnreadCount(ctx context.Context, recipientUserID string) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeNotificationService) MarkRead(ctx context.Context, id int64) error {
	f.markedRead = append(f.markedRead, id)
	return nil
}

func (f *fakeNotificationService) MarkAllRead(ctx context.Context, recipientUserID string) error {
	f.readAllFor = recipientUserID
	return nil
}

func (f *fakeNotificationService) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeNotificationService) DeleteAllRead(ctx context.Context, recipientUserID string) error {
	f.clearedFor = recipientUserID
	return nil
}

func newNotificationRouter(svc *fakeNotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewNotificationHandler(svc).RegisterRoutes(api)
	return router
}

func authedRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "user1", "Anna Cruz", "SALES"))
	return req
}

func TestNotificationsRequireToken(t *testing.T) {
	router := newNotificationRouter(&fakeNotificationService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListScopedToCaller(t *testing.T) {
	svc := &fakeNotificationService{}
	router := newNotificationRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/notifications?limit=25"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user1", svc.listUserID)
	assert.Equal(t, 25, svc.listLimit)
}

func TestListWithTypeFilter(t *testing.T) {
	svc := &fakeNotificationService{}
	router := newNotificationRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/notifications?type=RETURN"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "RETURN", svc.typedFilter)
}

func TestMarkReadRejectsBadID(t *testing.T) {
	svc := &fakeNotificationService{}
	router := newNotificationRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPut, "/api/notifications/abc/read"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.markedRead)
}

func TestReadAllRouteDoesNotShadowMarkRead(t *testing.T) {
	svc := &fakeNotificationService{}
	router := newNotificationRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPut, "/api/notifications/read-all"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user1", svc.readAllFor)
	assert.Empty(t, svc.markedRead)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPut, "/api/notifications/7/read"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{7}, svc.markedRead)
}

func TestDeleteReadClearsOnlyCaller(t *testing.T) {
	svc := &fakeNotificationService{}
	router := newNotificationRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodDelete, "/api/notifications/read"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user1", svc.clearedFor)
	assert.Empty(t, svc.deleted)
}
