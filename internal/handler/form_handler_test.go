package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"carf-backend/internal/service"
	"carf-backend/pkg/apperr"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFormService struct {
	records map[string]map[string]string
	updated []service.UpdateFormRequest
	emailed [][]map[string]interface{}
}

func newFakeFormService() *fakeFormService {
	return &fakeFormService{records: make(map[string]map[string]string)}
}

func (f *fakeFormService) CustomerByGencode(ctx context.Context, gencode string) (map[string]string, error) {
	rec, ok := f.records[gencode]
	if !ok {
		return nil, apperr.NotFound("customer with gencode", gencode)
	}
	return rec, nil
}

func (f *fakeFormService) SubmitToEmail(ctx context.Context, rows []map[string]interface{}) (int, error) {
	if len(rows) == 0 {
		return 0, apperr.Validation("rows")
	}
	f.emailed = append(f.emailed, rows)
	return len(rows), nil
}

func (f *fakeFormService) UpdateForm(ctx context.Context, req service.UpdateFormRequest) (int, error) {
	if req.RowID == "999" {
		return -1, apperr.NotFound("row", req.RowID)
	}
	f.updated = append(f.updated, req)
	return 2, nil
}

func (f *fakeFormService) NextDocNo(ctx context.Context, actor service.Actor) (string, error) {
	return "CARF-0000000042", nil
}

func newTestRouter(svc service.FormService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))
	NewFormHandler(svc).RegisterLegacyRoutes(router)
	return router
}

func TestCustomerByGencode(t *testing.T) {
	svc := newFakeFormService()
	svc.records["GEN-001"] = map[string]string{"gencode": "GEN-001", "soldtoparty": "ACME"}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customer-by-gencode/GEN-001", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ACME", body["soldtoparty"])
}

func TestCustomerByGencodeNotFound(t *testing.T) {
	router := newTestRouter(newFakeFormService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customer-by-gencode/MISSING", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitToEmailRejectsEmptyRows(t *testing.T) {
	router := newTestRouter(newFakeFormService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/submittoemail", bytes.NewBufferString(`{"rows": []}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateFormUnknownRow(t *testing.T) {
	router := newTestRouter(newFakeFormService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/updateform",
		bytes.NewBufferString(`{"rowId": "999", "data": {"gencode": "GEN-001"}}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(newFakeFormService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/submittoemail", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCORSHeadersOnPreflight(t *testing.T) {
	router := newTestRouter(newFakeFormService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/submittoemail", nil)
	req.Header.Set("Origin", "https://forms.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
