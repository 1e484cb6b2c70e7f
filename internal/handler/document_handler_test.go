package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"carf-backend/internal/drive"
	"carf-backend/internal/service"
	"carf-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDocumentService struct {
	files       map[string][]drive.FileInfo // keyed gencode/docType
	listedPaths []string
}

func newFakeDocumentService() *fakeDocumentService {
	return &fakeDocumentService{files: make(map[string][]drive.FileInfo)}
}

func (f *fakeDocumentService) Upload(ctx context.Context, gencode, docType string, files []drive.UploadFile, actor service.Actor) ([]drive.FileInfo, error) {
	return nil, nil
}

func (f *fakeDocumentService) ListFiles(ctx context.Context, gencode, docType string) ([]drive.FileInfo, error) {
	key := gencode + "/" + docType
	f.listedPaths = append(f.listedPaths, key)
	files, ok := f.files[key]
	if !ok {
		return nil, apperr.NotFound("gencode folder", gencode)
	}
	return files, nil
}

func (f *fakeDocumentService) DownloadZip(ctx context.Context, gencode string) (*bytes.Buffer, string, error) {
	if _, ok := f.files[gencode+"/DTI"]; !ok {
		return nil, "", apperr.NotFound("gencode folder", gencode)
	}
	return bytes.NewBufferString("zipbytes"), gencode + "-documents.zip", nil
}

func (f *fakeDocumentService) Stream(ctx context.Context, fileID string) (drive.FileInfo, io.ReadCloser, error) {
	return drive.FileInfo{}, nil, apperr.NotFound("file", fileID)
}

func (f *fakeDocumentService) Delete(ctx context.Context, fileID string, actor service.Actor) error {
	return nil
}

func newDocumentRouter(svc service.DocumentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewDocumentHandler(svc, zap.NewNop()).RegisterLegacyRoutes(router)
	return router
}

func TestListFilesForDocType(t *testing.T) {
	svc := newFakeDocumentService()
	svc.files["GEN-001/DTI"] = []drive.FileInfo{{ID: "f1", Name: "permit.pdf", MimeType: "application/pdf"}}
	router := newDocumentRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list-files/GEN-001?docType=DTI", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"GEN-001/DTI"}, svc.listedPaths)
	var body struct {
		Data []drive.FileInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "permit.pdf", body.Data[0].Name)
}

func TestListFilesRequiresDocType(t *testing.T) {
	svc := newFakeDocumentService()
	router := newDocumentRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list-files/GEN-001", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.listedPaths)
}

func TestListFilesUnknownGencode(t *testing.T) {
	router := newDocumentRouter(newFakeDocumentService())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list-files/MISSING?docType=DTI", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadZipFilename(t *testing.T) {
	svc := newFakeDocumentService()
	svc.files["GEN-001/DTI"] = []drive.FileInfo{{ID: "f1", Name: "permit.pdf"}}
	router := newDocumentRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download-zip/GEN-001", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="GEN-001-documents.zip"`, w.Header().Get("Content-Disposition"))
}
