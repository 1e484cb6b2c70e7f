package handler

import (
	"io"
	"net/http"

	"carf-backend/internal/drive"
	"carf-backend/internal/middleware"
	"carf-backend/internal/service"
	"carf-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	docService service.DocumentService
	log        *zap.Logger
}

// NewDocumentHandler sets up the routing dependencies for attachment endpoints
func NewDocumentHandler(docService service.DocumentService, log *zap.Logger) *DocumentHandler {
	return &DocumentHandler{docService: docService, log: log}
}

// RegisterLegacyRoutes binds the Drive-facing endpoints at the root.
func (h *DocumentHandler) RegisterLegacyRoutes(router *gin.Engine) {
	router.GET("/list-files/:gencode", h.ListFiles)
	router.GET("/download-zip/:gencode", h.DownloadZip)
	router.DELETE("/delete-file/:id", h.DeleteFile)
	router.GET("/drive-file/:id", h.DriveFile)
	router.POST("/upload-files", h.UploadFiles)
}

// ListFiles returns the attachments already stored for one document type,
// the list the upload dialog shows before adding more
// @Summary      List a gencode's attachments
// @Tags         documents
// @Produce      json
// @Param        gencode  path      string  true  "Customer gencode"
// @Param        docType  query     string  true  "Document type folder"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /list-files/{gencode} [get]
func (h *DocumentHandler) ListFiles(c *gin.Context) {
	docType := c.Query("docType")
	if docType == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "docType query parameter is required"))
		return
	}

	files, err := h.docService.ListFiles(c.Request.Context(), c.Param("gencode"), docType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, files))
}

// DownloadZip streams every attachment of a gencode as one zip
// @Summary      Download all attachments as a zip
// @Tags         documents
// @Produce      application/zip
// @Param        gencode  path      string  true  "Customer gencode"
// @Success      200      {file}    file
// @Failure      404      {object}  response.Response
// @Router       /download-zip/{gencode} [get]
func (h *DocumentHandler) DownloadZip(c *gin.Context) {
	buf, filename, err := h.docService.DownloadZip(c.Request.Context(), c.Param("gencode"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

// DeleteFile removes one attachment
// @Summary      Delete an attachment
// @Description  Deletes a Drive file; an already-missing file still reports success
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Drive file id"
// @Success      200  {object}  map[string]interface{}
// @Router       /delete-file/{id} [delete]
func (h *DocumentHandler) DeleteFile(c *gin.Context) {
	fileID := c.Param("id")
	if err := h.docService.Delete(c.Request.Context(), fileID, middleware.ActorFrom(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "fileId": fileID})
}

// DriveFile streams one attachment inline
// @Summary      Stream an attachment
// @Description  Streams the file body with its original mime type for inline preview
// @Tags         documents
// @Param        id  path  string  true  "Drive file id"
// @Success      200 {file} file
// @Failure      404 {object} response.Response
// @Router       /drive-file/{id} [get]
func (h *DocumentHandler) DriveFile(c *gin.Context) {
	info, body, err := h.docService.Stream(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	defer body.Close()

	c.Header("Content-Disposition", `inline; filename="`+info.Name+`"`)
	c.Header("Content-Type", info.MimeType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		// headers are gone already; log and give up on this response
		h.log.Warn("drive file stream aborted", zap.String("file_id", info.ID), zap.Error(err))
	}
}

// UploadFiles stores attachments under the gencode's doc-type folder
// @Summary      Upload attachments
// @Description  Multipart upload of one or more files into gencode/docType on Drive
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        gencode  formData  string  true  "Customer gencode"
// @Param        docType  formData  string  true  "Document type folder"
// @Param        files    formData  file    true  "Files"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /upload-files [post]
func (h *DocumentHandler) UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid multipart form: "+err.Error()))
		return
	}

	gencode := c.PostForm("gencode")
	docType := c.PostForm("docType")

	var uploads []drive.UploadFile
	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Unreadable file "+fh.Filename))
			return
		}
		defer f.Close()
		uploads = append(uploads, drive.UploadFile{
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Content:  f,
		})
	}

	uploaded, err := h.docService.Upload(c.Request.Context(), gencode, docType, uploads, middleware.ActorFrom(c))
	if err != nil {
		// earlier files may have landed; report both
		if len(uploaded) > 0 {
			c.JSON(http.StatusInternalServerError, response.ErrorWithDetails(http.StatusInternalServerError, "partial upload", err.Error()))
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, uploaded))
}
