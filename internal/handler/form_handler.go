package handler

import (
	"net/http"

	"carf-backend/internal/middleware"
	"carf-backend/internal/service"
	"carf-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	formService service.FormService
}

// NewFormHandler sets up the routing dependencies for form endpoints
func NewFormHandler(formService service.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// RegisterLegacyRoutes binds the sheet-facing endpoints at the root, the
// paths the form frontend has always called.
func (h *FormHandler) RegisterLegacyRoutes(router *gin.Engine) {
	router.GET("/customer-by-gencode/:gencode", h.CustomerByGencode)
	router.POST("/submittoemail", h.SubmitToEmail)
	router.POST("/updateform", h.UpdateForm)
}

// RegisterRoutes binds the authenticated form endpoints under /api
func (h *FormHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/carf-docno", middleware.RequireAuth(), h.NextDocNo)
}

// CustomerByGencode returns one CARF row keyed by header name
// @Summary      Get customer form by gencode
// @Description  Looks up the CARF row for a gencode and returns it as a column-keyed object
// @Tags         forms
// @Produce      json
// @Param        gencode  path      string  true  "Customer gencode"
// @Success      200      {object}  map[string]string
// @Failure      404      {object}  response.Response
// @Router       /customer-by-gencode/{gencode} [get]
func (h *FormHandler) CustomerByGencode(c *gin.Context) {
	record, err := h.formService.CustomerByGencode(c.Request.Context(), c.Param("gencode"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// SubmitToEmail appends rows to the approval-email sheet
// @Summary      Queue approval email rows
// @Description  Appends the given rows to the FORAPPROVALEMAIL sheet
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SubmitToEmailRequest  true  "Rows to append"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /submittoemail [post]
func (h *FormHandler) SubmitToEmail(c *gin.Context) {
	var req service.SubmitToEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	appended, err := h.formService.SubmitToEmail(c.Request.Context(), req.Rows)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"appended": appended}))
}

// UpdateForm overwrites one CARF row
// @Summary      Update a customer form row
// @Description  Full-row overwrite addressed by the sheet row key; formatted fields are normalized first
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateFormRequest  true  "Row id and column values"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /updateform [post]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	var req service.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	rowNum, err := h.formService.UpdateForm(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"row": rowNum}))
}

// NextDocNo allocates the next CARF document number
// @Summary      Allocate a CARF document number
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/carf-docno [post]
func (h *FormHandler) NextDocNo(c *gin.Context) {
	docNo, err := h.formService.NextDocNo(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"doc_no": docNo}))
}
