package handler

import (
	"net/http"
	"strconv"

	"carf-backend/internal/middleware"
	"carf-backend/internal/model"
	"carf-backend/internal/service"
	"carf-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	refs service.ReferenceService
}

// NewReferenceHandler sets up the routing dependencies for reference-data endpoints
func NewReferenceHandler(refs service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{refs: refs}
}

// RegisterRoutes binds the admin lookup-table endpoints under /api
func (h *ReferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.RequireAuth()

	exec := router.Group("/exec-emails", auth)
	{
		exec.GET("", h.ListExecEmails)
		exec.POST("", h.SaveExecEmail)
		exec.DELETE("/:id", h.DeleteExecEmail)
	}

	approvers := router.Group("/approvers", auth)
	{
		approvers.GET("", h.ListApprovers)
		approvers.PUT("", h.SaveApprover)
	}

	agents := router.Group("/sales-agents", auth)
	{
		agents.GET("", h.ListSalesAgents)
		agents.POST("", h.SaveSalesAgent)
		agents.DELETE("/:id", h.DeleteSalesAgent)
	}

	router.GET("/companies", auth, h.ListCompanies)

	themes := router.Group("/monthly-themes", auth)
	{
		themes.GET("", h.ListMonthlyThemes)
		themes.POST("", h.SaveMonthlyTheme)
		themes.PUT("/:month/activate", h.ActivateMonthlyTheme)
	}
}

// @Summary  List executive emails
// @Tags     reference
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Response
// @Router   /api/exec-emails [get]
func (h *ReferenceHandler) ListExecEmails(c *gin.Context) {
	rows, err := h.refs.ListExecEmails(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// @Summary  Create or update an executive email
// @Tags     reference
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    payload body model.ExecEmail true "Executive directory row"
// @Success  200 {object} response.Response
// @Router   /api/exec-emails [post]
func (h *ReferenceHandler) SaveExecEmail(c *gin.Context) {
	var row model.ExecEmail
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	if err := h.refs.SaveExecEmail(c.Request.Context(), &row); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, row))
}

// @Summary  Delete an executive email
// @Tags     reference
// @Produce  json
// @Security BearerAuth
// @Param    id path int true "Row id"
// @Success  200 {object} response.Response
// @Router   /api/exec-emails/{id} [delete]
func (h *ReferenceHandler) DeleteExecEmail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid id"))
		return
	}
	if err := h.refs.DeleteExecEmail(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}

// @Summary  List approver assignments per level
// @Tags     reference
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Response
// @Router   /api/approvers [get]
func (h *ReferenceHandler) ListApprovers(c *gin.Context) {
	rows, err := h.refs.ListApprovers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// @Summary  Assign an approver to a level
// @Tags     reference
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    payload body model.ApproverAssignment true "Level assignment"
// @Success  200 {object} response.Response
// @Router   /api/approvers [put]
func (h *ReferenceHandler) SaveApprover(c *gin.Context) {
	var row model.ApproverAssignment
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	if err := h.refs.SaveApprover(c.Request.Context(), &row); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, row))
}

// @Summary  List sales agents
// @Tags     reference
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Response
// @Router   /api/sales-agents [get]
func (h *ReferenceHandler) ListSalesAgents(c *gin.Context) {
	rows, err := h.refs.ListSalesAgents(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// @Summary  Create or update a sales agent
// @Tags     reference
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    payload body model.SalesAgent true "Sales agent row"
// @Success  200 {object} response.Response
// @Router   /api/sales-agents [post]
func (h *ReferenceHandler) SaveSalesAgent(c *gin.Context) {
	var row model.SalesAgent
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	if err := h.refs.SaveSalesAgent(c.Request.Context(), &row); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, row))
}

// @Summary  Delete a sales agent
// @Tags     reference
// @Produce  json
// @Security BearerAuth
// @Param    id path int true "Row id"
// @Success  200 {object} response.Response
// @Router   /api/sales-agents/{id} [delete]
func (h *ReferenceHandler) DeleteSalesAgent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid id"))
		return
	}
	if err := h.refs.DeleteSalesAgent(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}

// @Summary  List companies
// @Tags     reference
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Response
// @Router   /api/companies [get]
func (h *ReferenceHandler) ListCompanies(c *gin.Context) {
	rows, err := h.refs.ListCompanies(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// @Summary  List monthly themes
// @Tags     reference
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Response
// @Router   /api/monthly-themes [get]
func (h *ReferenceHandler) ListMonthlyThemes(c *gin.Context) {
	rows, err := h.refs.ListMonthlyThemes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// @Summary  Create or update a monthly theme
// @Tags     reference
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    payload body model.MonthlyTheme true "Theme row"
// @Success  200 {object} response.Response
// @Router   /api/monthly-themes [post]
func (h *ReferenceHandler) SaveMonthlyTheme(c *gin.Context) {
	var row model.MonthlyTheme
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	if err := h.refs.SaveMonthlyTheme(c.Request.Context(), &row); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, row))
}

// @Summary  Activate one month's theme
// @Description  Activating a month deactivates every other month
// @Tags     reference
// @Produce  json
// @Security BearerAuth
// @Param    month path string true "Month key"
// @Success  200 {object} response.Response
// @Router   /api/monthly-themes/{month}/activate [put]
func (h *ReferenceHandler) ActivateMonthlyTheme(c *gin.Context) {
	if err := h.refs.ActivateMonthlyTheme(c.Request.Context(), c.Param("month")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}
