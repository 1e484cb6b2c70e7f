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

type AuditHandler struct {
	auditService service.AuditService
	authz        service.AuthorizationService
}

func NewAuditHandler(auditService service.AuditService, authz service.AuthorizationService) *AuditHandler {
	return &AuditHandler{auditService: auditService, authz: authz}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/audit-logs", middleware.RequireAuth())
	{
		group.GET("", middleware.RequireProgramAccess(h.authz, model.ProgramAuthAdmin), h.GetAuditLogs)
		group.GET("/gencode/:gencode", h.GetAuditLogsByGencode)
	}
}

// GetAuditLogs retrieves strictly paginated records with Users pre-loaded joining details
// @Summary      Get audit logs
// @Description  Retrieves list of audit logs securely mapping User interaction history
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve audit logs: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"total": total,
		"page":  page,
		"limit": limit,
	}))
}

// GetAuditLogsByGencode returns one CARF row's change history
// @Summary      Get audit logs for a gencode
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        gencode  path      string  true  "Customer gencode"
// @Success      200      {object}  response.Response
// @Router       /api/audit-logs/gencode/{gencode} [get]
func (h *AuditHandler) GetAuditLogsByGencode(c *gin.Context) {
	logs, err := h.auditService.GetAuditLogsByGencode(c.Request.Context(), c.Param("gencode"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, logs))
}
