package handler

import (
	"context"
	"net/http"

	"carf-backend/internal/middleware"
	"carf-backend/internal/model"
	"carf-backend/internal/service"
	"carf-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WorkflowHandler struct {
	workflow   service.WorkflowService
	dispatcher service.OutboxDispatcher
	authz      service.AuthorizationService
	log        *zap.Logger
}

// NewWorkflowHandler sets up the routing dependencies for approval endpoints
func NewWorkflowHandler(workflow service.WorkflowService, dispatcher service.OutboxDispatcher, authz service.AuthorizationService, log *zap.Logger) *WorkflowHandler {
	return &WorkflowHandler{workflow: workflow, dispatcher: dispatcher, authz: authz, log: log}
}

// RegisterRoutes binds the transition endpoints under /api/carf
func (h *WorkflowHandler) RegisterRoutes(router *gin.RouterGroup) {
	carf := router.Group("/carf", middleware.RequireAuth())
	{
		carf.POST("/:gencode/submit", middleware.RequireProgramAccess(h.authz, model.ProgramCarfEntry), h.Submit)
		carf.POST("/:gencode/approve", middleware.RequireProgramAccess(h.authz, model.ProgramCarfApprove), h.Approve)
		carf.POST("/:gencode/return", middleware.RequireProgramAccess(h.authz, model.ProgramCarfApprove), h.Return)
		carf.POST("/:gencode/cancel", middleware.RequireProgramAccess(h.authz, model.ProgramCarfEntry), h.Cancel)
	}
}

type transitionBody struct {
	Remarks string `json:"remarks"`
}

func (h *WorkflowHandler) transition(c *gin.Context, fn func(ctx context.Context, gencode string, actor service.Actor, remarks string) (interface{}, error)) {
	var body transitionBody
	// remarks are optional; an empty body is fine
	_ = c.ShouldBindJSON(&body)

	record, err := fn(c.Request.Context(), c.Param("gencode"), middleware.ActorFrom(c), body.Remarks)
	if err != nil {
		writeError(c, err)
		return
	}

	// Synchronous drain so the recipient's websocket fires before the
	// response lands; failures stay queued for the retry ticker.
	if _, err := h.dispatcher.Dispatch(c.Request.Context()); err != nil {
		h.log.Warn("outbox dispatch after transition failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// Submit moves a draft into the approval chain
// @Summary      Submit a CARF for approval
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gencode  path      string                     true   "Customer gencode"
// @Param        payload  body      transitionBody             false  "Optional remarks"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/carf/{gencode}/submit [post]
func (h *WorkflowHandler) Submit(c *gin.Context) {
	h.transition(c, func(ctx context.Context, gencode string, actor service.Actor, _ string) (interface{}, error) {
		return h.workflow.Submit(ctx, gencode, actor)
	})
}

// Approve signs off the current level
// @Summary      Approve a pending CARF at the caller's level
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gencode  path      string          true   "Customer gencode"
// @Param        payload  body      transitionBody  false  "Optional remarks"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /api/carf/{gencode}/approve [post]
func (h *WorkflowHandler) Approve(c *gin.Context) {
	h.transition(c, func(ctx context.Context, gencode string, actor service.Actor, remarks string) (interface{}, error) {
		return h.workflow.Approve(ctx, gencode, actor, remarks)
	})
}

// Return sends a pending CARF back to its maker
// @Summary      Return a pending CARF for correction
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gencode  path      string          true  "Customer gencode"
// @Param        payload  body      transitionBody  true  "Return remarks"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /api/carf/{gencode}/return [post]
func (h *WorkflowHandler) Return(c *gin.Context) {
	h.transition(c, func(ctx context.Context, gencode string, actor service.Actor, remarks string) (interface{}, error) {
		return h.workflow.Return(ctx, gencode, actor, remarks)
	})
}

// Cancel withdraws a CARF permanently
// @Summary      Cancel a CARF
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gencode  path      string          true   "Customer gencode"
// @Param        payload  body      transitionBody  false  "Optional remarks"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /api/carf/{gencode}/cancel [post]
func (h *WorkflowHandler) Cancel(c *gin.Context) {
	h.transition(c, func(ctx context.Context, gencode string, actor service.Actor, remarks string) (interface{}, error) {
		return h.workflow.Cancel(ctx, gencode, actor, remarks)
	})
}
