package handler

import (
	"net/http"

	"carf-backend/internal/middleware"
	"carf-backend/internal/model"
	"carf-backend/internal/service"
	"carf-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthorizationHandler struct {
	authz service.AuthorizationService
}

// NewAuthorizationHandler sets up the routing dependencies for access-control endpoints
func NewAuthorizationHandler(authz service.AuthorizationService) *AuthorizationHandler {
	return &AuthorizationHandler{authz: authz}
}

// RegisterRoutes binds the endpoints under /api
func (h *AuthorizationHandler) RegisterRoutes(router *gin.RouterGroup) {
	a := router.Group("/authorizations", middleware.RequireAuth())
	{
		a.GET("/:groupcode", h.ListForGroup)
		a.GET("/:groupcode/:menucmd", h.Check)
		a.PUT("", middleware.RequireProgramAccess(h.authz, model.ProgramAuthAdmin), h.Set)
	}
	router.GET("/schemas", middleware.RequireAuth(), h.ListSchemas)
	router.GET("/groups", middleware.RequireAuth(), h.ListGroups)
}

// ListForGroup returns every authorization row of a group
// @Summary      List a group's authorizations
// @Tags         authorizations
// @Produce      json
// @Security     BearerAuth
// @Param        groupcode  path      string  true  "Group code"
// @Success      200        {object}  response.Response
// @Router       /api/authorizations/{groupcode} [get]
func (h *AuthorizationHandler) ListForGroup(c *gin.Context) {
	rows, err := h.authz.ListForGroup(c.Request.Context(), c.Param("groupcode"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// Check answers the access level for one group/program pair
// @Summary      Check a group's access to a program
// @Tags         authorizations
// @Produce      json
// @Security     BearerAuth
// @Param        groupcode  path      string  true  "Group code"
// @Param        menucmd    path      string  true  "Menu command"
// @Success      200        {object}  response.Response
// @Router       /api/authorizations/{groupcode}/{menucmd} [get]
func (h *AuthorizationHandler) Check(c *gin.Context) {
	level, err := h.authz.AccessLevel(c.Request.Context(), c.Param("groupcode"), c.Param("menucmd"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"groupcode":   c.Param("groupcode"),
		"menucmd":     c.Param("menucmd"),
		"accesslevel": level,
	}))
}

// Set grants or revokes access, fanning out over the menu subtree
// @Summary      Set a group's access for a menu or program
// @Description  Writing a menu node applies the level to every submenu and program beneath it
// @Tags         authorizations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.SetAuthorizationRequest  true  "Grant payload"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/authorizations [put]
func (h *AuthorizationHandler) Set(c *gin.Context) {
	var req service.SetAuthorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	written, err := h.authz.Set(c.Request.Context(), req, middleware.ActorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"rows": written}))
}

// ListSchemas returns the full menu/program tree
// @Summary      List menu schemas
// @Tags         authorizations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /api/schemas [get]
func (h *AuthorizationHandler) ListSchemas(c *gin.Context) {
	rows, err := h.authz.ListSchemas(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// ListGroups returns the staff groups
// @Summary      List user groups
// @Tags         authorizations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /api/groups [get]
func (h *AuthorizationHandler) ListGroups(c *gin.Context) {
	rows, err := h.authz.ListGroups(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}
