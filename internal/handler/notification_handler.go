package handler

import (
	"net/http"
	"strconv"

	"carf-backend/internal/middleware"
	"carf-backend/internal/service"
	"carf-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

// NewNotificationHandler sets up the routing dependencies for notification endpoints
func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// RegisterRoutes binds the endpoints under /api/notifications
func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	n := router.Group("/notifications", middleware.RequireAuth())
	{
		n.GET("", h.List)
		n.GET("/unread-count", h.UnreadCount)
		n.GET("/gencode/:gencode", h.ListByGencode)
		n.PUT("/read-all", h.MarkAllRead)
		n.PUT("/:id/read", h.MarkRead)
		n.DELETE("/read", h.DeleteAllRead)
		n.DELETE("/:id", h.Delete)
	}
}

// List returns the caller's notifications, newest first
// @Summary      List my notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int     false  "Max rows"
// @Param        type   query     string  false  "Filter by notification type"
// @Success      200    {object}  response.Response
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	if notifType := c.Query("type"); notifType != "" {
		rows, err := h.notifications.ListByType(c.Request.Context(), userID, notifType)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	rows, err := h.notifications.List(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// UnreadCount returns the caller's unread badge count
// @Summary      Count my unread notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notifications.UnreadCount(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"unread": count}))
}

// ListByGencode returns the event history of one CARF
// @Summary      List notifications for a gencode
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        gencode  path      string  true  "Customer gencode"
// @Success      200      {object}  response.Response
// @Router       /api/notifications/gencode/{gencode} [get]
func (h *NotificationHandler) ListByGencode(c *gin.Context) {
	rows, err := h.notifications.ListByGencode(c.Request.Context(), c.Param("gencode"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// MarkRead marks one notification as read
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Notification id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid notification id"))
		return
	}
	if err := h.notifications.MarkRead(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}

// MarkAllRead marks every notification of the caller as read
// @Summary      Mark all my notifications read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /api/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(c.Request.Context(), c.GetString("userID")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}

// Delete removes one notification
// @Summary      Delete a notification
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Notification id"
// @Success      200  {object}  response.Response
// @Router       /api/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid notification id"))
		return
	}
	if err := h.notifications.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}

// DeleteAllRead clears the caller's read notifications
// @Summary      Delete all my read notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /api/notifications/read [delete]
func (h *NotificationHandler) DeleteAllRead(c *gin.Context) {
	if err := h.notifications.DeleteAllRead(c.Request.Context(), c.GetString("userID")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}
