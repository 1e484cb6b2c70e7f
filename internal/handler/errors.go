package handler

import (
	"errors"
	"net/http"

	"carf-backend/pkg/apperr"
	"carf-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeError maps a service error onto the wire format: validation failures
// carry the full offending-field list, upstream failures a details string,
// everything else the error text at its taxonomy status.
func writeError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ValidationFailed(http.StatusBadRequest, verr.Error(), verr.Fields))
		return
	}

	var uerr *apperr.UpstreamError
	if errors.As(err, &uerr) {
		c.JSON(http.StatusInternalServerError, response.ErrorWithDetails(http.StatusInternalServerError, "upstream request failed", uerr.Error()))
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "record not found"))
		return
	}

	status := apperr.Status(err)
	c.JSON(status, response.Error(status, err.Error()))
}
