package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-reservations/apperrors"
	"hotel-reservations/utils"
)

const dateLayout = "2006-01-02"

// respondError translates service errors to HTTP responses: NotFound -> 404,
// InvalidRequest -> 400, Conflict -> 409. Anything unclassified means a
// collaborator defect and surfaces as 500 without leaking details.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrInvalidRequest):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("❌ internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// parsePaging reads page/size query parameters with the defaults of the
// listing endpoints (page 0, size 10, capped at 100 rows).
func parsePaging(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return page, size
}

// optionalEmployeeID reads the employeeId query parameter used by the
// confirm/cancel endpoints; absence is allowed and means a system-initiated
// transition.
func optionalEmployeeID(c *gin.Context) (*uint, bool) {
	raw := c.Query("employeeId")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid employeeId")
		return nil, false
	}
	employeeID := uint(id)
	return &employeeID, true
}

func parseDate(c *gin.Context, value, name string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+", expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}
