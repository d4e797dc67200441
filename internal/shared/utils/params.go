package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tracklet-io/tracklet/internal/shared/errors"
)

// ParseIDParam reads a positive numeric id from a URL path parameter.
func ParseIDParam(c *gin.Context, paramName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(paramName + " is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid "+paramName, raw)
	}
	return uint(id), nil
}
