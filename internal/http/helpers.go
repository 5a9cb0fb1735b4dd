package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	defaultPage  = 1
	defaultLimit = 50
)

// parsePositiveInt parses a 1-based positive integer query parameter,
// silently falling back to fallback when the value is absent, unparseable,
// or non-positive.
func parsePositiveInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
