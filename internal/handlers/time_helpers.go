package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quikka/quikka-api/internal/httperr"
)

// uintParam parses a :id style path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, name+" must be a positive integer")
		return 0, false
	}
	return uint(v), true
}

// intQuery parses an optional integer query parameter with a fallback.
func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, name+" must be an integer")
		return 0, false
	}
	return v, true
}

// pagination reads offset/limit with sane caps.
func pagination(c *gin.Context) (offset, limit int, ok bool) {
	offset, ok = intQuery(c, "offset", 0)
	if !ok {
		return 0, 0, false
	}
	limit, ok = intQuery(c, "limit", 50)
	if !ok {
		return 0, 0, false
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return offset, limit, true
}
