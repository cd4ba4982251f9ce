package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePagination reads page/limit query params (defaults 1/10, limit
// capped at 100). On a malformed value it writes the 400 itself and
// returns ok=false.
func ParsePagination(c *gin.Context) (page, limit int, ok bool) {
	page, limit = 1, 10
	if v := c.Query("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			ValidationError(c, "Validation failed", []string{"page must be a positive integer"})
			return 0, 0, false
		}
		page = p
	}
	if v := c.Query("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 1 || l > 100 {
			ValidationError(c, "Validation failed", []string{"limit must be between 1 and 100"})
			return 0, 0, false
		}
		limit = l
	}
	return page, limit, true
}
