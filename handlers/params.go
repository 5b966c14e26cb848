package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the numeric :id route parameter. A non-numeric value can
// never match a row, so callers report a parse failure as not found instead
// of letting the database reject the comparison.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err == nil
}
