package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id path parameter. Every collection uses numeric
// auto-increment ids; a non-numeric id is a client error, not a lookup
// miss. Writes the 400 itself and reports ok=false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: must be numeric"})
		return 0, false
	}
	return uint(id), true
}
