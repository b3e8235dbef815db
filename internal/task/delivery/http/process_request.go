package http

import (
	"github.com/gin-gonic/gin"
)

// processExecuteReq binds and validates the command request body.
func (h *handler) processExecuteReq(c *gin.Context) (executeReq, error) {
	var req executeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
