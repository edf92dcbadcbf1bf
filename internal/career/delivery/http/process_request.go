package http

import (
	"github.com/gin-gonic/gin"
)

// processQueryReq binds and validates the query request body.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
