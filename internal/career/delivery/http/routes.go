package http

import (
	"github.com/gin-gonic/gin"

	"careermate/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Query is rate limited per client IP; session lookup is not.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/query", mw.RateLimit(), h.Query)
	rg.GET("/sessions/:id", h.Session)
}
