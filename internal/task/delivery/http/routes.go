package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/commands", mw.RateLimit(), h.Execute)
	rg.GET("/tasks", mw.RateLimit(), h.List)
}
