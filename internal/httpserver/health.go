package httpserver

import (
	"github.com/gin-gonic/gin"

	"task-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "task-assistant"
)

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck returns ready once routes are mapped.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, healthBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}
