package httpserver

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-assistant/internal/model"
	taskHTTP "task-assistant/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.Trace())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}
	if len(srv.corsOrigins) > 0 {
		srv.gin.Use(cors.New(cors.Config{
			AllowOrigins:  srv.corsOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP server mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	taskHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), srv.taskHandler, srv.mw)
	srv.l.Infof(ctx, "Task routes registered under /api/v1")

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.mw.RateLimit(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
