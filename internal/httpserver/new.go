package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/middleware"
	taskHTTP "task-assistant/internal/task/delivery/http"
	tgDelivery "task-assistant/internal/task/delivery/telegram"
	"task-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string
	mw          middleware.Middleware

	// Task domain
	taskHandler     taskHTTP.Handler
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	CORSOrigins []string // empty disables CORS
	Middleware  middleware.Middleware

	// Task domain
	TaskHandler     taskHTTP.Handler
	TelegramHandler tgDelivery.Handler // optional
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		corsOrigins:     cfg.CORSOrigins,
		mw:              cfg.Middleware,
		taskHandler:     cfg.TaskHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}

// Handler exposes the router, e.g. for httptest.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
