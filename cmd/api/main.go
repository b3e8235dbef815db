package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-assistant/config"
	_ "task-assistant/docs" // Swagger docs
	"task-assistant/internal/bootstrap"
	"task-assistant/internal/httpserver"
	"task-assistant/internal/middleware"
	taskHTTP "task-assistant/internal/task/delivery/http"
	tgDelivery "task-assistant/internal/task/delivery/telegram"
	"task-assistant/pkg/log"
	"task-assistant/pkg/telegram"
)

// @title       Task Assistant API
// @description Personal task tracker driven by short line commands, over HTTP and Telegram.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := bootstrap.NewLogger(cfg.Logger)
	defer log.Sync(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Assistant API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Path)

	// 3. Task domain
	taskUC, err := bootstrap.NewTaskUseCase(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task domain: ", err)
		return
	}

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, taskUC, bot, cfg.UI.Welcome, cfg.Telegram.SecretToken)
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 5. HTTP Server
	mw := middleware.New(logger, middleware.RateLimitOptions{
		PerMin:    cfg.RateLimit.PerMin,
		Burst:     cfg.RateLimit.Burst,
		CacheSize: cfg.RateLimit.CacheSize,
	})
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		CORSOrigins:     cfg.HTTPServer.CORSOrigins,
		Middleware:      mw,
		TaskHandler:     taskHTTP.New(logger, taskUC),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at our webhook route, discovering the public
// URL through ngrok when none is configured.
func registerWebhook(ctx context.Context, l log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI)
		if err != nil {
			l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			l.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}
	if webhookURL == "" {
		l.Warn(ctx, "Telegram webhook not registered: no telegram.webhook_url")
		return
	}

	if cfg.SecretToken == "" {
		l.Warn(ctx, "telegram.secret_token is empty: webhook updates will not be authenticated")
	}
	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	l.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
