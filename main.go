package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/waguard/whatsapp-guard/environments"
	"github.com/waguard/whatsapp-guard/handlers"
	"github.com/waguard/whatsapp-guard/internal/service"
	"github.com/waguard/whatsapp-guard/pkg/gemini"
	"github.com/waguard/whatsapp-guard/pkg/logger"
	"github.com/waguard/whatsapp-guard/pkg/validator"
	"github.com/waguard/whatsapp-guard/pkg/whatsapp"
	"github.com/waguard/whatsapp-guard/routes"
)

func main() {
	logger.Init()

	// Load config
	cfg := environments.Load()

	logger.Infof("Starting WhatsApp spam-guard service...")

	// Missing secrets degrade individual features; the server always starts
	// so the platform keeps a live endpoint to deliver (and verify) against.
	if cfg.WhatsApp.APIToken == "" || cfg.WhatsApp.PhoneNumberID == "" {
		logger.Warnf("WHATSAPP_API_TOKEN or PHONE_NUMBER_ID not set, outbound sends are disabled")
	}
	if cfg.WhatsApp.VerifyToken == "" {
		logger.Warnf("VERIFY_TOKEN not set, webhook verification will reject all handshakes")
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warnf("GEMINI_API_KEY not set, message analysis is disabled")
	}

	// Initialize API clients
	geminiClient := gemini.NewClient(cfg.Gemini)
	whatsappClient := whatsapp.NewClient(cfg.WhatsApp)

	// Initialize service
	relayService := service.NewRelayService(geminiClient, whatsappClient)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	webhookHandler := handlers.NewWebhookHandler(relayService, cfg)
	messageHandler := handlers.NewMessageHandler(relayService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())

	// Setup routes
	routes.RegisterRoutes(e, healthHandler, webhookHandler, messageHandler, cfg)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Infof("Server starting on http://localhost%s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	} else {
		logger.Infof("HTTP server stopped successfully")
	}

	logger.Infof("Graceful shutdown completed")
}
