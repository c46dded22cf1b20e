package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/waguard/whatsapp-guard/environments"
	"github.com/waguard/whatsapp-guard/handlers"
	"github.com/waguard/whatsapp-guard/internal/middlewares"
)

// RegisterRoutes registers all API routes with middleware
func RegisterRoutes(
	e *echo.Echo,
	healthHandler *handlers.HealthHandler,
	webhookHandler *handlers.WebhookHandler,
	messageHandler *handlers.MessageHandler,
	cfg *environments.Config,
) {
	e.GET("/health", healthHandler.Health)

	// Cloud API webhook: GET is the verification handshake, POST carries
	// message deliveries. Both are unauthenticated by design; the GET is
	// guarded by the verify token, the POST by obscurity of the URL plus
	// the always-200 contract.
	e.GET("/webhook", webhookHandler.Verify)
	e.POST("/webhook", webhookHandler.Receive)

	// Operator API with its own key
	v1 := e.Group("/api/v1")
	messages := v1.Group("/messages", middlewares.APIKeyAuth(cfg.Auth.MessagesAPIKey))

	messages.POST("/send", messageHandler.SendMessage)
}
