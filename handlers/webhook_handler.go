package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/waguard/whatsapp-guard/environments"
	"github.com/waguard/whatsapp-guard/internal/domain"
	"github.com/waguard/whatsapp-guard/pkg/logger"
)

// inboundDispatcher is the slice of RelayService the webhook handler needs.
type inboundDispatcher interface {
	HandleInbound(ctx context.Context, msg domain.InboundMessage)
}

type WebhookHandler struct {
	dispatcher    inboundDispatcher
	verifyToken   string
	handleTimeout time.Duration
}

func NewWebhookHandler(dispatcher inboundDispatcher, cfg *environments.Config) *WebhookHandler {
	return &WebhookHandler{
		dispatcher:    dispatcher,
		verifyToken:   cfg.WhatsApp.VerifyToken,
		handleTimeout: 60 * time.Second,
	}
}

// Verify handles the Cloud API subscription handshake: echo the challenge
// only when mode is "subscribe" and the token matches. The expected token is
// never written to the response.
func (h *WebhookHandler) Verify(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	if mode == "" || token == "" {
		return c.NoContent(http.StatusBadRequest)
	}

	if mode != "subscribe" || subtle.ConstantTimeCompare([]byte(token), []byte(h.verifyToken)) != 1 {
		return c.NoContent(http.StatusForbidden)
	}

	return c.String(http.StatusOK, challenge)
}

// Receive ingests one webhook delivery. The platform retry-storms on non-2xx
// or slow responses, so we acknowledge 200 immediately in every case and
// process the message in its own goroutine.
func (h *WebhookHandler) Receive(c echo.Context) error {
	var payload domain.WebhookPayload
	if err := c.Bind(&payload); err != nil {
		logger.Warnf("Ignoring unparseable webhook payload: %v", err)
		return c.NoContent(http.StatusOK)
	}

	msg, ok := domain.ExtractTextMessage(&payload)
	if !ok {
		return c.NoContent(http.StatusOK)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.handleTimeout)
		defer cancel()
		h.dispatcher.HandleInbound(ctx, msg)
	}()

	return c.NoContent(http.StatusOK)
}
