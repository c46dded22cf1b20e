package handlers

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/waguard/whatsapp-guard/internal/domain"
	"github.com/waguard/whatsapp-guard/pkg/response"
	"github.com/waguard/whatsapp-guard/pkg/validator"
	"github.com/waguard/whatsapp-guard/pkg/whatsapp"
)

type messageSender interface {
	SendText(ctx context.Context, to, body string) (*domain.SendMessageResponse, error)
}

// MessageHandler exposes the operator endpoint for ad-hoc outbound messages.
type MessageHandler struct {
	service messageSender
}

func NewMessageHandler(service messageSender) *MessageHandler {
	return &MessageHandler{service: service}
}

type SendMessageRequest struct {
	To   string `json:"to" validate:"required"`
	Body string `json:"body" validate:"required,max=4096"`
}

// SendMessage pushes one text message through the WhatsApp client, outside
// the webhook flow. Unlike webhook replies, send failures surface here so
// the operator sees them.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	resp, err := h.service.SendText(c.Request().Context(), req.To, req.Body)
	if err != nil {
		if errors.Is(err, whatsapp.ErrNotConfigured) {
			return response.ServiceUnavailable(c, err)
		}
		return response.InternalServerError(c, err)
	}

	messageID := ""
	if len(resp.Messages) > 0 {
		messageID = resp.Messages[0].ID
	}

	return response.Ok(c, map[string]any{
		"messageId": messageID,
	})
}
