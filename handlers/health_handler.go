package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/waguard/whatsapp-guard/environments"
)

// HealthHandler reports process liveness and which features are configured.
type HealthHandler struct {
	cfg *environments.Config
}

func NewHealthHandler(cfg *environments.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health returns overall status plus per-feature configuration state. The
// process stays up with missing secrets, so "degraded" just means some
// features will answer with their fallback behavior.
func (h *HealthHandler) Health(c echo.Context) error {
	overallStatus := "ok"

	senderStatus := "ready"
	if h.cfg.WhatsApp.APIToken == "" || h.cfg.WhatsApp.PhoneNumberID == "" {
		senderStatus = "not_configured"
		overallStatus = "degraded"
	}

	classifierStatus := "ready"
	if h.cfg.Gemini.APIKey == "" {
		classifierStatus = "not_configured"
		overallStatus = "degraded"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":    overallStatus,
		"timestamp": time.Now().Format(time.RFC3339),
		"components": map[string]any{
			"whatsapp": map[string]any{
				"status": senderStatus,
			},
			"classifier": map[string]any{
				"status": classifierStatus,
			},
		},
	})
}
