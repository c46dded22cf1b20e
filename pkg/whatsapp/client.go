package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/waguard/whatsapp-guard/environments"
	"github.com/waguard/whatsapp-guard/internal/domain"
	"github.com/waguard/whatsapp-guard/pkg/logger"
)

var ErrNotConfigured = errors.New("whatsapp: api token or phone number id not configured")

type Client struct {
	httpClient    *resty.Client
	phoneNumberID string
	configured    bool
}

func NewClient(cfg environments.WhatsAppConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(cfg.APIToken)

	return &Client{
		httpClient:    client,
		phoneNumberID: cfg.PhoneNumberID,
		configured:    cfg.APIToken != "" && cfg.PhoneNumberID != "",
	}
}

// SendText posts one text message to the per-phone-number send endpoint.
// One attempt per invocation; the caller decides whether a failure is
// worth more than a log line.
func (c *Client) SendText(ctx context.Context, to, body string) (*domain.SendMessageResponse, error) {
	if !c.configured {
		return nil, ErrNotConfigured
	}

	payload := domain.SendMessageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             domain.MessageTypeText,
		Text: domain.TextBody{
			PreviewURL: true,
			Body:       body,
		},
	}

	var sendResp domain.SendMessageResponse

	startTime := time.Now()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&sendResp).
		Post(fmt.Sprintf("/%s/messages", c.phoneNumberID))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	logger.Infof("WhatsApp send to %s completed in %v (status: %d)", to, time.Since(startTime), resp.StatusCode())

	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode(), resp.String())
	}

	return &sendResp, nil
}
