package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/waguard/whatsapp-guard/environments"
	"github.com/waguard/whatsapp-guard/pkg/logger"
)

// Sentinel errors so callers can match on the failure kind with errors.Is
// instead of sniffing message strings.
var (
	ErrNotConfigured = errors.New("gemini: api key not configured")
	ErrUnreachable   = errors.New("gemini: service unreachable")
	ErrBadResponse   = errors.New("gemini: unexpected response shape")
)

const promptInstructions = "Analyze the following message to determine if it is spam, a scam, or legitimate. " +
	"Consider common spam tactics like urgency, suspicious links, and unusual requests. " +
	"Respond with only one of these three words: SPAM, SCAM, or LEGITIMATE."

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

type Client struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

func NewClient(cfg environments.GeminiConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

// Classify sends the message text to the generateContent endpoint with the
// fixed spam-analysis instructions and returns the trimmed outcome text,
// expected (but not guaranteed) to be one of SPAM, SCAM or LEGITIMATE.
// Single attempt, no retries.
func (c *Client) Classify(ctx context.Context, messageText string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	payload := generateRequest{
		Contents: []content{{
			Parts: []part{{Text: buildPrompt(messageText)}},
		}},
	}

	var genResp generateResponse

	startTime := time.Now()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(payload).
		SetResult(&genResp).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	logger.Infof("Gemini request completed in %v (status: %d)", time.Since(startTime), resp.StatusCode())

	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode())
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		logger.Errorf("Gemini response missing candidate text: %s", resp.String())
		return "", fmt.Errorf("%w: missing candidate text", ErrBadResponse)
	}

	return strings.TrimSpace(genResp.Candidates[0].Content.Parts[0].Text), nil
}

func buildPrompt(messageText string) string {
	return fmt.Sprintf("%s\n\nMessage: %q", promptInstructions, messageText)
}
