package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/waguard/whatsapp-guard/environments"
	"github.com/waguard/whatsapp-guard/internal/domain"
)

func testConfig(baseURL string) environments.WhatsAppConfig {
	return environments.WhatsAppConfig{
		APIToken:      "test-token",
		PhoneNumberID: "123456789",
		BaseURL:       baseURL,
		Timeout:       5 * time.Second,
	}
}

func TestSendText_BuildsPlatformEnvelope(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody domain.SendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messaging_product":"whatsapp","messages":[{"id":"wamid.abc"}]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	resp, err := client.SendText(context.Background(), "15551234567", "✅ This message seems *LEGITIMATE*.")
	if err != nil {
		t.Fatalf("SendText returned error: %v", err)
	}

	if gotPath != "/123456789/messages" {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}

	if gotBody.MessagingProduct != "whatsapp" {
		t.Errorf("expected messaging_product=whatsapp, got %q", gotBody.MessagingProduct)
	}
	if gotBody.To != "15551234567" {
		t.Errorf("expected to=15551234567, got %q", gotBody.To)
	}
	if gotBody.Type != "text" {
		t.Errorf("expected type=text, got %q", gotBody.Type)
	}
	if !gotBody.Text.PreviewURL {
		t.Errorf("expected preview_url=true")
	}
	if gotBody.Text.Body != "✅ This message seems *LEGITIMATE*." {
		t.Errorf("unexpected body %q", gotBody.Text.Body)
	}

	if len(resp.Messages) != 1 || resp.Messages[0].ID != "wamid.abc" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestSendText_NotConfigured(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.APIToken = ""
	client := NewClient(cfg)

	_, err := client.SendText(context.Background(), "1", "hello")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if requests != 0 {
		t.Fatalf("expected no network I/O, server saw %d requests", requests)
	}
}

func TestSendText_ErrorStatusSurfacesToCaller(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid token"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	_, err := client.SendText(context.Background(), "1", "hello")
	if err == nil {
		t.Fatalf("expected error for non-2xx status")
	}
}

// One invocation, one request: the client never retries on its own.
func TestSendText_SingleAttempt(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "server error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	if _, err := client.SendText(context.Background(), "1", "hello"); err == nil {
		t.Fatalf("expected error")
	}
	if requests != 1 {
		t.Fatalf("expected exactly one request, got %d", requests)
	}
}
