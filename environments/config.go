package environments

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	WhatsApp WhatsAppConfig
	Gemini   GeminiConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port string
}

type WhatsAppConfig struct {
	APIToken      string
	PhoneNumberID string
	VerifyToken   string
	BaseURL       string
	Timeout       time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type AuthConfig struct {
	MessagesAPIKey string
}

// Load builds the process-wide configuration from the environment.
// Missing secrets are not fatal here: the server always starts, and the
// features that need them degrade individually.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: GetEnv("PORT", "3000"),
		},
		WhatsApp: WhatsAppConfig{
			APIToken:      GetEnv("WHATSAPP_API_TOKEN", ""),
			PhoneNumberID: GetEnv("PHONE_NUMBER_ID", ""),
			VerifyToken:   GetEnv("VERIFY_TOKEN", ""),
			BaseURL:       GetEnv("WHATSAPP_API_BASE_URL", "https://graph.facebook.com/v20.0"),
			Timeout:       time.Duration(GetEnvAsInt("WHATSAPP_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:  GetEnv("GEMINI_API_KEY", ""),
			Model:   GetEnv("GEMINI_MODEL", "gemini-2.5-flash-preview-05-20"),
			BaseURL: GetEnv("GEMINI_API_BASE_URL", "https://generativelanguage.googleapis.com"),
			Timeout: time.Duration(GetEnvAsInt("GEMINI_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Auth: AuthConfig{
			MessagesAPIKey: GetEnv("MESSAGES_API_KEY", ""),
		},
	}
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
