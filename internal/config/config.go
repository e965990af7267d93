package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string

	// API server config
	APITokenSecret string

	// Optional integrations
	GeminiAPIKey     string
	TelegramBotToken string
	TelegramChatID   int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH environment variable not set")
	}

	// Optional: required only by the HTTP API binary, which checks for it.
	apiTokenSecret := os.Getenv("API_TOKEN_SECRET")

	// Optional: plan summaries are skipped without a key.
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")

	// Optional: notifications are skipped without a token.
	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramChatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	var telegramChatID int64
	if telegramChatIDStr != "" {
		id, err := strconv.ParseInt(telegramChatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err)
		}
		telegramChatID = id
	}

	return &Config{
		DatabasePath:     databasePath,
		APITokenSecret:   apiTokenSecret,
		GeminiAPIKey:     geminiAPIKey,
		TelegramBotToken: telegramBotToken,
		TelegramChatID:   telegramChatID,
	}, nil
}
