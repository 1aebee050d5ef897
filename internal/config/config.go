package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the configuration for the bot process.
type Config struct {
	TelegramBotToken string
	// WebhookURL enables webhook mode when set; the bot falls back to
	// long polling otherwise.
	WebhookURL string
	Port       string

	// Canteen is the shortcut of the canteen the bot serves.
	Canteen string

	// NotifyChatIDs are chats that receive admin notices.
	NotifyChatIDs []int64

	Location *time.Location
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	token := os.Getenv("MENSA_TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("MENSA_TELEGRAM_BOT_TOKEN environment variable not set")
	}

	canteenShortcut := os.Getenv("MENSA_CANTEEN")
	if canteenShortcut == "" {
		canteenShortcut = "giessberg"
	}

	tz := os.Getenv("MENSA_TIMEZONE")
	if tz == "" {
		tz = "Europe/Berlin"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid MENSA_TIMEZONE %q: %w", tz, err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var chatIDs []int64
	if raw := os.Getenv("MENSA_NOTIFY_CHAT_IDS"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid chat id %q in MENSA_NOTIFY_CHAT_IDS: %w", part, err)
			}
			chatIDs = append(chatIDs, id)
		}
	}

	return &Config{
		TelegramBotToken: token,
		WebhookURL:       os.Getenv("MENSA_WEBHOOK_URL"),
		Port:             port,
		Canteen:          canteenShortcut,
		NotifyChatIDs:    chatIDs,
		Location:         loc,
	}, nil
}
