package naver

import (
	"os"
	"time"
)

// Config holds the settings for the Naver mobile quote API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig reads the quote API settings from environment variables,
// falling back to the public endpoint and a 10 second timeout.
func LoadConfig() Config {
	base := os.Getenv("QUOTE_BASE_URL")
	if base == "" {
		base = "https://m.stock.naver.com"
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
