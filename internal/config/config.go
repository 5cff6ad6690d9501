package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            int
	DataFile        string
	DatabaseURL     string
	NatsURL         string
	NatsToken       string
	LogLevel        string
	MatchThreshold  int
	DuckDuckGoURL   string
	WikipediaAPIURL string
	SessionTTLHours int
}

func Load() Config {
	return Config{
		Port:            envInt("SAGE_PORT", 8960),
		DataFile:        envStr("DATA_FILE", "Data.csv"),
		DatabaseURL:     envStr("DATABASE_URL", ""),
		NatsURL:         envStr("NATS_URL", ""),
		NatsToken:       envStr("NATS_TOKEN", ""),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		MatchThreshold:  envInt("SAGE_MATCH_THRESHOLD", 85),
		DuckDuckGoURL:   envStr("DUCKDUCKGO_URL", "https://api.duckduckgo.com/"),
		WikipediaAPIURL: envStr("WIKIPEDIA_API_URL", "https://en.wikipedia.org/w/api.php"),
		SessionTTLHours: envInt("SESSION_TTL_HOURS", 24),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
