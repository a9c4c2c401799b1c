package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port                   string
	DataPath               string
	ReadTimeoutSecs        int
	WriteTimeoutSecs       int
	IdleTimeoutSecs        int
	TopMoviesMinRatings    int
	TopMoviesAltMinRatings int
	TopMoviesTopN          int
}

// Load reads configuration from environment variables, applying defaults and validation.
func Load() (Config, error) {
	cfg := Config{
		Port:                   getEnv("PORT", "8080"),
		DataPath:               os.Getenv("DATA_PATH"),
		ReadTimeoutSecs:        getEnvInt("SERVER_READ_TIMEOUT", 15),
		WriteTimeoutSecs:       getEnvInt("SERVER_WRITE_TIMEOUT", 15),
		IdleTimeoutSecs:        getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		TopMoviesMinRatings:    getEnvInt("TOP_MOVIES_MIN_RATINGS", 50),
		TopMoviesAltMinRatings: getEnvInt("TOP_MOVIES_ALT_MIN_RATINGS", 150),
		TopMoviesTopN:          getEnvInt("TOP_MOVIES_TOP_N", 5),
	}

	if cfg.DataPath == "" {
		return Config{}, fmt.Errorf("DATA_PATH is required")
	}
	if cfg.ReadTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.WriteTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.IdleTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SERVER_IDLE_TIMEOUT must be positive")
	}
	if cfg.TopMoviesMinRatings <= 0 {
		return Config{}, fmt.Errorf("TOP_MOVIES_MIN_RATINGS must be positive")
	}
	if cfg.TopMoviesAltMinRatings <= 0 {
		return Config{}, fmt.Errorf("TOP_MOVIES_ALT_MIN_RATINGS must be positive")
	}
	if cfg.TopMoviesTopN <= 0 {
		return Config{}, fmt.Errorf("TOP_MOVIES_TOP_N must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
