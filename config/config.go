package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	Timezone   string
	DBPath     string
	AIEndpoint string
	AIAPIKey   string
	AIModel    string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:       get("PORT", "8080"),
		Timezone:   get("TZ", "Europe/Paris"),
		DBPath:     get("DB_PATH", "zbalo.db"),
		AIEndpoint: get("AI_ENDPOINT", "https://api.anthropic.com"),
		AIAPIKey:   get("ANTHROPIC_API_KEY", ""),
		AIModel:    get("AI_MODEL", "claude-sonnet-4-20250514"),
	}
	log.Printf("[cfg] port=%s db=%s model=%s", cfg.Port, cfg.DBPath, cfg.AIModel)
	return cfg
}
