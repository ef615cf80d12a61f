package config

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/crestbuild/ops_backend/internal/utils/cards"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// CORSAllowedOrigins lists the origins the API accepts cross-origin
	// requests from. Empty means allow all, which suits local development.
	CORSAllowedOrigins []string

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// CardholderDirectory maps card number suffixes to cardholder names.
	// Overridable via the CARDHOLDER_DIRECTORY env var as a JSON object.
	CardholderDirectory map[string]string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CARDHOLDER_DIRECTORY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	if origins := viper.GetString("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, trimmed)
			}
		}
	}

	cfg.CardholderDirectory = cards.DefaultDirectory
	if directoryJSON := viper.GetString("CARDHOLDER_DIRECTORY"); directoryJSON != "" {
		directory := map[string]string{}
		if err := json.Unmarshal([]byte(directoryJSON), &directory); err != nil {
			log.Printf("Warning: Invalid value for CARDHOLDER_DIRECTORY (%v). Using built-in directory.\n", err)
		} else {
			cfg.CardholderDirectory = directory
		}
	}

	return cfg, nil
}
