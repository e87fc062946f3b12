package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string
	UploadsDir        string
	AuthRateLimit     string
	APIRateLimit      string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables override .env values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "facturly-backend")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("UPLOADS_DIR", "uploads")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")
	viper.SetDefault("API_RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.UploadsDir = viper.GetString("UPLOADS_DIR")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")

	return cfg, nil
}
