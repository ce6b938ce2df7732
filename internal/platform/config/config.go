package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// OwnerPINHash is the bcrypt hash of the single owner's access PIN.
	OwnerPINHash string

	// Advisor / free-text interpretation backend
	GeminiAPIKey string
	GeminiModel  string

	// Advisor endpoint rate limit, in ulule/limiter format (e.g. "10-M").
	AdvisorRateLimit string

	// Remote command channel
	TelegramAPIBaseURL   string
	TelegramPollInterval time.Duration
	TelegramPollTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "dayn-backend")
	viper.SetDefault("OWNER_PIN_HASH", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("ADVISOR_RATE_LIMIT", "10-M")
	viper.SetDefault("TELEGRAM_API_BASE_URL", "https://api.telegram.org")
	viper.SetDefault("TELEGRAM_POLL_INTERVAL", "3s")
	viper.SetDefault("TELEGRAM_POLL_TIMEOUT", "25s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.OwnerPINHash = viper.GetString("OWNER_PIN_HASH")
	if cfg.OwnerPINHash == "" {
		log.Println("Warning: OWNER_PIN_HASH not set. Login is disabled until it is configured.")
	}

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Advisor and remote entry interpretation will use fallbacks.")
	}
	cfg.GeminiModel = viper.GetString("GEMINI_MODEL")

	cfg.AdvisorRateLimit = viper.GetString("ADVISOR_RATE_LIMIT")

	cfg.TelegramAPIBaseURL = viper.GetString("TELEGRAM_API_BASE_URL")

	pollIntervalStr := viper.GetString("TELEGRAM_POLL_INTERVAL")
	pollInterval, err := time.ParseDuration(pollIntervalStr)
	if err != nil {
		pollInterval = 3 * time.Second
		log.Printf("Warning: Invalid value for TELEGRAM_POLL_INTERVAL ('%s'). Defaulting to %s.\n", pollIntervalStr, pollInterval)
	}
	cfg.TelegramPollInterval = pollInterval

	pollTimeoutStr := viper.GetString("TELEGRAM_POLL_TIMEOUT")
	pollTimeout, err := time.ParseDuration(pollTimeoutStr)
	if err != nil {
		pollTimeout = 25 * time.Second
		log.Printf("Warning: Invalid value for TELEGRAM_POLL_TIMEOUT ('%s'). Defaulting to %s.\n", pollTimeoutStr, pollTimeout)
	}
	cfg.TelegramPollTimeout = pollTimeout

	return cfg, nil
}
