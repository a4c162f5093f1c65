package infra

import (
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string

	GatewayAPIKey  string
	GatewayBaseURL string
	GatewayModel   string

	ImageGenAPIKey  string
	ImageGenBaseURL string
	ImageGenModel   string

	WikipediaBaseURL string
	CommonsBaseURL   string

	GeoIPDBPath string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. DATABASE_URL and JWT_SECRET are optional: without a
// database the service runs stateless and skips audit persistence.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		GatewayAPIKey:    os.Getenv("GATEWAY_API_KEY"),
		GatewayBaseURL:   getEnv("GATEWAY_BASE_URL", "https://ai.gateway.lovable.dev/v1"),
		GatewayModel:     getEnv("GATEWAY_MODEL", "google/gemini-2.5-flash"),
		ImageGenAPIKey:   os.Getenv("IMAGEGEN_API_KEY"),
		ImageGenBaseURL:  getEnv("IMAGEGEN_BASE_URL", "https://ai.gateway.lovable.dev/v1"),
		ImageGenModel:    getEnv("IMAGEGEN_MODEL", "google/gemini-2.5-flash-image"),
		WikipediaBaseURL: getEnv("WIKIPEDIA_BASE_URL", "https://en.wikipedia.org/w/api.php"),
		CommonsBaseURL:   getEnv("COMMONS_BASE_URL", "https://commons.wikimedia.org/w/api.php"),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 60)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
