package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// WebBaseURL prefixes attachment URLs when no web.base.url parameter is stored in the database.
	WebBaseURL string

	// Back-office credentials
	JWTSecret       string
	AdminAPIKeyHash string

	// Public endpoint protection
	PublicRateLimit    string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("WEB_BASE_URL", "http://localhost:8080")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ADMIN_API_KEY_HASH", "")
	v.SetDefault("PUBLIC_RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		WebBaseURL:      strings.TrimRight(v.GetString("WEB_BASE_URL"), "/"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		AdminAPIKeyHash: v.GetString("ADMIN_API_KEY_HASH"),
		PublicRateLimit: v.GetString("PUBLIC_RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" && cfg.AdminAPIKeyHash == "" {
		log.Println("Warning: neither JWT_SECRET nor ADMIN_API_KEY_HASH is set. Back-office endpoints will reject every request.")
	}

	if cfg.PublicRateLimit == "" {
		cfg.PublicRateLimit = "120-M"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg
}
