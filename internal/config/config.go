package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string

	JWTSecret      string
	AccessTokenTTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AllowedOrigins   []string
	AllowCredentials bool

	GoogleBooksURL    string
	GoogleBooksImport bool

	LogLevel string
}

// Load reads configuration from an optional config.json plus the environment.
// Environment variables win over the file.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	for _, key := range []string{
		"DATABASE_URL", "HTTP_ADDR",
		"JWT_SECRET", "ACCESS_TOKEN_TTL",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"ALLOWED_ORIGINS", "ALLOW_CREDENTIALS",
		"GOOGLE_BOOKS_URL", "GOOGLE_BOOKS_IMPORT",
		"LOG_LEVEL",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("HTTP_ADDR", ":8080")
	viper.SetDefault("ACCESS_TOKEN_TTL", 30*time.Minute)
	viper.SetDefault("GOOGLE_BOOKS_URL", "https://www.googleapis.com/books/v1/volumes?q=*&maxResults=40")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:       viper.GetString("DATABASE_URL"),
		HTTPAddr:          viper.GetString("HTTP_ADDR"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		AccessTokenTTL:    viper.GetDuration("ACCESS_TOKEN_TTL"),
		RedisAddr:         viper.GetString("REDIS_ADDR"),
		RedisPassword:     viper.GetString("REDIS_PASSWORD"),
		RedisDB:           viper.GetInt("REDIS_DB"),
		AllowedOrigins:    viper.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials:  viper.GetBool("ALLOW_CREDENTIALS"),
		GoogleBooksURL:    viper.GetString("GOOGLE_BOOKS_URL"),
		GoogleBooksImport: viper.GetBool("GOOGLE_BOOKS_IMPORT"),
		LogLevel:          viper.GetString("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	// The signing secret is shared by every verification call; starting
	// without one would silently issue unverifiable tokens.
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}

	return cfg, nil
}
