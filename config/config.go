package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DataDir    string
	CitiesFile string

	PageSize int    `validate:"gt=0"`
	LogLevel string `validate:"oneof=debug info warn error"`

	SummaryCSVPath    string
	ArchiveDriver     string `validate:"oneof=postgres mysql"`
	ArchiveDSN        string
	ArchiveMaxRetries int `validate:"gte=1"`
}

// Load reads the .env file and returns a validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	cfg := &Config{
		DataDir:    getEnv("DATA_DIR", "."),
		CitiesFile: getEnv("CITIES_FILE", ""),

		PageSize: getEnvInt("PAGE_SIZE", 5),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),

		SummaryCSVPath:    getEnv("SUMMARY_CSV_PATH", ""),
		ArchiveDriver:     strings.ToLower(getEnv("ARCHIVE_DRIVER", "postgres")),
		ArchiveDSN:        getEnv("ARCHIVE_DSN", ""),
		ArchiveMaxRetries: getEnvInt("ARCHIVE_MAX_RETRIES", 3),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ArchiveEnabled reports whether session summaries go to a database.
func (c *Config) ArchiveEnabled() bool {
	return c.ArchiveDSN != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
