// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/javajoker/catalog-web/internal/utils"
)

const (
	SourceSheets = "sheets"
	SourceXLSX   = "xlsx"
)

type Config struct {
	Environment string `validate:"required,oneof=development production test"`
	Server      ServerConfig
	Catalog     CatalogConfig
	Sheets      SheetsConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	I18n        I18nConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port         string `validate:"required,numeric"`
	Host         string
	ReadTimeout  int `validate:"min=1"`
	WriteTimeout int `validate:"min=1"`
	IdleTimeout  int `validate:"min=1"`
}

type CatalogConfig struct {
	Title      string `validate:"required"`
	Source     string `validate:"oneof=sheets xlsx"`
	QREnabled  bool
	CellRange  string `validate:"cell_range"`
	XLSXPath   string
	XLSXSheet  string
	FooterYear int `validate:"min=0"`
}

type SheetsConfig struct {
	DocumentURL     string
	CredentialsFile string
	CredentialsJSON string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `validate:"gt=0"`
	Burst             int     `validate:"min=1"`
}

type I18nConfig struct {
	DefaultLocale string `validate:"oneof=en lt"`
}

type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"oneof=text json"`
}

// Range returns the spreadsheet block to read. The QR variant carries a url
// column plus two reserved trailing columns.
func (c CatalogConfig) Range() string {
	if c.CellRange != "" {
		return c.CellRange
	}
	if c.QREnabled {
		return "A:F"
	}
	return "A:D"
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	environment := getEnv("ENVIRONMENT", "development")
	logFormat := "text"
	if environment == "production" {
		logFormat = "json"
	}

	config := &Config{
		Environment: environment,
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", ""),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 60),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Catalog: CatalogConfig{
			Title:      getEnv("CATALOG_TITLE", "Vieno prancūzo sandėliokas"),
			Source:     getEnv("CATALOG_SOURCE", SourceSheets),
			QREnabled:  getEnvAsBool("CATALOG_QR_ENABLED", false),
			CellRange:  getEnv("CATALOG_RANGE", ""),
			XLSXPath:   getEnv("CATALOG_XLSX_PATH", ""),
			XLSXSheet:  getEnv("CATALOG_XLSX_SHEET", ""),
			FooterYear: getEnvAsInt("CATALOG_FOOTER_YEAR", 2025),
		},
		Sheets: SheetsConfig{
			DocumentURL:     getEnv("SHEETS_DOCUMENT_URL", ""),
			CredentialsFile: getEnv("SHEETS_CREDENTIALS_FILE", ""),
			CredentialsJSON: getEnv("SHEETS_CREDENTIALS_JSON", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 5),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", logFormat),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch c.Catalog.Source {
	case SourceSheets:
		// The document URL itself is only parsed per request; an unparseable
		// URL is reported on the page rather than at startup.
		if c.Sheets.DocumentURL == "" {
			return fmt.Errorf("SHEETS_DOCUMENT_URL is required for the sheets source")
		}
		if c.Sheets.CredentialsFile == "" && c.Sheets.CredentialsJSON == "" {
			return fmt.Errorf("SHEETS_CREDENTIALS_FILE or SHEETS_CREDENTIALS_JSON is required for the sheets source")
		}
	case SourceXLSX:
		if c.Catalog.XLSXPath == "" {
			return fmt.Errorf("CATALOG_XLSX_PATH is required for the xlsx source")
		}
	}

	return nil
}

// Credentials returns the service account key, preferring inline JSON.
func (s SheetsConfig) Credentials() ([]byte, error) {
	if s.CredentialsJSON != "" {
		return []byte(s.CredentialsJSON), nil
	}
	data, err := os.ReadFile(s.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", s.CredentialsFile, err)
	}
	return data, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
