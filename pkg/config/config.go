package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Catalog sources
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceGCS     = "gcs"
)

// Config holds all configuration for the application
type Config struct {
	Port           string
	SiteURL        string
	BusinessName   string
	WhatsAppNumber string
	SecretKey      string
	CatalogSource  string
	CatalogFile    string
	BucketName     string
	PageSize       int
	ViewsDir       string
	PublicDir      string
	ContentDir     string
	LogLevel       string
	LogFormat      string
}

// ErrWhatsAppNumberNotSet is returned when the WHATSAPP_NUMBER environment variable is not set
var ErrWhatsAppNumberNotSet = errors.New("WHATSAPP_NUMBER environment variable not set")

// ErrBucketNameNotSet is returned when the gcs catalog source is selected without BUCKET_NAME
var ErrBucketNameNotSet = errors.New("BUCKET_NAME environment variable not set")

// ErrCatalogFileNotSet is returned when the file catalog source is selected without CATALOG_FILE
var ErrCatalogFileNotSet = errors.New("CATALOG_FILE environment variable not set")

// ErrUnknownCatalogSource is returned when CATALOG_SOURCE names no known source
var ErrUnknownCatalogSource = errors.New("unknown CATALOG_SOURCE")

// LoadDotEnv reads a .env file into the environment if one exists.
// Variables already present in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	whatsApp := digitsOnly(os.Getenv("WHATSAPP_NUMBER"))
	if whatsApp == "" {
		return nil, ErrWhatsAppNumberNotSet
	}

	pageSize := 8
	if raw := os.Getenv("PAGE_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid PAGE_SIZE %q", raw)
		}
		pageSize = n
	}

	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		SiteURL:        strings.TrimSuffix(getenv("SITE_URL", "https://glamhaven.com"), "/"),
		BusinessName:   getenv("BUSINESS_NAME", "GlamHaven"),
		WhatsAppNumber: whatsApp,
		SecretKey:      os.Getenv("SECRET_KEY"),
		CatalogSource:  getenv("CATALOG_SOURCE", SourceBuiltin),
		CatalogFile:    os.Getenv("CATALOG_FILE"),
		BucketName:     os.Getenv("BUCKET_NAME"),
		PageSize:       pageSize,
		ViewsDir:       getenv("VIEWS_DIR", "./views"),
		PublicDir:      getenv("PUBLIC_DIR", "./public"),
		ContentDir:     getenv("CONTENT_DIR", "./content"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "text"),
	}

	switch cfg.CatalogSource {
	case SourceBuiltin:
	case SourceFile:
		if cfg.CatalogFile == "" {
			return nil, ErrCatalogFileNotSet
		}
	case SourceGCS:
		if cfg.BucketName == "" {
			return nil, ErrBucketNameNotSet
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCatalogSource, cfg.CatalogSource)
	}

	return cfg, nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// VitalsEnabled reports whether the vitals dashboard is mounted
func (c *Config) VitalsEnabled() bool {
	return c.SecretKey != ""
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Site URL: http://localhost:%s/\n", c.Port)
	if c.VitalsEnabled() {
		fmt.Printf("Vitals URL: http://localhost:%s/%s/vitals\n", c.Port, c.SecretKey)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
