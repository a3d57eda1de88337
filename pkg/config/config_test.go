package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "SITE_URL", "BUSINESS_NAME", "WHATSAPP_NUMBER", "SECRET_KEY",
		"CATALOG_SOURCE", "CATALOG_FILE", "BUCKET_NAME", "PAGE_SIZE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("WHATSAPP_NUMBER", "+961 70 123 456")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "96170123456", cfg.WhatsAppNumber)
	assert.Equal(t, "GlamHaven", cfg.BusinessName)
	assert.Equal(t, SourceBuiltin, cfg.CatalogSource)
	assert.Equal(t, 8, cfg.PageSize)
	assert.Equal(t, ":8080", cfg.ServerAddress())
	assert.False(t, cfg.VitalsEnabled())
}

func TestLoadRequiresWhatsAppNumber(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	assert.ErrorIs(t, err, ErrWhatsAppNumberNotSet)
}

func TestLoadCatalogSourceValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("WHATSAPP_NUMBER", "96100000000")

	t.Setenv("CATALOG_SOURCE", SourceGCS)
	_, err := Load()
	assert.ErrorIs(t, err, ErrBucketNameNotSet)

	t.Setenv("CATALOG_SOURCE", SourceFile)
	_, err = Load()
	assert.ErrorIs(t, err, ErrCatalogFileNotSet)

	t.Setenv("CATALOG_SOURCE", "ftp")
	_, err = Load()
	assert.ErrorIs(t, err, ErrUnknownCatalogSource)
}

func TestLoadRejectsBadPageSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("WHATSAPP_NUMBER", "96100000000")
	t.Setenv("PAGE_SIZE", "zero")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BUSINESS_NAME=Atelier\n"), 0o600))
	// godotenv does not override variables that are already set, so unset first
	require.NoError(t, os.Unsetenv("BUSINESS_NAME"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "Atelier", os.Getenv("BUSINESS_NAME"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
