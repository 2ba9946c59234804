package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func setDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "esuka")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "esuka")
}

func TestValidateDatabaseConfig(t *testing.T) {
	setDatabaseEnv(t)
	assert.NoError(t, ValidateDatabaseConfig())

	t.Setenv("DB_DRIVER", "sqlserver")
	assert.ErrorContains(t, ValidateDatabaseConfig(), "unsupported DB_DRIVER")

	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_PORT", "abc")
	assert.ErrorContains(t, ValidateDatabaseConfig(), "DB_PORT")

	t.Setenv("DB_HOST", "")
	assert.ErrorContains(t, ValidateDatabaseConfig(), "DB_HOST")
}

func TestDatabaseDSN(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("DB_PARAMS", "")
	t.Setenv("DB_LOG_LEVEL", "info")

	cfg := LoadDatabaseConfig()
	assert.Equal(t, "host=localhost port=5432 user=esuka password=secret dbname=esuka sslmode=disable TimeZone=Asia/Jakarta", cfg.DSN())
	assert.Equal(t, logger.Info, cfg.LogLevel)

	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_PORT", "3306")
	cfg = LoadDatabaseConfig()
	assert.Equal(t, DriverMySQL, cfg.Driver)
	assert.Equal(t, "esuka:secret@tcp(localhost:3306)/esuka?charset=utf8mb4&parseTime=true&loc=Local", cfg.DSN())
}

func TestValidateJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, ValidateJWTConfig())

	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("JWT_REFRESH_TTL", "")
	assert.NoError(t, ValidateJWTConfig())

	t.Setenv("JWT_REFRESH_TTL", "seminggu")
	assert.ErrorContains(t, ValidateJWTConfig(), "JWT_REFRESH_TTL")
}

func TestValidateEmailConfig(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	assert.NoError(t, ValidateEmailConfig())

	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_FROM", "")
	assert.ErrorContains(t, ValidateEmailConfig(), "SMTP_PORT")

	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_FROM", "noreply@bappeda.go.id")
	assert.NoError(t, ValidateEmailConfig())
}

func TestAppConfig(t *testing.T) {
	t.Setenv("DISPOSISI_STRICT_HIERARCHY", "yes")
	assert.Error(t, ValidateAppConfig())

	t.Setenv("DISPOSISI_STRICT_HIERARCHY", "true")
	t.Setenv("APP_PORT", "")
	assert.NoError(t, ValidateAppConfig())

	cfg := LoadAppConfig()
	assert.True(t, cfg.StrictHierarchy)
	assert.Equal(t, "8080", cfg.Port)
}

func TestParseTTL(t *testing.T) {
	t.Setenv("TEST_TTL", "")
	assert.Equal(t, "1h0m0s", parseTTL("TEST_TTL", 3600e9).String())

	t.Setenv("TEST_TTL", "30m")
	assert.Equal(t, "30m0s", parseTTL("TEST_TTL", 3600e9).String())

	t.Setenv("TEST_TTL", "-5m")
	assert.Equal(t, "1h0m0s", parseTTL("TEST_TTL", 3600e9).String())
}
