package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Validate ensures all configuration sections have the required environment
// variables set and that optional values are well-formed.
func Validate() error {
	LoadEnv()

	if err := ValidateDatabaseConfig(); err != nil {
		return fmt.Errorf("database configuration: %w", err)
	}

	if err := ValidateJWTConfig(); err != nil {
		return fmt.Errorf("jwt configuration: %w", err)
	}

	if err := ValidateEmailConfig(); err != nil {
		return fmt.Errorf("email configuration: %w", err)
	}

	if err := ValidateAppConfig(); err != nil {
		return fmt.Errorf("app configuration: %w", err)
	}

	return nil
}

// ValidateDatabaseConfig ensures all required database environment variables
// are present and the driver is supported.
func ValidateDatabaseConfig() error {
	if err := requireEnv("DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME"); err != nil {
		return err
	}

	switch driver := databaseDriver(); driver {
	case DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (use postgres or mysql)", driver)
	}

	if port, err := strconv.Atoi(os.Getenv("DB_PORT")); err != nil || port <= 0 {
		return fmt.Errorf("DB_PORT must be a positive integer")
	}

	return nil
}

// ValidateJWTConfig ensures JWT environment variables are set and valid.
func ValidateJWTConfig() error {
	if strings.TrimSpace(os.Getenv("JWT_SECRET")) == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	for _, key := range []string{"JWT_ACCESS_TTL", "JWT_REFRESH_TTL"} {
		if ttl := strings.TrimSpace(os.Getenv(key)); ttl != "" {
			if _, err := time.ParseDuration(ttl); err != nil {
				return fmt.Errorf("invalid %s value %q: %w", key, ttl, err)
			}
		}
	}

	return nil
}

// ValidateEmailConfig only applies once SMTP_HOST is set: password reset mail
// is optional for an installation.
func ValidateEmailConfig() error {
	if strings.TrimSpace(os.Getenv("SMTP_HOST")) == "" {
		return nil
	}

	if err := requireEnv("SMTP_PORT", "SMTP_FROM"); err != nil {
		return err
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port <= 0 {
		return fmt.Errorf("SMTP_PORT must be a positive integer")
	}

	return nil
}

func ValidateAppConfig() error {
	if v := strings.TrimSpace(os.Getenv("DISPOSISI_STRICT_HIERARCHY")); v != "" {
		if _, err := strconv.ParseBool(v); err != nil {
			return fmt.Errorf("DISPOSISI_STRICT_HIERARCHY must be a boolean, got %q", v)
		}
	}
	if v := strings.TrimSpace(os.Getenv("APP_PORT")); v != "" {
		if port, err := strconv.Atoi(v); err != nil || port <= 0 {
			return fmt.Errorf("APP_PORT must be a positive integer")
		}
	}
	return nil
}

func requireEnv(keys ...string) error {
	var missing []string
	for _, key := range keys {
		if strings.TrimSpace(os.Getenv(key)) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
