package config

import (
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	Port             string
	CORSAllowOrigins string
	// StrictHierarchy makes disposisi forwarding follow Jabatan.NextDestinations.
	StrictHierarchy  bool
	PasswordResetURL string
}

func LoadAppConfig() AppConfig {
	strict, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv("DISPOSISI_STRICT_HIERARCHY")))

	return AppConfig{
		Port:             getEnv("APP_PORT", "8080"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		StrictHierarchy:  strict,
		PasswordResetURL: getEnv("PASSWORD_RESET_URL", "/auth/reset-password"),
	}
}
