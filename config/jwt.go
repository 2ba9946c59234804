package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type JWTConfig struct {
	SecretKey       []byte
	Issuer          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

var (
	jwtConfig JWTConfig
	jwtOnce   sync.Once
)

func LoadJWTConfig() JWTConfig {
	jwtOnce.Do(func() {
		LoadEnv()

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Fatal("JWT_SECRET environment variable is not set")
		}

		jwtConfig = JWTConfig{
			SecretKey:       []byte(secret),
			Issuer:          getEnv("JWT_ISSUER", "e-suka"),
			AccessTokenTTL:  parseTTL("JWT_ACCESS_TTL", 24*time.Hour),
			RefreshTokenTTL: parseTTL("JWT_REFRESH_TTL", 7*24*time.Hour),
		}
	})

	return jwtConfig
}

func parseTTL(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		log.Printf("invalid %s value %q, using default %s", key, raw, fallback)
		return fallback
	}
	return parsed
}
