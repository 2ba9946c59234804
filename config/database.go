package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

var DB *gorm.DB

func LoadEnv() {
	_ = godotenv.Load()
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Pass     string
	Name     string
	Params   string
	LogLevel logger.LogLevel
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver:   databaseDriver(),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Pass:     os.Getenv("DB_PASS"),
		Name:     os.Getenv("DB_NAME"),
		Params:   os.Getenv("DB_PARAMS"),
		LogLevel: parseLogLevel(os.Getenv("DB_LOG_LEVEL")),
	}
}

// DSN renders the connection string for the configured driver.
func (c DatabaseConfig) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		params := c.Params
		if params == "" {
			params = "charset=utf8mb4&parseTime=true&loc=Local"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", c.User, c.Pass, c.Host, c.Port, c.Name, params)
	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s", c.Host, c.Port, c.User, c.Pass, c.Name)
		if c.Params == "" {
			return dsn + " sslmode=disable TimeZone=Asia/Jakarta"
		}
		return dsn + " " + c.Params
	}
}

func (c DatabaseConfig) Dialector() gorm.Dialector {
	if c.Driver == DriverMySQL {
		return mysql.Open(c.DSN())
	}
	return postgres.Open(c.DSN())
}

func ConnectDB() *gorm.DB {
	LoadEnv()

	cfg := LoadDatabaseConfig()
	db, err := gorm.Open(cfg.Dialector(), &gorm.Config{
		TranslateError: true,
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  cfg.LogLevel,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	DB = db
	log.Printf("✅ Connected to %s database: %s", cfg.Driver, cfg.Name)
	return DB
}

func databaseDriver() string {
	return strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
}

func parseLogLevel(raw string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
