package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// ReportConfig holds report engine configuration
type ReportConfig struct {
	// Hours of a standard working day.
	WorkDayHours float64

	// Decimal places of labor distribution indexes.
	Precision int

	// Column label absence hours appear under in matrix reports.
	AbsenceLabel string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffing"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Report configuration
	workDayHours, err := strconv.ParseFloat(getEnv("WORK_DAY_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_DAY_HOURS: %w", err)
	}

	precision, err := strconv.Atoi(getEnv("REPORT_PRECISION", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_PRECISION: %w", err)
	}

	config.Report = ReportConfig{
		WorkDayHours: workDayHours,
		Precision:    precision,
		AbsenceLabel: getEnv("ABSENCE_LABEL", "Absence hours"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Report.WorkDayHours <= 0 {
		return fmt.Errorf("WORK_DAY_HOURS must be positive")
	}
	if c.Report.Precision < 0 {
		return fmt.Errorf("REPORT_PRECISION must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
