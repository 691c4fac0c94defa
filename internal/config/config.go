package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Approval ApprovalConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// ApprovalConfig holds the approval-chain configuration. Leave requests may be
// routed through more than one approver tier; overtime and missed-checkin
// corrections are single tier.
type ApprovalConfig struct {
	LeaveLevels         int
	OvertimeLevels      int
	MissedCheckinLevels int
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

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
		Name:     getEnv("DB_NAME", "hrops"),
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

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Approval chain configuration
	leaveLevels, err := strconv.Atoi(getEnv("APPROVAL_LEAVE_LEVELS", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid APPROVAL_LEAVE_LEVELS: %w", err)
	}
	overtimeLevels, err := strconv.Atoi(getEnv("APPROVAL_OVERTIME_LEVELS", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid APPROVAL_OVERTIME_LEVELS: %w", err)
	}
	missedLevels, err := strconv.Atoi(getEnv("APPROVAL_MISSED_CHECKIN_LEVELS", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid APPROVAL_MISSED_CHECKIN_LEVELS: %w", err)
	}
	config.Approval = ApprovalConfig{
		LeaveLevels:         leaveLevels,
		OvertimeLevels:      overtimeLevels,
		MissedCheckinLevels: missedLevels,
	}

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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Approval.LeaveLevels < 1 || c.Approval.OvertimeLevels < 1 || c.Approval.MissedCheckinLevels < 1 {
		return fmt.Errorf("approval levels must be at least 1")
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
