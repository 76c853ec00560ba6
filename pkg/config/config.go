package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	NLP        NLPConfig
	AssemblyAI AssemblyAIConfig
	SMTP       SMTPConfig
	Google     GoogleConfig
	Report     ReportConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// NLPConfig holds NLP sidecar service configuration
type NLPConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// AssemblyAIConfig holds AssemblyAI transcription configuration
type AssemblyAIConfig struct {
	APIKey string
}

// SMTPConfig holds email delivery configuration
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// GoogleConfig holds Google Calendar OAuth configuration
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokenFile    string
}

// ReportConfig holds report export configuration
type ReportConfig struct {
	OutputDir string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		NLP: NLPConfig{
			BaseURL:    getEnv("NLP_SERVICE_URL", "http://localhost:9090"),
			Timeout:    getEnvAsDuration("NLP_TIMEOUT", "30s"),
			MaxRetries: getEnvAsInt("NLP_MAX_RETRIES", 3),
		},
		AssemblyAI: AssemblyAIConfig{
			APIKey: getEnv("ASSEMBLYAI_API_KEY", ""),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
		Google: GoogleConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/v1/integrations/calendar/callback"),
			TokenFile:    getEnv("GOOGLE_TOKEN_FILE", "token.json"),
		},
		Report: ReportConfig{
			OutputDir: getEnv("REPORT_OUTPUT_DIR", "reports"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.NLP.BaseURL == "" {
		return fmt.Errorf("NLP_SERVICE_URL is required")
	}
	return nil
}

// GetSMTPAddr returns the SMTP server address
func (c *Config) GetSMTPAddr() string {
	return fmt.Sprintf("%s:%s", c.SMTP.Host, c.SMTP.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
