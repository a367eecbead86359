package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	Extractor ExtractorConfig
	LLM       LLMConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Driver   string
	Path     string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type ExtractorConfig struct {
	// UnsupportedPolicy is "placeholder" or "reject".
	UnsupportedPolicy string
	// PDFEngine is "ledongthuc" or "mupdf".
	PDFEngine string
}

type LLMConfig struct {
	Provider   string
	Timeout    time.Duration
	OpenAI     ProviderConfig
	OpenRouter ProviderConfig
	Gemini     ProviderConfig
}

type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "submissions.db"),
			DSN:      getEnv("DB_DSN", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_matcher"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Extractor: ExtractorConfig{
			UnsupportedPolicy: getEnv("UNSUPPORTED_FILE_POLICY", "placeholder"),
			PDFEngine:         getEnv("PDF_ENGINE", "ledongthuc"),
		},
		LLM: LLMConfig{
			Provider: getEnv("LLM_PROVIDER", "openai"),
			Timeout:  getEnvAsDuration("LLM_TIMEOUT", "60s"),
			OpenAI: ProviderConfig{
				APIKey:  getEnv("OPENAI_API_KEY", ""),
				Model:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
				BaseURL: getEnv("OPENAI_BASE_URL", ""),
			},
			OpenRouter: ProviderConfig{
				APIKey:  getEnv("OPENROUTER_API_KEY", ""),
				Model:   getEnv("OPENROUTER_MODEL", "openai/gpt-3.5-turbo"),
				BaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			},
			Gemini: ProviderConfig{
				APIKey:  getEnv("GEMINI_API_KEY", ""),
				Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
				BaseURL: getEnv("GEMINI_BASE_URL", ""),
			},
		},
	}
}

// GetDatabaseDSN returns the connection string for the configured driver.
// An explicit DB_DSN always wins.
func (c *Config) GetDatabaseDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}

	switch c.Database.Driver {
	case "postgres":
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.Database.Host,
			c.Database.Port,
			c.Database.User,
			c.Database.Password,
			c.Database.DBName,
		)
	case "mysql":
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.Database.User,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.DBName,
		)
	default:
		return c.Database.Path
	}
}

// ActiveProvider returns the settings of the selected feedback provider.
func (c *Config) ActiveProvider() ProviderConfig {
	switch c.LLM.Provider {
	case "openrouter":
		return c.LLM.OpenRouter
	case "gemini":
		return c.LLM.Gemini
	default:
		return c.LLM.OpenAI
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
