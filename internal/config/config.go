package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Memory   MemoryConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	AuditLogFilePath   string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type MemoryConfig struct {
	Backend  string // "cache" or "redis"
	RedisURL string
}

type AIConfig struct {
	BaseURL        string // OpenAI-compatible API base
	ChatModel      string
	EmbeddingModel string
	Temperature    float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			AuditLogFilePath:   getEnv("AUDIT_LOG_FILE_PATH", "logs/chat_audit.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", ""),
			Port:     getEnv("PG_PORT", "5432"),
			User:     getEnv("PG_USER", "postgres"),
			Password: getEnv("PG_PASSWORD", ""),
			DBName:   getEnv("PG_DATABASE", "postgres"),
			SSLMode:  getEnv("PG_SSLMODE", "require"),
		},
		Memory: MemoryConfig{
			Backend:  getEnv("MEMORY_BACKEND", "cache"),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Ai: AIConfig{
			BaseURL:        getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			ChatModel:      getEnv("LLM_MODEL", "gpt-4o-mini"),
			EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-ada-002"),
			Temperature:    getEnvAsFloat("LLM_TEMPERATURE", 0.7),
		},
	}
}

// MissingDatabaseVars reports which required backing-store variables are unset.
// The vector store cannot be reached without them.
func (c *Config) MissingDatabaseVars() []string {
	var missing []string
	if c.Database.Host == "" {
		missing = append(missing, "PG_HOST")
	}
	if c.Database.Password == "" {
		missing = append(missing, "PG_PASSWORD")
	}
	return missing
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.DBName, d.Port, d.SSLMode)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := strings.TrimSpace(getEnv(key, ""))
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
