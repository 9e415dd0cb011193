package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string
	AllowedOrigins []string

	// Timezone used to interpret incoming deadlines (date-only and naive
	// values). Storage is always UTC.
	Timezone string

	// Single-tenant pilot record; every state read and reward write is
	// keyed on this id.
	UserID uint64

	// OpenAI-compatible provider for the voice intake pipeline.
	AIBaseURL         string
	AIAPIKey          string
	AITranscribeModel string
	AIExtractModel    string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "entropy"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "entropy"),
		DbName:         getEnv("MYSQL_DATABASE", "entropy"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies: parseList(os.Getenv("TRUSTED_PROXIES")),
		AllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		Timezone: getEnv("TZ", "Asia/Taipei"),
		UserID:   getEnvUint("USER_ID", 1),

		AIBaseURL:         getEnv("AI_BASE_URL", "https://api.groq.com/openai/v1"),
		AIAPIKey:          os.Getenv("GROQ_API_KEY"),
		AITranscribeModel: getEnv("AI_TRANSCRIBE_MODEL", "whisper-large-v3-turbo"),
		AIExtractModel:    getEnv("AI_EXTRACT_MODEL", "llama-3.3-70b-versatile"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvUint(key string, fallback uint64) uint64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil || parsed == 0 {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
