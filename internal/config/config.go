package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret  string
	ServerPort string

	// OpenAI-compatible chat API used for transcript scoring.
	LLMAPIKey string
	LLMAPIURL string
	LLMModel  string

	// Gemini REST API used for resume analysis.
	GeminiAPIKey string
	GeminiModel  string

	// Base URL of the prep API the practice core talks to. Defaults to the
	// local server so a single process serves both sides.
	PrepAPIURL string

	// Idle practice sessions are dropped after this many minutes.
	SessionTTLMinutes string
}

func Load() *Config {
	// A missing .env is fine; the deployment may set the environment directly.
	_ = godotenv.Load()

	port := getEnv("SERVER_PORT", "8080")

	return &Config{
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "placementprep"),
		JWTSecret:         getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:        port,
		LLMAPIKey:         getEnv("LLM_API_KEY", ""),
		LLMAPIURL:         getEnv("LLM_API_URL", "https://api.openai.com/v1"),
		LLMModel:          getEnv("LLM_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		PrepAPIURL:        getEnv("PREP_API_URL", "http://localhost:"+port+"/api"),
		SessionTTLMinutes: getEnv("SESSION_TTL_MINUTES", "60"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
