package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Recsys   RecsysConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	FeedbackTopic      string
}

type DatabaseConfig struct {
	Connection string
}

type RecsysConfig struct {
	ModelPath       string
	ReviewCacheTTL  int // seconds
	ReelLimit       int
	FallbackLimit   int
	SessionBoost    float64
	SuggestionLimit int
}

type TracingConfig struct {
	Enabled      bool
	OtlpEndpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			FeedbackTopic:      getEnv("FEEDBACK_TOPIC_NAME", "PROFILE_UPDATED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Recsys: RecsysConfig{
			ModelPath:       getEnv("MODEL_PATH", "assets/rank_model.json"),
			ReviewCacheTTL:  getEnvAsInt("REVIEW_CACHE_TTL_SECONDS", 600),
			ReelLimit:       getEnvAsInt("REEL_LIMIT", 15),
			FallbackLimit:   getEnvAsInt("FALLBACK_LIMIT", 15),
			SessionBoost:    getEnvAsFloat("SESSION_BOOST_FACTOR", 5.0),
			SuggestionLimit: getEnvAsInt("SUGGESTION_LIMIT", 3),
		},
		Tracing: TracingConfig{
			Enabled:      getEnvAsBool("TRACING_ENABLED", false),
			OtlpEndpoint: getEnv("OTLP_ENDPOINT", "localhost:4318"),
		},
	}
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
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
