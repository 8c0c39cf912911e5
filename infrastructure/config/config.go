package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"promatch/domain/matching"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Cohere collaborator configuration
	CohereBaseURL string
	CohereAPIKey  string
	ChatModel     string
	EmbedModel    string
	RerankModel   string
	CohereTimeout time.Duration

	// Matching configuration
	RankingStrategy     string // "local" or "rerank"
	ScoreWorkers        int
	EmbedProfilesOnLoad bool
	GeneratorSeed       int64
	Weights             matching.Weights

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		// Cohere collaborator configuration
		CohereBaseURL: getEnv("COHERE_BASE_URL", "https://api.cohere.com"),
		CohereAPIKey:  getEnv("COHERE_API_KEY", ""),
		ChatModel:     getEnv("COHERE_CHAT_MODEL", "command-r-plus"),
		EmbedModel:    getEnv("COHERE_EMBED_MODEL", "embed-english-v3.0"),
		RerankModel:   getEnv("COHERE_RERANK_MODEL", "rerank-english-v3.0"),
		CohereTimeout: time.Duration(getEnvInt("COHERE_TIMEOUT_MS", 30000)) * time.Millisecond,

		// Matching configuration
		RankingStrategy:     getEnv("RANKING_STRATEGY", "local"),
		ScoreWorkers:        getEnvInt("SCORE_WORKERS", 4),
		EmbedProfilesOnLoad: getEnvBool("EMBED_PROFILES_ON_LOAD", false),
		GeneratorSeed:       int64(getEnvInt("GENERATOR_SEED", 0)),
		Weights:             loadWeights(),

		// Logging and features
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

func loadWeights() matching.Weights {
	defaults := matching.DefaultWeights()
	return matching.Weights{
		Semantic:       getEnvFloat("MATCH_WEIGHT_SEMANTIC", defaults.Semantic),
		Relationship:   getEnvFloat("MATCH_WEIGHT_RELATIONSHIP", defaults.Relationship),
		MutualOverlap:  getEnvFloat("MATCH_WEIGHT_MUTUAL", defaults.MutualOverlap),
		CompanyOverlap: getEnvFloat("MATCH_WEIGHT_COMPANY", defaults.CompanyOverlap),
		Education:      getEnvFloat("MATCH_WEIGHT_EDUCATION", defaults.Education),
		QueryRelevance: getEnvFloat("MATCH_WEIGHT_QUERY", defaults.QueryRelevance),
	}
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.RankingStrategy != "local" && c.RankingStrategy != "rerank" {
		return fmt.Errorf("RANKING_STRATEGY must be \"local\" or \"rerank\", got %q", c.RankingStrategy)
	}
	if c.RankingStrategy == "rerank" && c.CohereAPIKey == "" {
		return fmt.Errorf("COHERE_API_KEY is required when RANKING_STRATEGY is rerank")
	}
	if c.ScoreWorkers < 1 {
		return fmt.Errorf("SCORE_WORKERS must be at least 1")
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("invalid match weights: %w", err)
	}
	if c.Environment == "production" && c.CohereAPIKey == "" {
		return fmt.Errorf("COHERE_API_KEY is required in production")
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
