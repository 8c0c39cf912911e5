package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "local", cfg.RankingStrategy)
	assert.Equal(t, 4, cfg.ScoreWorkers)
	assert.Equal(t, 30*time.Second, cfg.CohereTimeout)
	assert.NoError(t, cfg.Weights.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("RANKING_STRATEGY", "rerank")
	t.Setenv("COHERE_API_KEY", "secret")
	t.Setenv("SCORE_WORKERS", "8")
	t.Setenv("MATCH_WEIGHT_SEMANTIC", "0.30")
	t.Setenv("MATCH_WEIGHT_RELATIONSHIP", "0.15")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.Equal(t, "rerank", cfg.RankingStrategy)
	assert.Equal(t, 8, cfg.ScoreWorkers)
	assert.Equal(t, 0.30, cfg.Weights.Semantic)
	assert.Equal(t, 0.15, cfg.Weights.Relationship)
	assert.NoError(t, cfg.Weights.Validate())
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Run("unknown strategy", func(t *testing.T) {
		t.Setenv("RANKING_STRATEGY", "psychic")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("rerank without api key", func(t *testing.T) {
		t.Setenv("RANKING_STRATEGY", "rerank")
		t.Setenv("COHERE_API_KEY", "")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("weights must sum to one", func(t *testing.T) {
		t.Setenv("MATCH_WEIGHT_SEMANTIC", "0.9")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("zero workers", func(t *testing.T) {
		t.Setenv("SCORE_WORKERS", "0")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
