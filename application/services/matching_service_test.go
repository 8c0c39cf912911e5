package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"promatch/application/ports"
	"promatch/domain/matching"
	apperrors "promatch/pkg/errors"
	"promatch/pkg/observability"
)

type matchingFixture struct {
	service  *MatchingService
	store    ports.ProfileStore
	parser   *fakeParser
	embedder *fakeEmbedder
}

func newMatchingFixture(t *testing.T) *matchingFixture {
	t.Helper()
	store := loadStore(t, testNetwork())
	logger := zap.NewNop()
	parser := &fakeParser{result: &matching.ParsedQuery{JobTitles: []string{"engineer"}}}
	embedder := &fakeEmbedder{vector: []float64{0.5, 0.5}}
	engine := matching.NewEngine(matching.DefaultWeights())
	strategy := NewLocalScoringStrategy(engine, store, 2)
	graph := NewGraphService(store, logger)

	return &matchingFixture{
		service:  NewMatchingService(store, parser, embedder, strategy, graph, observability.NewMetrics(), logger),
		store:    store,
		parser:   parser,
		embedder: embedder,
	}
}

func TestFindConnections(t *testing.T) {
	fx := newMatchingFixture(t)

	response, err := fx.service.FindConnections(context.Background(), FindConnectionsInput{
		RequesterID:         "ada",
		Query:               "find me senior engineers",
		MaxResults:          10,
		IncludeExplanations: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "find me senior engineers", response.Query)
	assert.Equal(t, "ada", response.Requester.ID)
	assert.Equal(t, 4, response.Metadata.TotalCandidates)
	assert.NotEmpty(t, response.Metadata.Timestamp)
	require.Len(t, response.Results, 4)

	for i, result := range response.Results {
		assert.Equal(t, i+1, result.Rank)
		assert.NotEqual(t, "ada", result.Profile.ID)
		assert.NotEmpty(t, result.ConnectionPath)
		assert.NotEmpty(t, result.Explanation)
		assert.Contains(t, result.ScoreBreakdown, "composite_score")
	}
	for i := 1; i < len(response.Results); i++ {
		assert.GreaterOrEqual(t, response.Results[i-1].MatchScore, response.Results[i].MatchScore)
	}

	assert.Equal(t, 1, fx.parser.calls)
	assert.Equal(t, 1, fx.embedder.calls)
}

func TestFindConnectionsTruncatesResults(t *testing.T) {
	fx := newMatchingFixture(t)

	response, err := fx.service.FindConnections(context.Background(), FindConnectionsInput{
		RequesterID: "ada",
		Query:       "anyone interesting",
		MaxResults:  2,
	})
	require.NoError(t, err)
	assert.Len(t, response.Results, 2)
	// Metadata still reports the full evaluated pool.
	assert.Equal(t, 4, response.Metadata.TotalCandidates)
}

func TestFindConnectionsValidation(t *testing.T) {
	fx := newMatchingFixture(t)

	t.Run("rejects non-positive max results", func(t *testing.T) {
		_, err := fx.service.FindConnections(context.Background(), FindConnectionsInput{
			RequesterID: "ada",
			Query:       "q",
			MaxResults:  0,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, 0, fx.parser.calls)
	})

	t.Run("rejects unknown requester before collaborator calls", func(t *testing.T) {
		_, err := fx.service.FindConnections(context.Background(), FindConnectionsInput{
			RequesterID: "ghost",
			Query:       "q",
			MaxResults:  5,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Equal(t, 0, fx.parser.calls)
		assert.Equal(t, 0, fx.embedder.calls)
	})
}

func TestFindConnectionsUninitializedNetwork(t *testing.T) {
	logger := zap.NewNop()
	store := memoryStore(t)
	engine := matching.NewEngine(matching.DefaultWeights())
	service := NewMatchingService(
		store,
		&fakeParser{},
		&fakeEmbedder{},
		NewLocalScoringStrategy(engine, store, 2),
		NewGraphService(store, logger),
		observability.NewMetrics(),
		logger,
	)

	_, err := service.FindConnections(context.Background(), FindConnectionsInput{
		RequesterID: "ada",
		Query:       "q",
		MaxResults:  5,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFindConnectionsParseFailureIsFatal(t *testing.T) {
	fx := newMatchingFixture(t)
	fx.parser.err = errors.New("model unavailable")

	_, err := fx.service.FindConnections(context.Background(), FindConnectionsInput{
		RequesterID: "ada",
		Query:       "q",
		MaxResults:  5,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCollaborator(err))
}

func TestFindConnectionsEmbedFailureDegrades(t *testing.T) {
	fx := newMatchingFixture(t)
	fx.embedder.err = errors.New("embedding service down")

	response, err := fx.service.FindConnections(context.Background(), FindConnectionsInput{
		RequesterID: "ada",
		Query:       "q",
		MaxResults:  5,
	})
	require.NoError(t, err)
	assert.Len(t, response.Results, 4)
}

func TestFindConnectionsDeterministic(t *testing.T) {
	fx := newMatchingFixture(t)

	in := FindConnectionsInput{
		RequesterID:         "ada",
		Query:               "find me senior engineers",
		MaxResults:          10,
		IncludeExplanations: true,
	}
	first, err := fx.service.FindConnections(context.Background(), in)
	require.NoError(t, err)
	second, err := fx.service.FindConnections(context.Background(), in)
	require.NoError(t, err)

	// Everything except the timing metadata must be identical.
	first.Metadata = MatchMetadata{}
	second.Metadata = MatchMetadata{}
	assert.Equal(t, first, second)
}

func TestExplainMatch(t *testing.T) {
	t.Run("rerank breakdown", func(t *testing.T) {
		explanation := explainMatch(RankedCandidate{
			Breakdown: map[string]float64{"rerank_score": 0.876},
		}, 2)
		assert.Equal(t, "Rerank score: 0.876 • 2 mutual connections", explanation)
	})

	t.Run("local breakdown phrases", func(t *testing.T) {
		explanation := explainMatch(RankedCandidate{
			Breakdown: map[string]float64{
				"semantic_similarity":   0.8,
				"relationship_strength": 0.6,
				"mutual_connections":    0.2,
				"company_overlap":       0.3,
				"education_similarity":  0.0,
				"query_relevance":       0.5,
			},
		}, 3)
		assert.Contains(t, explanation, "Strong professional profile alignment")
		assert.Contains(t, explanation, "Existing interaction history")
		assert.Contains(t, explanation, "Shared connections")
		assert.Contains(t, explanation, "Some company overlap in career history")
		assert.Contains(t, explanation, "Good match for your requirements")
		assert.Contains(t, explanation, "3 mutual connections")
	})

	t.Run("empty breakdown falls back", func(t *testing.T) {
		explanation := explainMatch(RankedCandidate{Breakdown: map[string]float64{}}, 0)
		assert.Equal(t, "Potential networking opportunity • 0 mutual connections", explanation)
	})
}
