package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"promatch/application/ports"
	"promatch/domain/matching"
	"promatch/domain/profile"
	apperrors "promatch/pkg/errors"
	"promatch/pkg/observability"
	"promatch/pkg/utils"

	"go.uber.org/zap"
)

// FindConnectionsInput is the request for a matching run.
type FindConnectionsInput struct {
	RequesterID         string
	Query               string
	MaxResults          int
	IncludeExplanations bool
}

// ResultProfile is the candidate view embedded in a match result.
type ResultProfile struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	JobTitle  string             `json:"job_title"`
	Company   string             `json:"company"`
	Bio       string             `json:"bio,omitempty"`
	Skills    []string           `json:"skills,omitempty"`
	Education *profile.Education `json:"education,omitempty"`
	Industry  string             `json:"industry,omitempty"`
}

// MatchResult is one ranked recommendation.
type MatchResult struct {
	Rank              int                `json:"rank"`
	Profile           ResultProfile      `json:"profile"`
	MatchScore        float64            `json:"match_score"`
	ScoreBreakdown    map[string]float64 `json:"score_breakdown"`
	MutualConnections []profile.Summary  `json:"mutual_connections"`
	ConnectionPath    []string           `json:"connection_path"`
	Explanation       string             `json:"explanation,omitempty"`
}

// MatchMetadata describes a completed matching run.
type MatchMetadata struct {
	TotalCandidates   int     `json:"total_candidates_evaluated"`
	ProcessingSeconds float64 `json:"processing_time_seconds"`
	Timestamp         string  `json:"timestamp"`
}

// MatchResponse is the full result of a matching run.
type MatchResponse struct {
	Query       string               `json:"query"`
	ParsedQuery *matching.ParsedQuery `json:"parsed_query"`
	Requester   profile.Summary      `json:"requester"`
	Results     []MatchResult        `json:"results"`
	Metadata    MatchMetadata        `json:"metadata"`
}

// MatchingService orchestrates the matching pipeline: requester resolution,
// collaborator calls, candidate ranking, and result assembly. It performs a
// single pass with no internal retries; collaborator failures either degrade
// (query embedding) or abort the call (parsing, reranking).
type MatchingService struct {
	store    ports.ProfileStore
	parser   ports.QueryParser
	embedder ports.Embedder
	strategy RankingStrategy
	graph    *GraphService
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewMatchingService creates the matching pipeline.
func NewMatchingService(
	store ports.ProfileStore,
	parser ports.QueryParser,
	embedder ports.Embedder,
	strategy RankingStrategy,
	graph *GraphService,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *MatchingService {
	return &MatchingService{
		store:    store,
		parser:   parser,
		embedder: embedder,
		strategy: strategy,
		graph:    graph,
		metrics:  metrics,
		logger:   logger,
	}
}

// FindConnections runs the matching pipeline for one query.
func (s *MatchingService) FindConnections(ctx context.Context, in FindConnectionsInput) (*MatchResponse, error) {
	start := time.Now()

	// Input is rejected before any collaborator call.
	if in.MaxResults <= 0 {
		return nil, apperrors.NewValidationError("max_results must be greater than zero")
	}
	if !s.store.Loaded() {
		return nil, apperrors.NewValidationError("network not initialized")
	}

	requester, err := s.store.Get(in.RequesterID)
	if err != nil {
		s.metrics.ObserveMatch(s.strategy.Name(), "not_found", time.Since(start).Seconds())
		return nil, err
	}

	s.logger.Info("Processing networking query",
		zap.String("requesterID", in.RequesterID),
		zap.String("query", in.Query),
		zap.String("strategy", s.strategy.Name()),
	)

	// Query parsing and query embedding are independent; run both while the
	// candidate set is assembled.
	var (
		wg             sync.WaitGroup
		parsed         *matching.ParsedQuery
		parseErr       error
		queryEmbedding []float64
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		parsed, parseErr = s.parser.ParseQuery(ctx, in.Query)
		s.metrics.IncCollaborator("parse", parseErr == nil)
	}()
	go func() {
		defer wg.Done()
		vectors, err := s.embedder.Embed(ctx, []string{in.Query}, ports.EmbeddingPurposeQuery)
		s.metrics.IncCollaborator("embed_query", err == nil)
		if err != nil {
			// Degraded input: semantic and query-relevance metrics fall
			// back to their no-embedding values.
			s.logger.Warn("Query embedding failed, continuing without it", zap.Error(err))
			return
		}
		if len(vectors) > 0 {
			queryEmbedding = vectors[0]
		}
	}()
	candidates := s.store.AllExcept(in.RequesterID)
	wg.Wait()

	if parseErr != nil {
		s.metrics.ObserveMatch(s.strategy.Name(), "error", time.Since(start).Seconds())
		return nil, apperrors.NewCollaboratorError("query_parser", parseErr)
	}

	ranked, err := s.strategy.Rank(ctx, RankingInput{
		Requester:      requester,
		Candidates:     candidates,
		Query:          in.Query,
		Parsed:         parsed,
		QueryEmbedding: queryEmbedding,
		MaxResults:     in.MaxResults,
	})
	if err != nil {
		s.metrics.ObserveMatch(s.strategy.Name(), "error", time.Since(start).Seconds())
		return nil, err
	}
	if len(ranked) > in.MaxResults {
		ranked = ranked[:in.MaxResults]
	}

	results := make([]MatchResult, 0, len(ranked))
	for i, candidate := range ranked {
		results = append(results, s.assembleResult(i+1, requester, candidate, in.IncludeExplanations))
	}

	elapsed := time.Since(start)
	s.metrics.ObserveMatch(s.strategy.Name(), "ok", elapsed.Seconds())
	return &MatchResponse{
		Query:       in.Query,
		ParsedQuery: parsed,
		Requester:   requester.Summarize(),
		Results:     results,
		Metadata: MatchMetadata{
			TotalCandidates:   len(candidates),
			ProcessingSeconds: round(elapsed.Seconds(), 2),
			Timestamp:         utils.NowRFC3339(),
		},
	}, nil
}

// assembleResult attaches graph annotations and the explanation string to a
// ranked candidate.
func (s *MatchingService) assembleResult(rank int, requester *profile.Profile, candidate RankedCandidate, explain bool) MatchResult {
	p := candidate.Profile
	mutuals := s.graph.mutualsOf(requester, p)

	skills := p.Skills
	if len(skills) > 5 {
		skills = skills[:5]
	}

	result := MatchResult{
		Rank: rank,
		Profile: ResultProfile{
			ID:        p.ID,
			Name:      p.Name,
			JobTitle:  p.JobTitle,
			Company:   p.Company,
			Bio:       p.Bio,
			Skills:    skills,
			Education: p.Education,
			Industry:  p.Industry,
		},
		MatchScore:        round(candidate.TotalScore, 3),
		ScoreBreakdown:    candidate.Breakdown,
		MutualConnections: mutuals,
		ConnectionPath:    s.graph.ClassifyPath(requester, p),
	}
	if explain {
		result.Explanation = explainMatch(candidate, len(mutuals))
	}
	return result
}

// explainMatch builds the human-readable match explanation from the score
// breakdown and mutual-connection count.
func explainMatch(candidate RankedCandidate, mutualCount int) string {
	if rerankScore, ok := candidate.Breakdown["rerank_score"]; ok {
		return fmt.Sprintf("Rerank score: %.3f • %d mutual connections", rerankScore, mutualCount)
	}

	var phrases []string
	breakdown := candidate.Breakdown
	if breakdown["semantic_similarity"] > 0.7 {
		phrases = append(phrases, "Strong professional profile alignment")
	} else if breakdown["semantic_similarity"] > 0.5 {
		phrases = append(phrases, "Good professional background match")
	}
	if breakdown["relationship_strength"] > 0.5 {
		phrases = append(phrases, "Existing interaction history")
	}
	if breakdown["mutual_connections"] > 0.1 {
		phrases = append(phrases, "Shared connections")
	}
	if breakdown["company_overlap"] > 0.5 {
		phrases = append(phrases, "Worked at same companies")
	} else if breakdown["company_overlap"] > 0 {
		phrases = append(phrases, "Some company overlap in career history")
	}
	if breakdown["education_similarity"] > 0.5 {
		phrases = append(phrases, "Similar educational background")
	}
	if breakdown["query_relevance"] > 0.7 {
		phrases = append(phrases, "Excellent match for your specific criteria")
	} else if breakdown["query_relevance"] > 0.4 {
		phrases = append(phrases, "Good match for your requirements")
	}
	if len(phrases) == 0 {
		phrases = append(phrases, "Potential networking opportunity")
	}
	phrases = append(phrases, fmt.Sprintf("%d mutual connections", mutualCount))
	return strings.Join(phrases, " • ")
}

// round rounds a float to the given number of decimal places.
func round(value float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(value*factor) / factor
}
