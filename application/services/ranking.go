package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"promatch/application/ports"
	"promatch/domain/matching"
	"promatch/domain/profile"
	apperrors "promatch/pkg/errors"
)

// Ranking strategy names, selectable through configuration.
const (
	StrategyLocal  = "local"
	StrategyRerank = "rerank"
)

// RankingInput carries everything a strategy needs to order candidates.
type RankingInput struct {
	Requester      *profile.Profile
	Candidates     []*profile.Profile
	Query          string
	Parsed         *matching.ParsedQuery
	QueryEmbedding []float64
	MaxResults     int
}

// RankedCandidate is one ordered candidate with its total score and
// per-metric breakdown.
type RankedCandidate struct {
	Profile    *profile.Profile
	TotalScore float64
	Breakdown  map[string]float64
}

// RankingStrategy orders candidates by relevance. Implementations must be
// deterministic for identical inputs unless they delegate to an external
// collaborator.
type RankingStrategy interface {
	Name() string
	Rank(ctx context.Context, in RankingInput) ([]RankedCandidate, error)
}

// LocalScoringStrategy ranks candidates with the in-process similarity
// engine. Per-candidate scoring is independent and fans out across workers.
type LocalScoringStrategy struct {
	engine  *matching.Engine
	store   ports.ProfileStore
	workers int
}

// NewLocalScoringStrategy creates the local composite-scoring strategy.
func NewLocalScoringStrategy(engine *matching.Engine, store ports.ProfileStore, workers int) *LocalScoringStrategy {
	if workers <= 0 {
		workers = 4
	}
	return &LocalScoringStrategy{engine: engine, store: store, workers: workers}
}

// Name implements RankingStrategy.
func (s *LocalScoringStrategy) Name() string { return StrategyLocal }

// Rank scores every candidate against the requester and query, then sorts
// descending by composite score with candidate id ascending as tie-break so
// identical inputs always produce identical output.
func (s *LocalScoringStrategy) Rank(ctx context.Context, in RankingInput) ([]RankedCandidate, error) {
	requesterEmbedding := s.store.Embedding(in.Requester.ID)
	ranked := make([]RankedCandidate, len(in.Candidates))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, s.workers)
	for idx, candidate := range in.Candidates {
		wg.Add(1)
		go func(i int, candidate *profile.Profile) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			scores := s.engine.CompositeScore(
				in.Requester,
				candidate,
				requesterEmbedding,
				s.store.Embedding(candidate.ID),
				in.Parsed,
				in.QueryEmbedding,
			)
			ranked[i] = RankedCandidate{
				Profile:    candidate,
				TotalScore: scores.Composite,
				Breakdown: map[string]float64{
					"composite_score":       scores.Composite,
					"semantic_similarity":   scores.Semantic,
					"relationship_strength": scores.Relationship,
					"mutual_connections":    scores.MutualOverlap,
					"company_overlap":       scores.CompanyOverlap,
					"education_similarity":  scores.Education,
					"query_relevance":       scores.QueryRelevance,
				},
			}
		}(idx, candidate)
	}
	wg.Wait()

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].Profile.ID < ranked[j].Profile.ID
	})
	return ranked, nil
}

// RerankStrategy formats each candidate as a text document and delegates the
// ordering to an external reranking collaborator. The collaborator's
// relevance score is used directly as the total score.
type RerankStrategy struct {
	reranker ports.Reranker
}

// NewRerankStrategy creates the external reranking strategy.
func NewRerankStrategy(reranker ports.Reranker) *RerankStrategy {
	return &RerankStrategy{reranker: reranker}
}

// Name implements RankingStrategy.
func (s *RerankStrategy) Name() string { return StrategyRerank }

// Rank implements RankingStrategy. A reranker failure is fatal to the call.
func (s *RerankStrategy) Rank(ctx context.Context, in RankingInput) ([]RankedCandidate, error) {
	byID := make(map[string]*profile.Profile, len(in.Candidates))
	documents := make([]ports.RankDocument, 0, len(in.Candidates))
	for _, candidate := range in.Candidates {
		byID[candidate.ID] = candidate
		documents = append(documents, ports.RankDocument{
			ID:   candidate.ID,
			Text: FormatProfileDocument(candidate),
		})
	}

	results, err := s.reranker.Rerank(ctx, in.Query, documents, in.MaxResults)
	if err != nil {
		return nil, apperrors.NewCollaboratorError("reranker", err)
	}

	ranked := make([]RankedCandidate, 0, len(results))
	for _, result := range results {
		candidate, ok := byID[result.ID]
		if !ok {
			return nil, apperrors.NewCollaboratorError("reranker",
				fmt.Errorf("reranker returned unknown document id %q", result.ID))
		}
		ranked = append(ranked, RankedCandidate{
			Profile:    candidate,
			TotalScore: result.RelevanceScore,
			Breakdown:  map[string]float64{"rerank_score": result.RelevanceScore},
		})
	}
	return ranked, nil
}

// FormatProfileDocument renders a profile as a single descriptive text block
// for reranking: name, role, company, bio, skills, education, prior
// companies, industry, each omitted when absent.
func FormatProfileDocument(p *profile.Profile) string {
	var parts []string
	if p.Name != "" {
		parts = append(parts, "Name: "+p.Name)
	}
	if p.JobTitle != "" {
		parts = append(parts, "Role: "+p.JobTitle)
	}
	if p.Company != "" {
		parts = append(parts, "Company: "+p.Company)
	}
	if p.Bio != "" {
		parts = append(parts, "Bio: "+p.Bio)
	}
	if len(p.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(p.Skills, ", "))
	}
	if p.Education != nil {
		edu := strings.TrimSpace(fmt.Sprintf("%s in %s from %s",
			p.Education.Degree, p.Education.Field, p.Education.University))
		parts = append(parts, "Education: "+edu)
	}
	if previous := previousCompanies(p); len(previous) > 0 {
		parts = append(parts, "Previous companies: "+strings.Join(previous, ", "))
	}
	if p.Industry != "" {
		parts = append(parts, "Industry: "+p.Industry)
	}
	return strings.Join(parts, " | ")
}

// previousCompanies lists unique work-history companies in history order.
func previousCompanies(p *profile.Profile) []string {
	seen := make(map[string]struct{})
	var companies []string
	for _, work := range p.WorkHistory {
		if work.Company == "" || work.IsCurrent {
			continue
		}
		if _, ok := seen[work.Company]; ok {
			continue
		}
		seen[work.Company] = struct{}{}
		companies = append(companies, work.Company)
	}
	return companies
}
