package ports

import (
	"context"

	"promatch/domain/matching"
	"promatch/domain/profile"
)

// EmbeddingPurpose tells the embedding collaborator how the vectors will be
// used; providers optimize documents and queries differently.
type EmbeddingPurpose string

const (
	EmbeddingPurposeDocument EmbeddingPurpose = "search_document"
	EmbeddingPurposeQuery    EmbeddingPurpose = "search_query"
)

// QueryParser turns a natural language networking query into structured
// criteria. A malformed upstream response is a fatal error for the call.
type QueryParser interface {
	ParseQuery(ctx context.Context, text string) (*matching.ParsedQuery, error)
}

// Embedder produces one embedding per input text, in input order. An empty
// input yields an empty output.
type Embedder interface {
	Embed(ctx context.Context, texts []string, purpose EmbeddingPurpose) ([][]float64, error)
}

// RankDocument is a candidate formatted for external reranking.
type RankDocument struct {
	ID   string
	Text string
}

// RankResult is one reranked document. RelevanceScore is an opaque,
// collaborator-defined scalar.
type RankResult struct {
	ID             string
	RelevanceScore float64
	Rank           int
}

// Reranker orders documents by relevance to a query, returning at most topN
// results.
type Reranker interface {
	Rerank(ctx context.Context, query string, documents []RankDocument, topN int) ([]RankResult, error)
}

// IntroductionWriter drafts an introduction email from a mutual connection's
// perspective.
type IntroductionWriter interface {
	DraftIntroduction(ctx context.Context, requester, target, mutual *profile.Profile, reason string) (string, error)
}
