package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"promatch/application/ports"
	"promatch/domain/matching"
	"promatch/domain/profile"
	"promatch/infrastructure/persistence/memory"
)

// memoryStore returns a fresh empty store.
func memoryStore(t *testing.T) *memory.ProfileStore {
	t.Helper()
	return memory.NewProfileStore(zap.NewNop())
}

// loadStore installs the given population into a fresh store.
func loadStore(t *testing.T, profiles []*profile.Profile) *memory.ProfileStore {
	t.Helper()
	store := memory.NewProfileStore(zap.NewNop())
	require.NoError(t, store.Load(profiles))
	return store
}

// testNetwork is a small fixed graph used across the service tests:
// ada-ben, ada-cleo, ben-cleo, cleo-dan, dan-eve.
func testNetwork() []*profile.Profile {
	return []*profile.Profile{
		{ID: "ada", Name: "Ada Chen", JobTitle: "Senior Software Engineer", Company: "Google",
			Connections: []string{"ben", "cleo"},
			Interactions: map[string]profile.Interaction{
				"ben": {Frequency: 8, Strength: 0.8},
			}},
		{ID: "ben", Name: "Ben Patel", JobTitle: "Product Manager", Company: "Stripe",
			Connections: []string{"cleo"}},
		{ID: "cleo", Name: "Cleo Kim", JobTitle: "ML Engineer", Company: "Google",
			Skills:      []string{"Python", "PyTorch"},
			Connections: []string{"dan"}},
		{ID: "dan", Name: "Dan Garcia", JobTitle: "Data Scientist", Company: "Meta",
			Connections: []string{"eve"}},
		{ID: "eve", Name: "Eve Johnson", JobTitle: "VP of Engineering", Company: "Netflix"},
	}
}

type fakeParser struct {
	calls  int
	result *matching.ParsedQuery
	err    error
}

func (f *fakeParser) ParseQuery(ctx context.Context, text string) (*matching.ParsedQuery, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &matching.ParsedQuery{}, nil
}

type fakeEmbedder struct {
	calls  int
	vector []float64
	err    error
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string, purpose ports.EmbeddingPurpose) ([][]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = f.vector
	}
	return out, nil
}

type fakeReranker struct {
	calls   int
	results []ports.RankResult
	err     error
}

func (f *fakeReranker) Rerank(ctx context.Context, query string, documents []ports.RankDocument, topN int) ([]ports.RankResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

type fakeWriter struct {
	calls int
	draft string
	err   error
}

func (f *fakeWriter) DraftIntroduction(ctx context.Context, requester, target, mutual *profile.Profile, reason string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.draft, nil
}
