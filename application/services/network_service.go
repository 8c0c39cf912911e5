package services

import (
	"context"

	"promatch/application/ports"
	apperrors "promatch/pkg/errors"

	"go.uber.org/zap"
)

// InitializeResult reports the installed population.
type InitializeResult struct {
	ProfileCount    int `json:"total_profiles"`
	ConnectionCount int `json:"total_connections"`
}

// NetworkService owns the population lifecycle: it generates a synthetic
// network, loads it into the store as one atomic replace, and optionally
// embeds every profile document up front.
type NetworkService struct {
	store         ports.ProfileStore
	generator     ports.NetworkGenerator
	embedder      ports.Embedder
	embedProfiles bool
	logger        *zap.Logger
}

// NewNetworkService creates the network lifecycle service. When
// embedProfiles is set, every loaded profile gets a document embedding so
// the semantic metric has data to work with; in that configuration an
// embedding failure is fatal to initialization.
func NewNetworkService(
	store ports.ProfileStore,
	generator ports.NetworkGenerator,
	embedder ports.Embedder,
	embedProfiles bool,
	logger *zap.Logger,
) *NetworkService {
	return &NetworkService{
		store:         store,
		generator:     generator,
		embedder:      embedder,
		embedProfiles: embedProfiles,
		logger:        logger,
	}
}

// Initialize builds and installs a population of the given size.
func (s *NetworkService) Initialize(ctx context.Context, count int) (*InitializeResult, error) {
	if count <= 0 {
		return nil, apperrors.NewValidationError("profile count must be greater than zero")
	}

	s.logger.Info("Initializing professional network", zap.Int("profiles", count))
	population := s.generator.Generate(count)
	if err := s.store.Load(population); err != nil {
		return nil, err
	}

	if s.embedProfiles {
		if err := s.embedPopulation(ctx); err != nil {
			return nil, err
		}
	}

	edges := 0
	for _, p := range s.store.All() {
		edges += len(p.Connections)
	}
	return &InitializeResult{
		ProfileCount:    s.store.Count(),
		ConnectionCount: edges / 2,
	}, nil
}

// embedPopulation requests document embeddings for every loaded profile.
// Unlike query embedding this is not best-effort: a half-embedded
// population would skew semantic scores between candidates.
func (s *NetworkService) embedPopulation(ctx context.Context) error {
	profiles := s.store.All()
	texts := make([]string, len(profiles))
	for i, p := range profiles {
		texts[i] = FormatProfileDocument(p)
	}

	vectors, err := s.embedder.Embed(ctx, texts, ports.EmbeddingPurposeDocument)
	if err != nil {
		return apperrors.NewCollaboratorError("embedder", err)
	}
	if len(vectors) != len(profiles) {
		return apperrors.NewCollaboratorError("embedder",
			apperrors.NewInternalError("embedding count does not match profile count"))
	}

	embeddings := make(map[string][]float64, len(profiles))
	for i, p := range profiles {
		embeddings[p.ID] = vectors[i]
	}
	s.store.SetEmbeddings(embeddings)
	s.logger.Info("Profile embeddings attached", zap.Int("count", len(embeddings)))
	return nil
}
