package di

import (
	"promatch/application/ports"
	"promatch/application/services"
	"promatch/domain/matching"
	"promatch/infrastructure/collaborators/cohere"
	"promatch/infrastructure/config"
	"promatch/infrastructure/fixtures"
	"promatch/infrastructure/persistence/memory"
	"promatch/pkg/observability"

	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideMetrics creates the Prometheus metrics registry
func ProvideMetrics() *observability.Metrics {
	return observability.NewMetrics()
}

// ProvideProfileStore creates the in-memory profile store
func ProvideProfileStore(logger *zap.Logger) ports.ProfileStore {
	return memory.NewProfileStore(logger)
}

// ProvideSimilarityEngine creates the scoring engine from configured weights
func ProvideSimilarityEngine(cfg *config.Config) *matching.Engine {
	return matching.NewEngine(cfg.Weights)
}

// ProvideCohereClient creates the HTTP client for the language model APIs
func ProvideCohereClient(cfg *config.Config, logger *zap.Logger) *cohere.Client {
	return cohere.NewClient(cohere.Config{
		BaseURL:     cfg.CohereBaseURL,
		APIKey:      cfg.CohereAPIKey,
		ChatModel:   cfg.ChatModel,
		EmbedModel:  cfg.EmbedModel,
		RerankModel: cfg.RerankModel,
		Timeout:     cfg.CohereTimeout,
	}, logger)
}

// ProvideQueryParser exposes the client as the query parsing port
func ProvideQueryParser(client *cohere.Client) ports.QueryParser {
	return client
}

// ProvideEmbedder exposes the client as the embedding port
func ProvideEmbedder(client *cohere.Client) ports.Embedder {
	return client
}

// ProvideReranker exposes the client as the reranking port
func ProvideReranker(client *cohere.Client) ports.Reranker {
	return client
}

// ProvideIntroductionWriter exposes the client as the introduction drafting port
func ProvideIntroductionWriter(client *cohere.Client) ports.IntroductionWriter {
	return client
}

// ProvideGenerator creates the synthetic network generator
func ProvideGenerator(cfg *config.Config) ports.NetworkGenerator {
	return fixtures.NewGenerator(cfg.GeneratorSeed)
}

// ProvideRankingStrategy selects the configured ranking strategy
func ProvideRankingStrategy(
	cfg *config.Config,
	engine *matching.Engine,
	store ports.ProfileStore,
	reranker ports.Reranker,
) services.RankingStrategy {
	if cfg.RankingStrategy == services.StrategyRerank {
		return services.NewRerankStrategy(reranker)
	}
	return services.NewLocalScoringStrategy(engine, store, cfg.ScoreWorkers)
}

// ProvideGraphService creates the graph query service
func ProvideGraphService(store ports.ProfileStore, logger *zap.Logger) *services.GraphService {
	return services.NewGraphService(store, logger)
}

// ProvideStatsService creates the network statistics service
func ProvideStatsService(store ports.ProfileStore) *services.StatsService {
	return services.NewStatsService(store)
}

// ProvideNetworkService creates the network lifecycle service
func ProvideNetworkService(
	store ports.ProfileStore,
	generator ports.NetworkGenerator,
	embedder ports.Embedder,
	cfg *config.Config,
	logger *zap.Logger,
) *services.NetworkService {
	return services.NewNetworkService(store, generator, embedder, cfg.EmbedProfilesOnLoad, logger)
}

// ProvideMatchingService creates the matching pipeline
func ProvideMatchingService(
	store ports.ProfileStore,
	parser ports.QueryParser,
	embedder ports.Embedder,
	strategy services.RankingStrategy,
	graph *services.GraphService,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *services.MatchingService {
	return services.NewMatchingService(store, parser, embedder, strategy, graph, metrics, logger)
}

// ProvideIntroductionService creates the introduction drafting service
func ProvideIntroductionService(
	store ports.ProfileStore,
	graph *services.GraphService,
	writer ports.IntroductionWriter,
	logger *zap.Logger,
) *services.IntroductionService {
	return services.NewIntroductionService(store, graph, writer, logger)
}
