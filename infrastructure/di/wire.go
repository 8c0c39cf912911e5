//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"promatch/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideProfileStore,
	ProvideSimilarityEngine,
	ProvideCohereClient,
	ProvideQueryParser,
	ProvideEmbedder,
	ProvideReranker,
	ProvideIntroductionWriter,
	ProvideGenerator,
	ProvideRankingStrategy,
	ProvideGraphService,
	ProvideStatsService,
	ProvideNetworkService,
	ProvideMatchingService,
	ProvideIntroductionService,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
