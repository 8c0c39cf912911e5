package di

import (
	"go.uber.org/zap"

	"promatch/application/ports"
	"promatch/application/services"
	"promatch/infrastructure/config"
	"promatch/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Metrics      *observability.Metrics
	Store        ports.ProfileStore
	Network      *services.NetworkService
	Matching     *services.MatchingService
	Graph        *services.GraphService
	Stats        *services.StatsService
	Introduction *services.IntroductionService
}
