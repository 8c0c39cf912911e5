package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"promatch/domain/profile"
	"promatch/infrastructure/persistence/memory"
)

func TestStatsSummary(t *testing.T) {
	store := loadStore(t, testNetwork())
	stats := NewStatsService(store)

	summary := stats.Summary()

	assert.Equal(t, 5, summary.TotalProfiles)
	// ada-ben, ada-cleo, ben-cleo, cleo-dan, dan-eve
	assert.Equal(t, 5, summary.TotalConnections)
	assert.InDelta(t, 2.0, summary.AverageDegree, 1e-9)

	require.NotEmpty(t, summary.TopCompanies)
	assert.Equal(t, FrequencyEntry{Value: "Google", Count: 2}, summary.TopCompanies[0])
}

func TestStatsSummaryDeterministic(t *testing.T) {
	store := loadStore(t, testNetwork())
	stats := NewStatsService(store)

	first := stats.Summary()
	second := stats.Summary()
	assert.Equal(t, first, second)
}

func TestStatsSummaryEmptyStore(t *testing.T) {
	stats := NewStatsService(memory.NewProfileStore(zap.NewNop()))

	summary := stats.Summary()
	assert.Equal(t, 0, summary.TotalProfiles)
	assert.Equal(t, 0, summary.TotalConnections)
	assert.Equal(t, 0.0, summary.AverageDegree)
	assert.Empty(t, summary.TopCompanies)
}

func TestStatsTopTiesAreStable(t *testing.T) {
	store := loadStore(t, []*profile.Profile{
		{ID: "1", Company: "Meta"},
		{ID: "2", Company: "Stripe"},
		{ID: "3", Company: "Stripe"},
		{ID: "4", Company: "Meta"},
	})
	stats := NewStatsService(store)

	top := stats.Summary().TopCompanies
	require.Len(t, top, 2)
	// Equal counts keep first-seen order.
	assert.Equal(t, "Meta", top[0].Value)
	assert.Equal(t, "Stripe", top[1].Value)
}
