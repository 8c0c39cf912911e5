package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProfiles(t *testing.T) {
	g := NewGenerator(42)
	profiles := g.Generate(50)
	require.Len(t, profiles, 50)

	ids := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.JobTitle)
		assert.NotEmpty(t, p.Company)
		assert.NotEmpty(t, p.Industry)
		assert.NotEmpty(t, p.Bio)
		require.NotNil(t, p.Education)
		assert.NotEmpty(t, p.Education.University)

		_, dup := ids[p.ID]
		assert.False(t, dup, "duplicate profile id")
		ids[p.ID] = struct{}{}
	}
}

func TestGenerateSkillsCapped(t *testing.T) {
	g := NewGenerator(7)
	for _, p := range g.Generate(30) {
		assert.LessOrEqual(t, len(p.Skills), 8)
		assert.NotEmpty(t, p.Skills)

		seen := make(map[string]struct{})
		for _, skill := range p.Skills {
			_, dup := seen[skill]
			assert.False(t, dup, "duplicate skill %q", skill)
			seen[skill] = struct{}{}
		}
	}
}

func TestGenerateConnectionsResolve(t *testing.T) {
	g := NewGenerator(3)
	profiles := g.Generate(40)

	ids := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		ids[p.ID] = struct{}{}
	}

	for _, p := range profiles {
		assert.NotEmpty(t, p.Connections)
		for _, target := range p.Connections {
			assert.NotEqual(t, p.ID, target, "self connection")
			_, ok := ids[target]
			assert.True(t, ok, "connection target %q not in population", target)
		}
	}
}

func TestGenerateInteractions(t *testing.T) {
	g := NewGenerator(11)
	profiles := g.Generate(60)

	found := 0
	for _, p := range profiles {
		connections := make(map[string]struct{}, len(p.Connections))
		for _, id := range p.Connections {
			connections[id] = struct{}{}
		}
		for target, interaction := range p.Interactions {
			found++
			_, ok := connections[target]
			assert.True(t, ok, "interaction with non-connection %q", target)
			assert.GreaterOrEqual(t, interaction.Strength, 0.0)
			assert.LessOrEqual(t, interaction.Strength, 1.0)
			assert.GreaterOrEqual(t, interaction.Frequency, 1)
			assert.LessOrEqual(t, interaction.Frequency, 20)
			assert.NotEmpty(t, interaction.LastContact)
		}
	}
	// ~30% of connections carry interactions; with 60 profiles at 10-30
	// connections each, some must exist.
	assert.Greater(t, found, 0)
}

func TestGenerateWorkHistory(t *testing.T) {
	g := NewGenerator(5)
	for _, p := range g.Generate(20) {
		require.NotEmpty(t, p.WorkHistory)
		current := p.WorkHistory[0]
		assert.True(t, current.IsCurrent)
		assert.Equal(t, p.Company, current.Company)

		for _, previous := range p.WorkHistory[1:] {
			assert.False(t, previous.IsCurrent)
			assert.NotEqual(t, p.Company, previous.Company)
			assert.NotEmpty(t, previous.EndDate)
		}
	}
}

func TestGenerateSmallPopulation(t *testing.T) {
	g := NewGenerator(1)
	profiles := g.Generate(3)
	require.Len(t, profiles, 3)
	for _, p := range profiles {
		assert.LessOrEqual(t, len(p.Connections), 2)
	}
}
