package ports

import "promatch/domain/profile"

// NetworkGenerator produces a synthetic professional network population.
// It is a fixture source for the initialize operation, not production data.
type NetworkGenerator interface {
	Generate(count int) []*profile.Profile
}
