package ports

import "promatch/domain/profile"

// ProfileStore is the read model for the loaded professional network.
// Load replaces the whole population atomically; every other method reads a
// consistent snapshot and is safe for concurrent use.
type ProfileStore interface {
	// Load validates and installs a new population, inserting missing
	// back-edges so the connection graph is symmetric. A dangling
	// connection or interaction reference aborts the load and leaves the
	// previous population in place.
	Load(profiles []*profile.Profile) error

	// Get returns the profile with the given id, or a not-found error.
	Get(id string) (*profile.Profile, error)

	// AllExcept returns every loaded profile except the given id, in load
	// order.
	AllExcept(id string) []*profile.Profile

	// All returns every loaded profile in load order.
	All() []*profile.Profile

	// Count returns the number of loaded profiles.
	Count() int

	// Loaded reports whether a population has been installed.
	Loaded() bool

	// Embedding returns the stored document embedding for a profile, or
	// nil when none was supplied.
	Embedding(id string) []float64

	// SetEmbeddings attaches document embeddings to loaded profiles,
	// keyed by profile id.
	SetEmbeddings(embeddings map[string][]float64)
}
