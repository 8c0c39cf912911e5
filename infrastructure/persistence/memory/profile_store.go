// Package memory holds the in-memory profile store. The professional network
// is rebuilt per process lifetime; there is no durable persistence behind it.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"promatch/domain/profile"
	apperrors "promatch/pkg/errors"

	"go.uber.org/zap"
)

// ProfileStore keeps the loaded population as an arena of profiles keyed by
// id. A load is an all-or-nothing replace: the new population is validated
// and normalized completely before it becomes visible, so concurrent readers
// never observe a partial graph. After the swap the population is immutable
// and reads take only the lock needed to reach the current snapshot.
type ProfileStore struct {
	mu         sync.RWMutex
	byID       map[string]*profile.Profile
	order      []string
	embeddings map[string][]float64
	logger     *zap.Logger
}

// NewProfileStore creates an empty profile store.
func NewProfileStore(logger *zap.Logger) *ProfileStore {
	return &ProfileStore{
		byID:       make(map[string]*profile.Profile),
		embeddings: make(map[string][]float64),
		logger:     logger,
	}
}

// Load validates and installs a new population. Connection edges are made
// symmetric by inserting missing back-edges; skill lists are deduplicated.
// Any connection or interaction reference to an unknown profile aborts the
// load with a data-integrity error: silently dropping it would corrupt
// mutual-connection counts downstream.
func (s *ProfileStore) Load(profiles []*profile.Profile) error {
	byID := make(map[string]*profile.Profile, len(profiles))
	order := make([]string, 0, len(profiles))

	for _, p := range profiles {
		if p.ID == "" {
			return apperrors.NewDataIntegrityError("profile with empty id in population")
		}
		if _, exists := byID[p.ID]; exists {
			return apperrors.NewDataIntegrityError(fmt.Sprintf("duplicate profile id %q in population", p.ID))
		}
		byID[p.ID] = p
		order = append(order, p.ID)
	}

	// Validate every edge before touching anything.
	for _, p := range profiles {
		for _, target := range p.Connections {
			if _, ok := byID[target]; !ok {
				return apperrors.NewDataIntegrityError(
					fmt.Sprintf("profile %q lists unknown connection %q", p.ID, target))
			}
			if target == p.ID {
				return apperrors.NewDataIntegrityError(
					fmt.Sprintf("profile %q lists itself as a connection", p.ID))
			}
		}
		for target := range p.Interactions {
			if _, ok := byID[target]; !ok {
				return apperrors.NewDataIntegrityError(
					fmt.Sprintf("profile %q records an interaction with unknown profile %q", p.ID, target))
			}
		}
	}

	// Symmetrize the connection graph.
	adjacency := make(map[string]map[string]struct{}, len(profiles))
	for _, p := range profiles {
		if adjacency[p.ID] == nil {
			adjacency[p.ID] = make(map[string]struct{})
		}
		for _, target := range p.Connections {
			adjacency[p.ID][target] = struct{}{}
			if adjacency[target] == nil {
				adjacency[target] = make(map[string]struct{})
			}
			adjacency[target][p.ID] = struct{}{}
		}
	}

	edges := 0
	for _, p := range profiles {
		connections := make([]string, 0, len(adjacency[p.ID]))
		for id := range adjacency[p.ID] {
			connections = append(connections, id)
		}
		sort.Strings(connections)
		p.Connections = connections
		p.Skills = dedupe(p.Skills)
		edges += len(connections)
	}

	s.mu.Lock()
	s.byID = byID
	s.order = order
	s.embeddings = make(map[string][]float64)
	s.mu.Unlock()

	s.logger.Info("Profile population loaded",
		zap.Int("profiles", len(order)),
		zap.Int("connections", edges/2),
	)
	return nil
}

// Get returns the profile with the given id.
func (s *ProfileStore) Get(id string) (*profile.Profile, error) {
	s.mu.RLock()
	p, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("profile %q", id))
	}
	return p, nil
}

// AllExcept returns every loaded profile except the given id, in load order.
func (s *ProfileStore) AllExcept(id string) []*profile.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*profile.Profile, 0, len(s.order))
	for _, pid := range s.order {
		if pid == id {
			continue
		}
		result = append(result, s.byID[pid])
	}
	return result
}

// All returns every loaded profile in load order.
func (s *ProfileStore) All() []*profile.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*profile.Profile, 0, len(s.order))
	for _, pid := range s.order {
		result = append(result, s.byID[pid])
	}
	return result
}

// Count returns the number of loaded profiles.
func (s *ProfileStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Loaded reports whether a population has been installed.
func (s *ProfileStore) Loaded() bool {
	return s.Count() > 0
}

// Embedding returns the stored document embedding for a profile, or nil.
func (s *ProfileStore) Embedding(id string) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.embeddings[id]
}

// SetEmbeddings attaches document embeddings to loaded profiles. Ids without
// a loaded profile are ignored.
func (s *ProfileStore) SetEmbeddings(embeddings map[string][]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, vector := range embeddings {
		if _, ok := s.byID[id]; ok {
			s.embeddings[id] = vector
		}
	}
}

// dedupe removes duplicate entries preserving first-seen order.
func dedupe(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
