package services

import (
	"sort"

	"promatch/application/ports"
	"promatch/domain/profile"

	"go.uber.org/zap"
)

// MaxMutualConnections bounds how many mutual-connection summaries are
// attached to a result.
const MaxMutualConnections = 5

// Path classification labels. The classifier is a relationship-distance
// heuristic that never explores beyond depth 2.
const (
	PathDirect = "direct"
	PathTwoHop = "2-hop"
	PathNone   = "no_direct_path"
)

// GraphService answers relationship questions over the connection graph.
type GraphService struct {
	store  ports.ProfileStore
	logger *zap.Logger
}

// NewGraphService creates a graph service.
func NewGraphService(store ports.ProfileStore, logger *zap.Logger) *GraphService {
	return &GraphService{store: store, logger: logger}
}

// MutualConnections returns summaries of profiles connected to both a and b,
// at most MaxMutualConnections of them. Ids are resolved against the store;
// both endpoints must exist.
func (s *GraphService) MutualConnections(idA, idB string) ([]profile.Summary, error) {
	a, err := s.store.Get(idA)
	if err != nil {
		return nil, err
	}
	b, err := s.store.Get(idB)
	if err != nil {
		return nil, err
	}
	return s.mutualsOf(a, b), nil
}

// mutualsOf intersects the two connection sets. The intersection is sorted
// by id before truncation so repeated calls return the same five.
func (s *GraphService) mutualsOf(a, b *profile.Profile) []profile.Summary {
	setB := b.ConnectionSet()
	var mutualIDs []string
	for _, id := range a.Connections {
		if _, ok := setB[id]; ok {
			mutualIDs = append(mutualIDs, id)
		}
	}
	sort.Strings(mutualIDs)
	if len(mutualIDs) > MaxMutualConnections {
		mutualIDs = mutualIDs[:MaxMutualConnections]
	}

	summaries := make([]profile.Summary, 0, len(mutualIDs))
	for _, id := range mutualIDs {
		mutual, err := s.store.Get(id)
		if err != nil {
			// Cannot happen after a valid load; the store enforces that
			// every connection id resolves.
			s.logger.Warn("Mutual connection id did not resolve", zap.String("id", id))
			continue
		}
		summaries = append(summaries, mutual.Summarize())
	}
	return summaries
}

// ClassifyPath labels the relationship distance from a to b: ["direct"] when
// b is a's connection, ["2-hop", <mutual name>] when they share a mutual,
// and ["no_direct_path"] otherwise.
func (s *GraphService) ClassifyPath(a, b *profile.Profile) []string {
	if a.IsConnectedTo(b.ID) {
		return []string{PathDirect}
	}
	if mutuals := s.mutualsOf(a, b); len(mutuals) > 0 {
		return []string{PathTwoHop, mutuals[0].Name}
	}
	return []string{PathNone}
}
