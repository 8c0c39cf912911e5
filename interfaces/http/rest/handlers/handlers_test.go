package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"promatch/application/ports"
	"promatch/application/services"
	"promatch/domain/matching"
	"promatch/domain/profile"
	"promatch/infrastructure/persistence/memory"
	"promatch/pkg/observability"
)

type stubParser struct{}

func (stubParser) ParseQuery(ctx context.Context, text string) (*matching.ParsedQuery, error) {
	return &matching.ParsedQuery{JobTitles: []string{"engineer"}}, nil
}

type stubEmbedder struct{}

func (stubEmbedder) Embed(ctx context.Context, texts []string, purpose ports.EmbeddingPurpose) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = []float64{0.6, 0.4}
	}
	return out, nil
}

type stubWriter struct{}

func (stubWriter) DraftIntroduction(ctx context.Context, requester, target, mutual *profile.Profile, reason string) (string, error) {
	return "Subject: Introduction", nil
}

type stubGenerator struct{}

func (stubGenerator) Generate(count int) []*profile.Profile {
	return []*profile.Profile{
		{ID: "ada", Name: "Ada Chen", JobTitle: "Senior Software Engineer", Company: "Google",
			Connections: []string{"ben", "cleo"}},
		{ID: "ben", Name: "Ben Patel", JobTitle: "Product Manager", Company: "Stripe",
			Connections: []string{"cleo"}},
		{ID: "cleo", Name: "Cleo Kim", JobTitle: "ML Engineer", Company: "Google"},
	}
}

func setupRouter(t *testing.T, preload bool) chi.Router {
	t.Helper()
	logger := zap.NewNop()
	store := memory.NewProfileStore(logger)
	engine := matching.NewEngine(matching.DefaultWeights())
	graph := services.NewGraphService(store, logger)
	network := services.NewNetworkService(store, stubGenerator{}, stubEmbedder{}, false, logger)
	matcher := services.NewMatchingService(
		store, stubParser{}, stubEmbedder{},
		services.NewLocalScoringStrategy(engine, store, 2),
		graph, observability.NewMetrics(), logger,
	)
	stats := services.NewStatsService(store)
	intro := services.NewIntroductionService(store, graph, stubWriter{}, logger)

	if preload {
		_, err := network.Initialize(context.Background(), 3)
		require.NoError(t, err)
	}

	networkHandler := NewNetworkHandler(network, matcher, graph, stats, intro, logger)
	profileHandler := NewProfileHandler(store, logger)

	r := chi.NewRouter()
	r.Post("/network/initialize", networkHandler.Initialize)
	r.Post("/network/find-connections", networkHandler.FindConnections)
	r.Get("/network/stats", networkHandler.NetworkStats)
	r.Get("/network/mutual-connections", networkHandler.MutualConnections)
	r.Post("/network/introductions", networkHandler.GenerateIntroduction)
	r.Get("/network/profiles", profileHandler.ListProfiles)
	return r
}

func doJSON(t *testing.T, router chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestInitializeEndpoint(t *testing.T) {
	router := setupRouter(t, false)

	rec := doJSON(t, router, http.MethodPost, "/network/initialize", map[string]int{"profile_count": 3})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["total_profiles"])
	assert.Equal(t, float64(3), body["total_connections"])
}

func TestInitializeEndpointValidation(t *testing.T) {
	router := setupRouter(t, false)

	rec := doJSON(t, router, http.MethodPost, "/network/initialize", map[string]int{"profile_count": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/network/initialize", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindConnectionsEndpoint(t *testing.T) {
	router := setupRouter(t, true)

	rec := doJSON(t, router, http.MethodPost, "/network/find-connections", map[string]interface{}{
		"requester_id": "ada",
		"query":        "product managers",
		"max_results":  5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []struct {
			Rank    int `json:"rank"`
			Profile struct {
				ID string `json:"id"`
			} `json:"profile"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 2)
	assert.Equal(t, 1, body.Results[0].Rank)
}

func TestFindConnectionsEndpointErrors(t *testing.T) {
	t.Run("unknown requester", func(t *testing.T) {
		router := setupRouter(t, true)
		rec := doJSON(t, router, http.MethodPost, "/network/find-connections", map[string]interface{}{
			"requester_id": "ghost",
			"query":        "anyone",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("uninitialized network", func(t *testing.T) {
		router := setupRouter(t, false)
		rec := doJSON(t, router, http.MethodPost, "/network/find-connections", map[string]interface{}{
			"requester_id": "ada",
			"query":        "anyone",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing query", func(t *testing.T) {
		router := setupRouter(t, true)
		rec := doJSON(t, router, http.MethodPost, "/network/find-connections", map[string]interface{}{
			"requester_id": "ada",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStatsEndpoint(t *testing.T) {
	router := setupRouter(t, true)

	rec := doJSON(t, router, http.MethodGet, "/network/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TotalProfiles int `json:"total_profiles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.TotalProfiles)
}

func TestMutualConnectionsEndpoint(t *testing.T) {
	router := setupRouter(t, true)

	rec := doJSON(t, router, http.MethodGet, "/network/mutual-connections?profile_id=ada&other_id=ben", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
		Mutual []struct {
			ID string `json:"id"`
		} `json:"mutual_connections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Mutual, 1)
	assert.Equal(t, "cleo", body.Mutual[0].ID)

	t.Run("missing params", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/network/mutual-connections?profile_id=ada", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIntroductionsEndpoint(t *testing.T) {
	router := setupRouter(t, true)

	rec := doJSON(t, router, http.MethodPost, "/network/introductions", map[string]string{
		"requester_id": "ada",
		"target_id":    "ben",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		EmailDraft string `json:"email_draft"`
		Mutual     struct {
			ID string `json:"id"`
		} `json:"mutual_connection"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Subject: Introduction", body.EmailDraft)
	assert.Equal(t, "cleo", body.Mutual.ID)
}

func TestListProfilesEndpoint(t *testing.T) {
	router := setupRouter(t, true)

	rec := doJSON(t, router, http.MethodGet, "/network/profiles?page_size=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items      []ProfileView `json:"items"`
		Pagination struct {
			Total   int  `json:"total"`
			HasNext bool `json:"has_next"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Items, 2)
	assert.Equal(t, 3, body.Pagination.Total)
	assert.True(t, body.Pagination.HasNext)

	t.Run("company filter", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/network/profiles?company=google", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var filtered struct {
			Items []ProfileView `json:"items"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
		assert.Len(t, filtered.Items, 2)
		for _, item := range filtered.Items {
			assert.Equal(t, "Google", item.Company)
		}
	})
}
