package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"promatch/application/services"
	apperrors "promatch/pkg/errors"
	"promatch/pkg/utils"
)

// NetworkHandler handles network lifecycle and matching HTTP requests
type NetworkHandler struct {
	network      *services.NetworkService
	matching     *services.MatchingService
	graph        *services.GraphService
	stats        *services.StatsService
	introduction *services.IntroductionService
	logger       *zap.Logger
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(
	network *services.NetworkService,
	matching *services.MatchingService,
	graph *services.GraphService,
	stats *services.StatsService,
	introduction *services.IntroductionService,
	logger *zap.Logger,
) *NetworkHandler {
	return &NetworkHandler{
		network:      network,
		matching:     matching,
		graph:        graph,
		stats:        stats,
		introduction: introduction,
		logger:       logger,
	}
}

// InitializeRequest represents the request body for initializing the network
type InitializeRequest struct {
	ProfileCount int `json:"profile_count" validate:"required,min=1,max=10000"`
}

// Initialize handles POST /network/initialize
func (h *NetworkHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	var req InitializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "Validation error: "+err.Error())
		return
	}

	result, err := h.network.Initialize(r.Context(), req.ProfileCount)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, map[string]interface{}{
		"message":           "Network initialized successfully",
		"total_profiles":    result.ProfileCount,
		"total_connections": result.ConnectionCount,
		"created_at":        utils.NowRFC3339(),
	})
}

// FindConnectionsRequest represents the request body for a matching run
type FindConnectionsRequest struct {
	RequesterID         string `json:"requester_id" validate:"required"`
	Query               string `json:"query" validate:"required,min=1,max=500"`
	MaxResults          int    `json:"max_results,omitempty" validate:"omitempty,min=1,max=50"`
	IncludeExplanations bool   `json:"include_explanations,omitempty"`
}

// FindConnections handles POST /network/find-connections
func (h *NetworkHandler) FindConnections(w http.ResponseWriter, r *http.Request) {
	var req FindConnectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "Validation error: "+err.Error())
		return
	}

	if req.MaxResults == 0 {
		req.MaxResults = 10
	}

	response, err := h.matching.FindConnections(r.Context(), services.FindConnectionsInput{
		RequesterID:         req.RequesterID,
		Query:               req.Query,
		MaxResults:          req.MaxResults,
		IncludeExplanations: req.IncludeExplanations,
	})
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, response)
}

// NetworkStats handles GET /network/stats
func (h *NetworkHandler) NetworkStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(h.logger, w, http.StatusOK, h.stats.Summary())
}

// MutualConnections handles GET /network/mutual-connections
func (h *NetworkHandler) MutualConnections(w http.ResponseWriter, r *http.Request) {
	profileID := r.URL.Query().Get("profile_id")
	otherID := r.URL.Query().Get("other_id")
	if profileID == "" || otherID == "" {
		respondError(h.logger, w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "profile_id and other_id are required")
		return
	}

	mutuals, err := h.graph.MutualConnections(profileID, otherID)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"profile_id":         profileID,
		"other_id":           otherID,
		"mutual_connections": mutuals,
		"count":              len(mutuals),
	})
}

// IntroductionRequest represents the request body for drafting an introduction
type IntroductionRequest struct {
	RequesterID string `json:"requester_id" validate:"required"`
	TargetID    string `json:"target_id" validate:"required"`
	Reason      string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// GenerateIntroduction handles POST /network/introductions
func (h *NetworkHandler) GenerateIntroduction(w http.ResponseWriter, r *http.Request) {
	var req IntroductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "Validation error: "+err.Error())
		return
	}

	draft, err := h.introduction.Draft(r.Context(), req.RequesterID, req.TargetID, req.Reason)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, draft)
}
