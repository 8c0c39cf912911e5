package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"promatch/application/ports"
	"promatch/domain/profile"
	"promatch/pkg/common"
)

// ProfileHandler handles profile listing HTTP requests
type ProfileHandler struct {
	store  ports.ProfileStore
	logger *zap.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(store ports.ProfileStore, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{store: store, logger: logger}
}

// ProfileView is the listing representation of a profile
type ProfileView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	JobTitle    string   `json:"job_title"`
	Company     string   `json:"company"`
	Industry    string   `json:"industry"`
	Skills      []string `json:"skills,omitempty"`
	Connections int      `json:"connection_count"`
}

// ListProfiles handles GET /network/profiles
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	params := common.ExtractPaginationParams(r)
	company := strings.ToLower(r.URL.Query().Get("company"))
	jobTitle := strings.ToLower(r.URL.Query().Get("job_title"))

	var filtered []ProfileView
	for _, p := range h.store.All() {
		if company != "" && !strings.Contains(strings.ToLower(p.Company), company) {
			continue
		}
		if jobTitle != "" && !strings.Contains(strings.ToLower(p.JobTitle), jobTitle) {
			continue
		}
		filtered = append(filtered, toProfileView(p))
	}

	total := len(filtered)
	start, end := params.Slice(total)
	page := filtered[start:end]
	if page == nil {
		page = []ProfileView{}
	}

	respondJSON(h.logger, w, http.StatusOK, common.NewPaginatedResult(page, params.Page, params.PageSize, total))
}

func toProfileView(p *profile.Profile) ProfileView {
	return ProfileView{
		ID:          p.ID,
		Name:        p.Name,
		JobTitle:    p.JobTitle,
		Company:     p.Company,
		Industry:    p.Industry,
		Skills:      p.Skills,
		Connections: len(p.Connections),
	}
}
