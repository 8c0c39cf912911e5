package profile

import (
	"strings"
	"time"
)

// Profile represents a professional in the network. Profiles are created
// during a population load and treated as immutable afterwards; connection
// and interaction edges reference other profiles by id only.
type Profile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	JobTitle    string      `json:"job_title"`
	Company     string      `json:"company"`
	CompanySize string      `json:"company_size,omitempty"`
	Industry    string      `json:"industry,omitempty"`
	Bio         string      `json:"bio,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	Education   *Education  `json:"education,omitempty"`
	WorkHistory []WorkEntry `json:"work_history,omitempty"`

	// Connections holds ids of directly connected profiles. The store
	// guarantees symmetry after load: if B appears here, A appears in B's list.
	Connections []string `json:"connections,omitempty"`

	// Interactions records directed interaction data keyed by target
	// profile id. It is not guaranteed symmetric.
	Interactions map[string]Interaction `json:"interactions,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Education describes a single education record. All fields are optional;
// an absent record is represented by a nil *Education.
type Education struct {
	University string `json:"university,omitempty"`
	Degree     string `json:"degree,omitempty"`
	Field      string `json:"field,omitempty"`
}

// WorkEntry is one position in a profile's work history.
type WorkEntry struct {
	Company   string `json:"company"`
	Title     string `json:"title,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	IsCurrent bool   `json:"is_current"`
}

// Interaction captures directed interaction data between two profiles.
// Strength is normalized to [0, 1].
type Interaction struct {
	Frequency   int     `json:"frequency"`
	LastContact string  `json:"last_contact,omitempty"`
	Strength    float64 `json:"strength"`
}

// Summary is the compact representation used when a profile appears inside
// another result (mutual connections, requester echo, listings).
type Summary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
}

// Summarize returns the compact representation of the profile.
func (p *Profile) Summarize() Summary {
	return Summary{
		ID:       p.ID,
		Name:     p.Name,
		JobTitle: p.JobTitle,
		Company:  p.Company,
	}
}

// CompanySet returns the lowercase set of the profile's current company and
// every company in its work history.
func (p *Profile) CompanySet() map[string]struct{} {
	companies := make(map[string]struct{})
	if p.Company != "" {
		companies[strings.ToLower(p.Company)] = struct{}{}
	}
	for _, work := range p.WorkHistory {
		if work.Company != "" {
			companies[strings.ToLower(work.Company)] = struct{}{}
		}
	}
	return companies
}

// SkillSet returns the lowercase set of the profile's skills.
func (p *Profile) SkillSet() map[string]struct{} {
	skills := make(map[string]struct{}, len(p.Skills))
	for _, skill := range p.Skills {
		skills[strings.ToLower(skill)] = struct{}{}
	}
	return skills
}

// ConnectionSet returns the profile's connection ids as a set.
func (p *Profile) ConnectionSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.Connections))
	for _, id := range p.Connections {
		set[id] = struct{}{}
	}
	return set
}

// IsConnectedTo reports whether id is a direct connection of the profile.
func (p *Profile) IsConnectedTo(id string) bool {
	for _, c := range p.Connections {
		if c == id {
			return true
		}
	}
	return false
}

// InteractionStrength returns the recorded interaction strength from the
// profile toward target, or 0 when no record exists.
func (p *Profile) InteractionStrength(target string) float64 {
	if p.Interactions == nil {
		return 0
	}
	return p.Interactions[target].Strength
}
