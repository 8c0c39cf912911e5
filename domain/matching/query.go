package matching

// ExperienceLevel is the seniority bucket extracted from a query.
type ExperienceLevel string

const (
	ExperienceJunior    ExperienceLevel = "junior"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
	ExperienceAny       ExperienceLevel = "any"
)

// ParsedQuery contains the structured criteria extracted from a natural
// language networking query. Empty slices and the "any" experience level
// mean the criterion was not supplied.
type ParsedQuery struct {
	JobTitles       []string        `json:"job_titles,omitempty"`
	Companies       []string        `json:"companies,omitempty"`
	Skills          []string        `json:"skills,omitempty"`
	Industries      []string        `json:"industries,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`
	Education       []string        `json:"education,omitempty"`
	OtherCriteria   string          `json:"other_criteria,omitempty"`
}

// HasCriteria reports whether any scoreable criterion was supplied.
func (q *ParsedQuery) HasCriteria() bool {
	if q == nil {
		return false
	}
	return len(q.JobTitles) > 0 ||
		len(q.Companies) > 0 ||
		len(q.Skills) > 0 ||
		len(q.Industries) > 0 ||
		len(q.Education) > 0 ||
		(q.ExperienceLevel != "" && q.ExperienceLevel != ExperienceAny)
}
