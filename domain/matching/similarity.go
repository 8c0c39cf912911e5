package matching

import (
	"fmt"
	"math"
	"strings"

	"promatch/domain/profile"
)

// Weights holds the coefficients of the composite score. The defaults are a
// design constant; they must sum to 1 so the composite stays in [0, 1].
type Weights struct {
	Semantic       float64
	Relationship   float64
	MutualOverlap  float64
	CompanyOverlap float64
	Education      float64
	QueryRelevance float64
}

// DefaultWeights returns the standard metric weights.
func DefaultWeights() Weights {
	return Weights{
		Semantic:       0.25,
		Relationship:   0.20,
		MutualOverlap:  0.15,
		CompanyOverlap: 0.15,
		Education:      0.10,
		QueryRelevance: 0.15,
	}
}

// Validate checks that the weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"semantic":        w.Semantic,
		"relationship":    w.Relationship,
		"mutual_overlap":  w.MutualOverlap,
		"company_overlap": w.CompanyOverlap,
		"education":       w.Education,
		"query_relevance": w.QueryRelevance,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %v", name, v)
		}
	}
	sum := w.Semantic + w.Relationship + w.MutualOverlap + w.CompanyOverlap + w.Education + w.QueryRelevance
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// Scores is the per-metric breakdown plus the weighted composite.
type Scores struct {
	Composite      float64 `json:"composite_score"`
	Semantic       float64 `json:"semantic_similarity"`
	Relationship   float64 `json:"relationship_strength"`
	MutualOverlap  float64 `json:"mutual_connections"`
	CompanyOverlap float64 `json:"company_overlap"`
	Education      float64 `json:"education_similarity"`
	QueryRelevance float64 `json:"query_relevance"`
}

// Engine computes pairwise similarity metrics between profiles. It is
// stateless beyond its weights and safe for concurrent use.
type Engine struct {
	weights Weights
}

// NewEngine creates a similarity engine with the given weights.
func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// Weights returns the engine's configured weights.
func (e *Engine) Weights() Weights {
	return e.weights
}

// SemanticSimilarity returns the cosine similarity between two embeddings,
// floored at 0. Negative cosine has no useful interpretation for profile
// matching. Returns 0 when either embedding is absent or the lengths differ.
func (e *Engine) SemanticSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if cos < 0 {
		return 0
	}
	if cos > 1 {
		return 1
	}
	return cos
}

// RelationshipStrength returns the strongest recorded interaction between
// the two profiles, checking both directions. 0 when neither direction has
// an interaction record.
func (e *Engine) RelationshipStrength(a, b *profile.Profile) float64 {
	strength := a.InteractionStrength(b.ID)
	if reverse := b.InteractionStrength(a.ID); reverse > strength {
		strength = reverse
	}
	return strength
}

// MutualConnectionOverlap returns the Jaccard index of the two connection
// sets. 0 when either profile has no connections.
func (e *Engine) MutualConnectionOverlap(a, b *profile.Profile) float64 {
	return jaccard(a.ConnectionSet(), b.ConnectionSet())
}

// CompanyOverlap returns the Jaccard index over each profile's current
// company plus work-history companies, case-insensitive.
func (e *Engine) CompanyOverlap(a, b *profile.Profile) float64 {
	return jaccard(a.CompanySet(), b.CompanySet())
}

// EducationSimilarity scores shared education in [0, 1]: 0.7 for the same
// university, 0.3 for the same degree level or 0.15 for an adjacent level
// (BS/BA, MS/PhD). 0 when either education record is absent.
func (e *Engine) EducationSimilarity(a, b *profile.Profile) float64 {
	eduA, eduB := a.Education, b.Education
	if eduA == nil || eduB == nil {
		return 0
	}

	similarity := 0.0
	if eduA.University != "" && eduB.University != "" &&
		strings.EqualFold(eduA.University, eduB.University) {
		similarity += 0.7
	}
	if eduA.Degree != "" && eduB.Degree != "" {
		degreeA := strings.ToLower(eduA.Degree)
		degreeB := strings.ToLower(eduB.Degree)
		switch {
		case degreeA == degreeB:
			similarity += 0.3
		case adjacentDegreeLevels(degreeA, degreeB):
			similarity += 0.15
		}
	}
	return similarity
}

// adjacentDegreeLevels reports whether two distinct degrees sit at the same
// or neighboring academic level: bachelor variants together, and
// master/doctorate within one step of each other.
func adjacentDegreeLevels(a, b string) bool {
	bachelor := map[string]bool{"bs": true, "ba": true}
	graduate := map[string]bool{"ms": true, "phd": true}
	if bachelor[a] && bachelor[b] {
		return true
	}
	return graduate[a] && graduate[b]
}

// QueryRelevance scores how well a candidate matches the structured query
// criteria. Each populated criterion contributes a score in [0, 1] and the
// result is the average over contributing criteria. Semantic similarity
// joins the average when both embeddings are present. A query with no
// criteria and no embeddings scores 0.
func (e *Engine) QueryRelevance(candidate *profile.Profile, query *ParsedQuery, queryEmbedding, candidateEmbedding []float64) float64 {
	relevance := 0.0
	criteria := 0

	if query != nil {
		title := strings.ToLower(candidate.JobTitle)

		if len(query.JobTitles) > 0 {
			criteria++
			for _, wanted := range query.JobTitles {
				w := strings.ToLower(wanted)
				if strings.Contains(title, w) || strings.Contains(w, title) {
					relevance += 1.0
					break
				}
			}
		}

		if len(query.Companies) > 0 {
			criteria++
			companies := candidate.CompanySet()
			for _, wanted := range query.Companies {
				if _, ok := companies[strings.ToLower(wanted)]; ok {
					relevance += 1.0
					break
				}
			}
		}

		if len(query.Skills) > 0 {
			criteria++
			skills := candidate.SkillSet()
			matched := 0
			for _, wanted := range query.Skills {
				if _, ok := skills[strings.ToLower(wanted)]; ok {
					matched++
				}
			}
			relevance += float64(matched) / float64(len(query.Skills))
		}

		if len(query.Industries) > 0 {
			criteria++
			industry := strings.ToLower(candidate.Industry)
			for _, wanted := range query.Industries {
				if strings.Contains(industry, strings.ToLower(wanted)) {
					relevance += 1.0
					break
				}
			}
		}

		if len(query.Education) > 0 {
			criteria++
			var university, degree string
			if candidate.Education != nil {
				university = strings.ToLower(candidate.Education.University)
				degree = strings.ToLower(candidate.Education.Degree)
			}
			for _, wanted := range query.Education {
				w := strings.ToLower(wanted)
				if (university != "" && strings.Contains(university, w)) ||
					(degree != "" && strings.Contains(degree, w)) {
					relevance += 1.0
					break
				}
			}
		}

		// "any" is always satisfied and therefore excluded from the count.
		if query.ExperienceLevel != "" && query.ExperienceLevel != ExperienceAny {
			criteria++
			if matchesExperienceLevel(title, query.ExperienceLevel) {
				relevance += 1.0
			}
		}
	}

	if len(queryEmbedding) > 0 && len(candidateEmbedding) > 0 {
		criteria++
		relevance += e.SemanticSimilarity(queryEmbedding, candidateEmbedding)
	}

	if criteria == 0 {
		return 0
	}
	return relevance / float64(criteria)
}

// matchesExperienceLevel applies the title-keyword seniority heuristic.
func matchesExperienceLevel(title string, level ExperienceLevel) bool {
	switch level {
	case ExperienceSenior:
		return strings.Contains(title, "senior") ||
			strings.Contains(title, "principal") ||
			strings.Contains(title, "staff")
	case ExperienceJunior:
		if strings.Contains(title, "junior") {
			return true
		}
		return !strings.Contains(title, "senior") && !strings.Contains(title, "principal")
	case ExperienceExecutive:
		for _, keyword := range []string{"vp", "director", "head", "ceo", "cto", "cpo"} {
			if strings.Contains(title, keyword) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// CompositeScore computes every metric between the requester and a candidate
// and combines them with the engine's weights. Query relevance is only
// scored when a parsed query or query embedding is supplied.
func (e *Engine) CompositeScore(
	requester, candidate *profile.Profile,
	requesterEmbedding, candidateEmbedding []float64,
	query *ParsedQuery,
	queryEmbedding []float64,
) Scores {
	s := Scores{
		Semantic:       e.SemanticSimilarity(requesterEmbedding, candidateEmbedding),
		Relationship:   e.RelationshipStrength(requester, candidate),
		MutualOverlap:  e.MutualConnectionOverlap(requester, candidate),
		CompanyOverlap: e.CompanyOverlap(requester, candidate),
		Education:      e.EducationSimilarity(requester, candidate),
	}
	if query != nil || len(queryEmbedding) > 0 {
		s.QueryRelevance = e.QueryRelevance(candidate, query, queryEmbedding, candidateEmbedding)
	}

	s.Composite = s.Semantic*e.weights.Semantic +
		s.Relationship*e.weights.Relationship +
		s.MutualOverlap*e.weights.MutualOverlap +
		s.CompanyOverlap*e.weights.CompanyOverlap +
		s.Education*e.weights.Education +
		s.QueryRelevance*e.weights.QueryRelevance
	return s
}

// jaccard computes |A∩B| / |A∪B|, defined as 0 when either set is empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
