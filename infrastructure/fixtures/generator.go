// Package fixtures generates synthetic professional network populations for
// the initialize operation. This is test/demo data, not production logic.
package fixtures

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"promatch/domain/profile"
)

type companyInfo struct {
	Name     string
	Size     string
	Industry string
}

var companies = []companyInfo{
	{"Google", "10000+", "Technology"},
	{"Microsoft", "10000+", "Technology"},
	{"OpenAI", "100-500", "AI Research"},
	{"DeepMind", "500-1000", "AI Research"},
	{"Meta", "10000+", "Technology"},
	{"Apple", "10000+", "Technology"},
	{"Tesla", "5000-10000", "Automotive/Energy"},
	{"Stripe", "1000-5000", "Fintech"},
	{"Airbnb", "5000-10000", "Travel"},
	{"Uber", "10000+", "Transportation"},
	{"Netflix", "5000-10000", "Entertainment"},
	{"Salesforce", "10000+", "Enterprise Software"},
	{"Palantir", "1000-5000", "Data Analytics"},
	{"Anthropic", "100-500", "AI Research"},
	{"Scale AI", "500-1000", "AI/ML"},
}

var jobTitlesByCategory = map[string][]string{
	"Engineering": {
		"Software Engineer", "Senior Software Engineer", "Staff Software Engineer",
		"Principal Engineer", "Engineering Manager", "VP of Engineering",
		"AI Engineer", "ML Engineer", "Data Engineer", "DevOps Engineer",
		"Frontend Engineer", "Backend Engineer", "Full Stack Engineer",
	},
	"Product": {
		"Product Manager", "Senior Product Manager", "Principal Product Manager",
		"VP of Product", "Product Director", "Product Owner", "Growth PM",
	},
	"Data": {
		"Data Scientist", "Senior Data Scientist", "Principal Data Scientist",
		"Data Analyst", "Research Scientist", "ML Researcher", "AI Researcher",
	},
	"Business": {
		"Business Development", "Sales Manager", "Account Executive",
		"Customer Success Manager", "Marketing Manager", "Operations Manager",
	},
	"Leadership": {
		"CEO", "CTO", "CPO", "VP of Engineering", "VP of Product", "VP of Sales",
		"Head of AI", "Head of Data", "Director of Engineering",
	},
}

var categories = []string{"Engineering", "Product", "Data", "Business", "Leadership"}

var skillsByCategory = map[string][]string{
	"Programming": {"Python", "JavaScript", "Java", "C++", "Go", "Rust", "TypeScript", "Swift"},
	"AI/ML":       {"TensorFlow", "PyTorch", "Scikit-learn", "Keras", "OpenCV", "NLP", "Computer Vision", "Deep Learning"},
	"Cloud":       {"AWS", "GCP", "Azure", "Docker", "Kubernetes", "Terraform"},
	"Data":        {"SQL", "MongoDB", "PostgreSQL", "Redis", "Spark", "Kafka", "Airflow"},
	"Frontend":    {"React", "Vue.js", "Angular", "HTML/CSS", "Node.js"},
	"Product":     {"Product Strategy", "User Research", "A/B Testing", "Analytics", "Roadmapping"},
	"Leadership":  {"Team Management", "Strategic Planning", "Stakeholder Management", "Mentoring"},
}

var skillCategories = []string{"Programming", "AI/ML", "Cloud", "Data", "Frontend", "Product", "Leadership"}

var universities = []string{
	"Stanford University", "MIT", "UC Berkeley", "Carnegie Mellon", "Harvard",
	"Caltech", "University of Washington", "Georgia Tech", "Cornell", "Princeton",
}

var degrees = []string{"BS", "MS", "PhD"}

var fields = []string{"Computer Science", "Engineering", "Mathematics", "Physics", "Business"}

var firstNames = []string{
	"Alex", "Jordan", "Morgan", "Taylor", "Casey", "Riley", "Jamie", "Avery",
	"Sam", "Dana", "Maria", "Wei", "Priya", "Diego", "Fatima", "Kenji",
	"Elena", "Omar", "Ingrid", "Ravi",
}

var lastNames = []string{
	"Chen", "Patel", "Kim", "Garcia", "Johnson", "Nguyen", "Smith", "Okafor",
	"Müller", "Tanaka", "Silva", "Ivanov", "Hansen", "Rossi", "Kowalski",
	"Ali", "Brown", "Larsen", "Sato", "Novak",
}

// Generator builds synthetic populations. A fixed seed reproduces the same
// network shape, though profile ids are always fresh UUIDs.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given seed; seed 0 means "seed
// from the clock".
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds count profiles with connection and interaction edges.
// Connections are biased toward colleagues: roughly 40% same company and 30%
// same industry, the rest random. About 30% of connections also carry an
// interaction record.
func (g *Generator) Generate(count int) []*profile.Profile {
	profiles := make([]*profile.Profile, count)
	for i := range profiles {
		profiles[i] = g.generateProfile()
	}
	g.wireConnections(profiles)
	g.generateInteractions(profiles)
	return profiles
}

func (g *Generator) generateProfile() *profile.Profile {
	company := companies[g.rng.Intn(len(companies))]
	category := categories[g.rng.Intn(len(categories))]
	titles := jobTitlesByCategory[category]
	jobTitle := titles[g.rng.Intn(len(titles))]
	skills := g.skillsForRole(jobTitle)

	name := firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]

	return &profile.Profile{
		ID:          uuid.New().String(),
		Name:        name,
		JobTitle:    jobTitle,
		Company:     company.Name,
		CompanySize: company.Size,
		Industry:    company.Industry,
		Bio:         g.generateBio(jobTitle, company.Name, skills),
		Skills:      skills,
		Education: &profile.Education{
			University: universities[g.rng.Intn(len(universities))],
			Degree:     degrees[g.rng.Intn(len(degrees))],
			Field:      fields[g.rng.Intn(len(fields))],
		},
		WorkHistory: g.generateWorkHistory(company, jobTitle),
		CreatedAt:   time.Now().UTC(),
	}
}

// skillsForRole derives a skill list from title keywords, topped up with a
// couple of random extras, capped at 8.
func (g *Generator) skillsForRole(jobTitle string) []string {
	var skills []string
	add := func(category string, n int) {
		skills = append(skills, g.sample(skillsByCategory[category], n)...)
	}

	if containsAny(jobTitle, "Engineer", "Engineering") {
		add("Programming", 3)
		add("Cloud", 2)
	}
	if containsAny(jobTitle, "AI", "ML", "Data") {
		add("AI/ML", 4)
		add("Data", 2)
	}
	if containsAny(jobTitle, "Product") {
		add("Product", 3)
	}
	if containsAny(jobTitle, "Frontend") {
		add("Frontend", 3)
	}
	if containsAny(jobTitle, "VP", "Director", "Head", "Manager") {
		add("Leadership", 2)
	}

	// A couple of random skills from any category.
	for extras := 0; extras < 2; extras++ {
		category := skillCategories[g.rng.Intn(len(skillCategories))]
		pool := skillsByCategory[category]
		skills = append(skills, pool[g.rng.Intn(len(pool))])
	}

	unique := dedupe(skills)
	if len(unique) > 8 {
		unique = unique[:8]
	}
	return unique
}

func (g *Generator) generateBio(jobTitle, company string, skills []string) string {
	top := append([]string(nil), skills...)
	for len(top) < 2 {
		top = append(top, "technology")
	}
	templates := []string{
		fmt.Sprintf("Experienced %s at %s passionate about %s and %s. Love building scalable systems and mentoring junior developers.", jobTitle, company, top[0], top[1]),
		fmt.Sprintf("%s with expertise in %s and %s. Currently working on cutting-edge projects at %s. Always excited to connect with fellow technologists.", jobTitle, top[0], top[1], company),
		fmt.Sprintf("Senior technologist specializing in %s and %s. Leading innovative initiatives at %s. Open to discussing industry trends and collaboration opportunities.", top[0], top[1], company),
		fmt.Sprintf("Passionate %s focused on %s and %s. Building the future of technology at %s. Happy to share insights and learn from others.", jobTitle, top[0], top[1], company),
	}
	return templates[g.rng.Intn(len(templates))]
}

func (g *Generator) generateWorkHistory(current companyInfo, title string) []profile.WorkEntry {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -(180 + g.rng.Intn(900)))
	history := []profile.WorkEntry{{
		Company:   current.Name,
		Title:     title,
		StartDate: start.Format("2006-01-02"),
		IsCurrent: true,
	}}

	previous := 1 + g.rng.Intn(3)
	for i := 0; i < previous; i++ {
		var prev companyInfo
		for {
			prev = companies[g.rng.Intn(len(companies))]
			if prev.Name != current.Name {
				break
			}
		}
		end := start.AddDate(0, 0, -(30 + g.rng.Intn(60)))
		start = end.AddDate(0, 0, -(365 + g.rng.Intn(730)))
		history = append(history, profile.WorkEntry{
			Company:   prev.Name,
			Title:     fmt.Sprintf("Previous Role %d", i+1),
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
			IsCurrent: false,
		})
	}
	return history
}

// wireConnections gives each profile 10-30 connections, preferring the same
// company, then the same industry, then anyone. The store inserts the
// back-edges at load time.
func (g *Generator) wireConnections(profiles []*profile.Profile) {
	for _, p := range profiles {
		want := 10 + g.rng.Intn(21)
		if want > len(profiles)-1 {
			want = len(profiles) - 1
		}

		chosen := make(map[string]struct{})
		var sameCompany, sameIndustry, others []*profile.Profile
		for _, candidate := range profiles {
			switch {
			case candidate.ID == p.ID:
			case candidate.Company == p.Company:
				sameCompany = append(sameCompany, candidate)
			case candidate.Industry == p.Industry:
				sameIndustry = append(sameIndustry, candidate)
			default:
				others = append(others, candidate)
			}
		}

		g.pick(sameCompany, int(float64(want)*0.4), chosen)
		g.pick(sameIndustry, int(float64(want)*0.3), chosen)
		g.pick(others, want-len(chosen), chosen)

		connections := make([]string, 0, len(chosen))
		for id := range chosen {
			connections = append(connections, id)
		}
		p.Connections = connections
	}
}

// generateInteractions records interaction data for ~30% of each profile's
// connections, with strength blending recency (60%) and frequency (40%).
func (g *Generator) generateInteractions(profiles []*profile.Profile) {
	now := time.Now().UTC()
	for _, p := range profiles {
		interactions := make(map[string]profile.Interaction)
		for _, connectionID := range p.Connections {
			if g.rng.Float64() >= 0.3 {
				continue
			}
			frequency := 1 + g.rng.Intn(20)
			daysAgo := g.rng.Intn(31)
			lastContact := now.AddDate(0, 0, -daysAgo)

			recencyScore := 1 - float64(daysAgo)/30
			if recencyScore < 0 {
				recencyScore = 0
			}
			frequencyScore := float64(frequency) / 20
			if frequencyScore > 1 {
				frequencyScore = 1
			}

			interactions[connectionID] = profile.Interaction{
				Frequency:   frequency,
				LastContact: lastContact.Format("2006-01-02"),
				Strength:    round3(recencyScore*0.6 + frequencyScore*0.4),
			}
		}
		if len(interactions) > 0 {
			p.Interactions = interactions
		}
	}
}

// pick moves up to n random candidates into chosen.
func (g *Generator) pick(pool []*profile.Profile, n int, chosen map[string]struct{}) {
	if n <= 0 || len(pool) == 0 {
		return
	}
	indexes := g.rng.Perm(len(pool))
	taken := 0
	for _, idx := range indexes {
		if taken >= n {
			break
		}
		id := pool[idx].ID
		if _, ok := chosen[id]; ok {
			continue
		}
		chosen[id] = struct{}{}
		taken++
	}
}

// sample returns up to n distinct random entries from pool.
func (g *Generator) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	indexes := g.rng.Perm(len(pool))[:n]
	out := make([]string, n)
	for i, idx := range indexes {
		out[i] = pool[idx]
	}
	return out
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
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

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}
