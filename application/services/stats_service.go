package services

import (
	"sort"

	"promatch/application/ports"
)

// FrequencyEntry is one value/count pair in a top-N ranking.
type FrequencyEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// StatsSummary aggregates counts over the loaded network.
type StatsSummary struct {
	TotalProfiles    int              `json:"total_profiles"`
	TotalConnections int              `json:"total_connections"`
	AverageDegree    float64          `json:"average_connections_per_person"`
	TopCompanies     []FrequencyEntry `json:"top_companies"`
	TopIndustries    []FrequencyEntry `json:"top_industries"`
	TopJobTitles     []FrequencyEntry `json:"top_job_titles"`
}

// StatsService computes aggregate statistics over the profile store. The
// computation is pure; identical populations produce identical summaries.
type StatsService struct {
	store ports.ProfileStore
}

// NewStatsService creates a stats service.
func NewStatsService(store ports.ProfileStore) *StatsService {
	return &StatsService{store: store}
}

// Summary aggregates the current population. Edge counts halve the degree
// sum since the store guarantees symmetric connections.
func (s *StatsService) Summary() StatsSummary {
	profiles := s.store.All()

	companies := newFrequencyCounter()
	industries := newFrequencyCounter()
	jobTitles := newFrequencyCounter()

	degreeSum := 0
	for _, p := range profiles {
		degreeSum += len(p.Connections)
		companies.Add(p.Company)
		industries.Add(p.Industry)
		jobTitles.Add(p.JobTitle)
	}

	summary := StatsSummary{
		TotalProfiles:    len(profiles),
		TotalConnections: degreeSum / 2,
		TopCompanies:     companies.Top(10),
		TopIndustries:    industries.Top(5),
		TopJobTitles:     jobTitles.Top(10),
	}
	if len(profiles) > 0 {
		summary.AverageDegree = float64(degreeSum) / float64(len(profiles))
	}
	return summary
}

// frequencyCounter counts string occurrences while remembering first-seen
// order, which breaks ties deterministically in Top.
type frequencyCounter struct {
	counts map[string]int
	order  []string
}

func newFrequencyCounter() *frequencyCounter {
	return &frequencyCounter{counts: make(map[string]int)}
}

func (c *frequencyCounter) Add(value string) {
	if value == "" {
		return
	}
	if _, seen := c.counts[value]; !seen {
		c.order = append(c.order, value)
	}
	c.counts[value]++
}

// Top returns the n most frequent values. SliceStable over first-seen order
// keeps equal counts in a consistent order across calls.
func (c *frequencyCounter) Top(n int) []FrequencyEntry {
	entries := make([]FrequencyEntry, 0, len(c.order))
	for _, value := range c.order {
		entries = append(entries, FrequencyEntry{Value: value, Count: c.counts[value]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
