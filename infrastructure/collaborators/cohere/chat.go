package cohere

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"promatch/domain/matching"
	"promatch/domain/profile"
)

const parsePromptTemplate = `Parse this professional networking query and extract structured criteria. Return a JSON object with the following fields:
- job_titles: List of job titles mentioned (e.g., ["AI Engineer", "Software Engineer"])
- companies: List of companies mentioned (e.g., ["Google", "Microsoft"])
- skills: List of skills mentioned (e.g., ["Python", "Machine Learning"])
- industries: List of industries mentioned (e.g., ["Technology", "Healthcare"])
- experience_level: Experience level if mentioned ("junior", "senior", "executive", or "any")
- education: Education requirements if mentioned (e.g., ["Stanford", "MIT"] or ["PhD", "Masters"])
- other_criteria: Any other specific requirements

Query: %q

Return only valid JSON:`

// chat sends one chat request and returns the generated text.
func (c *Client) chat(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	payload := map[string]interface{}{
		"model":       c.cfg.ChatModel,
		"message":     prompt,
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}
	var out struct {
		Text string `json:"text"`
	}
	if err := c.postJSON(ctx, "/v1/chat", payload, &out); err != nil {
		return "", err
	}
	if out.Text == "" {
		return "", fmt.Errorf("chat API returned an empty response")
	}
	return out.Text, nil
}

// ParseQuery implements ports.QueryParser. A response that does not contain
// parseable JSON is an error; the pipeline treats it as fatal.
func (c *Client) ParseQuery(ctx context.Context, text string) (*matching.ParsedQuery, error) {
	reply, err := c.chat(ctx, fmt.Sprintf(parsePromptTemplate, text), 0.1, 500)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		JobTitles       []string `json:"job_titles"`
		Companies       []string `json:"companies"`
		Skills          []string `json:"skills"`
		Industries      []string `json:"industries"`
		ExperienceLevel string   `json:"experience_level"`
		Education       []string `json:"education"`
		OtherCriteria   string   `json:"other_criteria"`
	}
	if err := json.Unmarshal([]byte(extractJSON(reply)), &parsed); err != nil {
		return nil, fmt.Errorf("malformed query parse response: %w", err)
	}

	return &matching.ParsedQuery{
		JobTitles:       parsed.JobTitles,
		Companies:       parsed.Companies,
		Skills:          parsed.Skills,
		Industries:      parsed.Industries,
		ExperienceLevel: normalizeExperienceLevel(parsed.ExperienceLevel),
		Education:       parsed.Education,
		OtherCriteria:   parsed.OtherCriteria,
	}, nil
}

// normalizeExperienceLevel maps free-form model output onto the enum,
// defaulting to "any".
func normalizeExperienceLevel(level string) matching.ExperienceLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "junior":
		return matching.ExperienceJunior
	case "senior":
		return matching.ExperienceSenior
	case "executive":
		return matching.ExperienceExecutive
	default:
		return matching.ExperienceAny
	}
}

const introPromptTemplate = `Write a warm, professional introduction email. The email should be:
- Personal and authentic
- Brief but informative
- Clear about the reason for connection
- Include relevant context about both parties

Context:
- Requester: %s - %s at %s
- Target: %s - %s at %s
- Mutual Connection: %s - %s at %s
- Reason: %s

Requester Bio: %s
Target Bio: %s

Write the email from the perspective of the mutual connection introducing the requester to the target.
Include subject line and email body.`

// DraftIntroduction implements ports.IntroductionWriter.
func (c *Client) DraftIntroduction(ctx context.Context, requester, target, mutual *profile.Profile, reason string) (string, error) {
	prompt := fmt.Sprintf(introPromptTemplate,
		requester.Name, requester.JobTitle, requester.Company,
		target.Name, target.JobTitle, target.Company,
		mutual.Name, mutual.JobTitle, mutual.Company,
		reason,
		requester.Bio,
		target.Bio,
	)
	return c.chat(ctx, prompt, 0.3, 800)
}

// extractJSON pulls the JSON object out of a chat reply, tolerating
// surrounding prose and ```json code fences.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}

	const startMarker = "```json"
	if idx := strings.Index(text, startMarker); idx >= 0 {
		rest := text[idx+len(startMarker):]
		if endIdx := strings.Index(rest, "```"); endIdx > 0 {
			return strings.TrimSpace(rest[:endIdx])
		}
	}
	return text
}
