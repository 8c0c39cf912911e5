// Package cohere implements the external AI collaborator contracts (query
// parsing, embedding, reranking, introduction drafting) against a
// Cohere-style HTTP API.
package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"go.uber.org/zap"

	"promatch/application/ports"
)

// Config holds the collaborator endpoint settings.
type Config struct {
	BaseURL     string
	APIKey      string
	ChatModel   string
	EmbedModel  string
	RerankModel string
	Timeout     time.Duration
}

// Client is a thin HTTP client for the chat, embed and rerank APIs. It is
// safe for concurrent use.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a collaborator client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type httpError struct {
	StatusCode int
	Body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("collaborator API status %d: %s", e.StatusCode, e.Body)
}

// postJSON sends one API request with a single retry on transient failures.
func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	data, err := retry.DoWithData(
		func() ([]byte, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
			if err != nil {
				return nil, err
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

			start := time.Now()
			resp, err := c.http.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()

			respBody, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			c.logger.Debug("Collaborator API call",
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
				zap.Duration("duration", time.Since(start)),
			)
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return nil, &httpError{StatusCode: resp.StatusCode, Body: preview(respBody, 500)}
			}
			return respBody, nil
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.Delay(200*time.Millisecond),
		retry.MaxJitter(100*time.Millisecond),
		retry.RetryIf(isRetryableError),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("Retrying collaborator call",
				zap.Uint("attempt", n+1),
				zap.String("path", path),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// isRetryableError returns true for transient failures worth one retry.
func isRetryableError(err error) bool {
	var httpErr *httpError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}
	// Network errors and timeouts are retryable.
	return true
}

// Embed implements ports.Embedder.
func (c *Client) Embed(ctx context.Context, texts []string, purpose ports.EmbeddingPurpose) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	payload := map[string]interface{}{
		"model":           c.cfg.EmbedModel,
		"texts":           texts,
		"input_type":      string(purpose),
		"embedding_types": []string{"float"},
	}
	var out struct {
		Embeddings struct {
			Float [][]float64 `json:"float"`
		} `json:"embeddings"`
	}
	if err := c.postJSON(ctx, "/v1/embed", payload, &out); err != nil {
		return nil, err
	}
	if len(out.Embeddings.Float) != len(texts) {
		return nil, fmt.Errorf("embed API returned %d vectors for %d texts", len(out.Embeddings.Float), len(texts))
	}
	return out.Embeddings.Float, nil
}

// Rerank implements ports.Reranker.
func (c *Client) Rerank(ctx context.Context, query string, documents []ports.RankDocument, topN int) ([]ports.RankResult, error) {
	if len(documents) == 0 {
		return nil, nil
	}

	texts := make([]string, len(documents))
	for i, doc := range documents {
		texts[i] = doc.Text
	}
	payload := map[string]interface{}{
		"model":     c.cfg.RerankModel,
		"query":     query,
		"documents": texts,
		"top_n":     topN,
	}
	var out struct {
		Results []struct {
			Index          int     `json:"index"`
			RelevanceScore float64 `json:"relevance_score"`
		} `json:"results"`
	}
	if err := c.postJSON(ctx, "/v1/rerank", payload, &out); err != nil {
		return nil, err
	}

	results := make([]ports.RankResult, 0, len(out.Results))
	for rank, r := range out.Results {
		if r.Index < 0 || r.Index >= len(documents) {
			return nil, fmt.Errorf("rerank API returned out-of-range document index %d", r.Index)
		}
		results = append(results, ports.RankResult{
			ID:             documents[r.Index].ID,
			RelevanceScore: r.RelevanceScore,
			Rank:           rank + 1,
		})
	}
	return results, nil
}

// preview truncates a response body for logs and error messages.
func preview(body []byte, limit int) string {
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
