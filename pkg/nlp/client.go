package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
	"github.com/meetinglab/meeting-insights/internal/infrastructure/cache"
	"github.com/meetinglab/meeting-insights/pkg/config"
)

const scoreCacheTTL = 15 * time.Minute

// Client is a minimal HTTP client for the NLP sidecar, which hosts the
// sentence segmentation, named-entity recognition, polarity scoring, and
// summarization models. It satisfies the analytics collaborator
// interfaces and summary.Summarizer.
type Client struct {
	baseURL string
	client  *http.Client
	retries uint64
	scores  *cache.MemoryStore
}

// NewClient creates an NLP client from config. Pass nil to fall back to
// environment variables.
func NewClient(cfg *config.NLPConfig) *Client {
	var base string
	var timeout time.Duration
	var retries uint64

	if cfg != nil {
		base = cfg.BaseURL
		timeout = cfg.Timeout
		retries = uint64(cfg.MaxRetries)
	}
	if base == "" {
		base = os.Getenv("NLP_SERVICE_URL")
		if base == "" {
			base = "http://localhost:9090"
		}
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if retries == 0 {
		retries = 3
	}

	return &Client{
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
		retries: retries,
		scores:  cache.NewMemoryStore(),
	}
}

type textRequest struct {
	Text string `json:"text"`
}

type sentencesResponse struct {
	Sentences []string `json:"sentences"`
}

type entitiesResponse struct {
	Entities []entities.Entity `json:"entities"`
}

type summarizeRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length"`
	MinLength int    `json:"min_length"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// Sentences splits text into trimmed sentences in document order.
func (c *Client) Sentences(ctx context.Context, text string) ([]string, error) {
	var out sentencesResponse
	if err := c.post(ctx, "/v1/sentences", textRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return out.Sentences, nil
}

// Entities returns named entities found in text.
func (c *Client) Entities(ctx context.Context, text string) ([]entities.Entity, error) {
	var out entitiesResponse
	if err := c.post(ctx, "/v1/entities", textRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return out.Entities, nil
}

// Score returns the polarity score of text. Scores are memoized since
// speaker and overall analyses revisit the same segment text.
func (c *Client) Score(ctx context.Context, text string) (entities.PolarityScore, error) {
	if cached, ok := c.scores.Get(text); ok {
		var out entities.PolarityScore
		if err := json.Unmarshal(cached, &out); err == nil {
			return out, nil
		}
	}

	var out entities.PolarityScore
	if err := c.post(ctx, "/v1/polarity", textRequest{Text: text}, &out); err != nil {
		return entities.PolarityScore{}, err
	}

	if encoded, err := json.Marshal(out); err == nil {
		c.scores.Set(text, encoded, scoreCacheTTL)
	}
	return out, nil
}

// Summarize returns an abstractive summary of text.
func (c *Client) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	var out summarizeResponse
	req := summarizeRequest{Text: text, MaxLength: maxLength, MinLength: minLength}
	if err := c.post(ctx, "/v1/summary", req, &out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

// post sends a JSON request and decodes the JSON response, retrying
// transient failures (network errors and 5xx) with exponential backoff.
func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("nlp service returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			b, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("nlp service returned status %d: %s", resp.StatusCode, string(b)))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode nlp response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retries), ctx)
	return backoff.Retry(operation, policy)
}
