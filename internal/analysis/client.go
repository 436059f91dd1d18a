package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/legalease/legalease-backend/internal/config"
	"github.com/legalease/legalease-backend/pkg/logger"
)

// Client talks to an OpenAI-compatible chat/completions endpoint (Groq).
type Client struct {
	cfg  config.AnalysisConfig
	http *http.Client
}

func NewClient(cfg config.AnalysisConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "llama-3.3-70b-versatile"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Analyze submits the (truncated) document text and returns the normalized
// structured result.
func (c *Client) Analyze(ctx context.Context, text string) (*Result, error) {
	if len(text) > maxInputChars {
		text = text[:maxInputChars]
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	start := time.Now()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"max_tokens":      c.cfg.MaxTokens,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": "Analyze this legal document:\n\n" + text},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		logger.Errorf("analysis request failed after %dms: %v", time.Since(start).Milliseconds(), err)
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode completion response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, fmt.Errorf("no choices in completion response")
	}

	res, err := ParseResult(cc.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	logger.Debugf("analysis ok: type=%s clauses=%d terms=%d elapsed_ms=%d",
		res.DocumentType, len(res.RiskClauses), len(res.KeyTerms), time.Since(start).Milliseconds())
	return res, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion http error: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("completion endpoint returned %d: %s", resp.StatusCode, string(data))
	}
	return data, nil
}
