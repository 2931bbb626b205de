package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

const defaultTimeout = 20 * time.Second

// ErrNotConfigured is returned when no API key is set. The consultation
// orchestrator treats it like any other upstream failure and falls back.
var ErrNotConfigured = errors.New("llm: api key not configured")

const systemPrompt = "You are a supportive wellness advisor for adolescents, covering mental wellbeing and " +
	"physical fitness. Give warm, practical, non-judgmental suggestions in a few short paragraphs. " +
	"Never give medical diagnoses or prescribe medication; for serious concerns, gently suggest " +
	"talking to a trusted adult or professional."

// Client talks to a GLM-style chat-completions endpoint. It implements
// ports.AdviceGenerator.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	log     zerolog.Logger
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate asks the upstream model for advice on one consultation query.
func (c *Client) Generate(ctx context.Context, consultationType domain.ConsultationType, query string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt + typeHint(consultationType)},
			{Role: "user", Content: query},
		},
		Temperature: 0.7,
		MaxTokens:   512,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("llm: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llm: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("llm: upstream status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("llm: decode response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("llm: upstream error %s: %s", out.Error.Code, out.Error.Message)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", errors.New("llm: empty completion")
	}

	c.log.Debug().
		Dur("latency", time.Since(started)).
		Str("model", c.model).
		Msg("completion received")

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func typeHint(t domain.ConsultationType) string {
	switch t {
	case domain.ConsultSportsAdvice:
		return " Focus this answer on training, exercise habits, and physical fitness."
	case domain.ConsultComprehensive:
		return " Cover both mental wellbeing and physical fitness in this answer."
	default:
		return " Focus this answer on mental and emotional wellbeing."
	}
}
