package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// ErrNoAPIKey is returned when summarization is requested without an
// API key configured.
var ErrNoAPIKey = errors.New("APIキーが設定されていません")

// Client produces a summary for a prepared prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type openAIClient struct {
	http   *resty.Client
	model  string
	logger zerolog.Logger
}

// OpenAIConfig holds the chat-completions endpoint settings. BaseURL
// may point at any OpenAI-compatible server.
type OpenAIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func NewOpenAIClient(cfg OpenAIConfig, logger zerolog.Logger) Client {
	hc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	if cfg.APIKey == "" {
		return &openAIClient{http: nil, model: cfg.Model, logger: logger}
	}
	return &openAIClient{http: hc, model: cfg.Model, logger: logger}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *openAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.http == nil {
		return "", ErrNoAPIKey
	}

	body := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   1500,
		Temperature: 0.7,
	}

	var out chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		c.logger.Error().Err(err).Msg("chat completion request failed")
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		c.logger.Warn().Int("status", resp.StatusCode()).Str("error", msg).Msg("chat completion error")
		return "", fmt.Errorf("chat completion: status %d: %s", resp.StatusCode(), msg)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("chat completion: empty choices")
	}
	return out.Choices[0].Message.Content, nil
}
