// Package assist wraps an OpenAI-compatible chat-completions endpoint for
// the two optional helpers: title suggestion and categorization. Without a
// credential the client is a no-op and never touches the network.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/skarun/taskpad/internal/model"
)

const (
	DefaultBaseURL = "https://api.perplexity.ai"
	DefaultModel   = "sonar-pro"
	DefaultTimeout = 30 * time.Second
)

var ErrNoChoices = errors.New("assist: response contains no choices")

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(cfg Config, logger *log.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.WithPrefix("assist"),
	}
}

// RequestContext returns a context bounded by the configured request
// timeout. Once issued, a request runs to completion or to this deadline;
// there is no user-driven cancellation.
func (c *Client) RequestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.cfg.Timeout)
}

// Enabled reports whether a credential was configured. Checked once at
// startup; a disabled client stays disabled for the life of the process.
func (c *Client) Enabled() bool {
	return strings.TrimSpace(c.cfg.APIKey) != ""
}

// SuggestTitle asks for a short actionable title for the given description.
// Any failure is logged and reported back as an empty suggestion.
func (c *Client) SuggestTitle(ctx context.Context, description string) (string, error) {
	if !c.Enabled() {
		return "", nil
	}
	prompt := "You are a helpful assistant that suggests short, clear, actionable todo titles.\n" +
		"Task description: " + description + "\n" +
		"Return a 3-6 word title."
	title, err := c.complete(ctx, prompt, 30, 0.3)
	if err != nil {
		c.logger.Warn("title suggestion failed", "err", err)
		return "", err
	}
	return title, nil
}

// Categorize asks for one category name and resolves the answer to the first
// enum member the lowercased reply contains, defaulting to other.
func (c *Client) Categorize(ctx context.Context, title, description string) (model.Category, error) {
	if !c.Enabled() {
		return "", nil
	}
	prompt := "You are an assistant that assigns a concise category to a todo item (work, personal, shopping, errands, learning, other).\n" +
		"Title: " + title + "\n" +
		"Description: " + description + "\n" +
		"Only return one of the categories: work, personal, shopping, errands, learning, other."
	answer, err := c.complete(ctx, prompt, 10, 0)
	if err != nil {
		c.logger.Warn("categorization failed", "err", err)
		return "", err
	}
	return model.MatchCategory(answer), nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if c.cfg.MaxTokens > 0 {
		maxTokens = c.cfg.MaxTokens
	}
	if c.cfg.Temperature > 0 {
		temperature = c.cfg.Temperature
	}
	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("assist: encode request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assist: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assist: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("assist: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("assist: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", ErrNoChoices
	}
	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}
