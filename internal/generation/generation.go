// Package generation wraps the hosted text-generation endpoint behind a small
// client with bounded timeouts and typed failures. One call in, one
// completion out; retry policy is left to the caller.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Nucleus sampling parameter sent with every request.
const topP = 0.9

// retryAfterFallback is used when a warm-up response carries no estimate.
const retryAfterFallback = 30

// Config holds the generation client settings, read-only after construction.
type Config struct {
	APIKey      string        // bearer credential; empty disables generation
	Model       string        // model identifier appended to the base URL
	BaseURL     string        // inference endpoint base URL
	Timeout     time.Duration // per-request timeout
	MaxLength   int           // hard ceiling on generated tokens
	Temperature float64       // default sampling temperature
}

// Options carries per-call overrides. Zero values fall back to the
// configured defaults.
type Options struct {
	MaxLength   int
	Temperature float64
}

// Client issues synchronous generation requests.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a generation client from the given configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Configured reports whether a credential is present.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.cfg.Model
}

// MaxLength returns the configured generation ceiling.
func (c *Client) MaxLength() int {
	return c.cfg.MaxLength
}

// request is the inference API request body.
type request struct {
	Inputs     string       `json:"inputs"`
	Parameters parameters   `json:"parameters"`
	Options    extraOptions `json:"options"`
}

type parameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	DoSample       bool    `json:"do_sample"`
	TopP           float64 `json:"top_p"`
	ReturnFullText bool    `json:"return_full_text"`
}

type extraOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// completion is one element of a successful response. GeneratedText is a
// pointer so an absent field can be told apart from an empty string.
type completion struct {
	GeneratedText *string `json:"generated_text"`
}

// Generate sends one prompt to the inference endpoint and returns the
// generated continuation. The effective max length never exceeds the
// configured ceiling regardless of the requested value. A warming-up model
// yields a *NotReadyError; the client never retries on its own.
//
// If the response carries no generated-text field the original prompt is
// returned as a documented fallback; callers must not read that as "no
// change needed".
func (c *Client) Generate(ctx context.Context, prompt string, opts *Options) (string, error) {
	if !c.Configured() {
		return "", &ConfigError{Message: "API key not configured"}
	}
	if opts == nil {
		opts = &Options{}
	}

	maxLength := opts.MaxLength
	if maxLength <= 0 {
		maxLength = c.cfg.MaxLength
	}
	if maxLength > c.cfg.MaxLength {
		maxLength = c.cfg.MaxLength
	}

	temperature := opts.Temperature
	if temperature == 0 {
		temperature = c.cfg.Temperature
	}

	body, err := json.Marshal(request{
		Inputs: prompt,
		Parameters: parameters{
			MaxNewTokens:   maxLength,
			Temperature:    temperature,
			DoSample:       true,
			TopP:           topP,
			ReturnFullText: false,
		},
		Options: extraOptions{WaitForModel: true},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + c.cfg.Model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", &NotReadyError{RetryAfter: estimatedWait(resp)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &StatusError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(msg)),
		}
	}

	var completions []completion
	if err := json.NewDecoder(resp.Body).Decode(&completions); err != nil {
		return "", &StatusError{
			StatusCode: resp.StatusCode,
			Message:    "malformed response body: " + err.Error(),
		}
	}

	if len(completions) == 0 || completions[0].GeneratedText == nil {
		return prompt, nil
	}
	return *completions[0].GeneratedText, nil
}

// estimatedWait reads the model warm-up estimate from the response,
// defaulting when absent or unparseable.
func estimatedWait(resp *http.Response) int {
	if v := resp.Header.Get("estimated_time"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			return secs
		}
	}
	return retryAfterFallback
}
