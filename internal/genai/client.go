package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTextBaseURL = "https://generativelanguage.googleapis.com"
	defaultLocation    = "us-central1"
	defaultTimeout     = 120 * time.Second

	defaultMaxOutputTokens = 500
)

// textModels is the fallback order for text generation. A later entry is only
// tried when the previous model is missing or unavailable; any other failure
// stops the walk immediately. The order is observable behavior under quota and
// model-version changes, so keep it stable.
var textModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
	"gemini-1.5-pro",
	"gemini-1.0-pro",
}

type Client struct {
	creds         *Credentials
	httpClient    *http.Client
	textBaseURL   string
	vertexBaseURL string
	location      string
	imageDir      string
	models        []string
}

type Option func(*Client)

// WithTextBaseURL overrides the generative-language endpoint, mainly for tests.
func WithTextBaseURL(url string) Option {
	return func(c *Client) {
		c.textBaseURL = strings.TrimSuffix(url, "/")
	}
}

// WithVertexBaseURL overrides the Vertex prediction endpoint, mainly for tests.
func WithVertexBaseURL(url string) Option {
	return func(c *Client) {
		c.vertexBaseURL = strings.TrimSuffix(url, "/")
	}
}

func WithModels(models ...string) Option {
	return func(c *Client) {
		c.models = models
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(creds *Credentials, location, imageDir string, opts ...Option) *Client {
	if location == "" {
		location = defaultLocation
	}

	c := &Client{
		creds:       creds,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		textBaseURL: defaultTextBaseURL,
		location:    location,
		imageDir:    imageDir,
		models:      textModels,
	}
	c.vertexBaseURL = fmt.Sprintf("https://%s-aiplatform.googleapis.com", location)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error,omitempty"`
}

type candidate struct {
	Content contentResponse `json:"content"`
}

type contentResponse struct {
	Parts []partResponse `json:"parts"`
}

type partResponse struct {
	Text string `json:"text,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// APICallError is a failed call to the remote generation service.
type APICallError struct {
	Model      string
	HTTPStatus int
	Status     string
	Message    string
}

func (e *APICallError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("model %s: API returned %s (%d): %s", e.Model, e.Status, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("model %s: API returned status %d: %s", e.Model, e.HTTPStatus, e.Message)
}

// isModelUnavailable reports whether the failure means "this model is missing
// or not serving", the only class of error that advances the fallback walk.
func isModelUnavailable(err error) bool {
	var apiErr *APICallError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.HTTPStatus {
	case http.StatusNotFound, http.StatusServiceUnavailable:
		return true
	}
	switch apiErr.Status {
	case "NOT_FOUND", "UNAVAILABLE":
		return true
	}
	return false
}

// GenerateText walks the model fallback list in order and returns the first
// successful generation. No retries beyond the fallback, no backoff.
func (c *Client) GenerateText(ctx context.Context, prompt string, maxOutputTokens int) (string, error) {
	if maxOutputTokens <= 0 {
		maxOutputTokens = defaultMaxOutputTokens
	}

	var lastErr error
	for _, model := range c.models {
		text, err := c.generateWithModel(ctx, model, prompt, maxOutputTokens)
		if err == nil {
			return text, nil
		}
		if !isModelUnavailable(err) {
			return "", err
		}
		slog.Debug("model unavailable, trying next", "model", model, "error", err)
		lastErr = err
	}

	if lastErr == nil {
		return "", fmt.Errorf("no text models configured")
	}
	return "", fmt.Errorf("all text models exhausted: %w", lastErr)
}

func (c *Client) generateWithModel(ctx context.Context, model, prompt string, maxOutputTokens int) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			MaxOutputTokens: maxOutputTokens,
		},
	}

	jsonBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.textBaseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if err := c.authorize(httpReq); err != nil {
		return "", err
	}

	slog.Debug("calling text generation", "model", model, "prompt_length", len(prompt))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var genResp geminiResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", &APICallError{Model: model, HTTPStatus: resp.StatusCode, Message: string(body)}
		}
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || genResp.Error != nil {
		apiCallErr := &APICallError{Model: model, HTTPStatus: resp.StatusCode}
		if genResp.Error != nil {
			apiCallErr.Status = genResp.Error.Status
			apiCallErr.Message = genResp.Error.Message
		} else {
			apiCallErr.Message = string(body)
		}
		return "", apiCallErr
	}

	var sb strings.Builder
	for _, cand := range genResp.Candidates {
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", model)
	}

	slog.Debug("text generated", "model", model, "generated_length", len(text))
	return text, nil
}

// authorize attaches whichever credential the client carries. The credential
// is a per-client parameter, never mutated around individual calls.
func (c *Client) authorize(req *http.Request) error {
	if c.creds == nil {
		return fmt.Errorf("no credentials configured")
	}

	if c.creds.TokenSource != nil {
		token, err := c.creds.TokenSource.Token()
		if err != nil {
			return fmt.Errorf("fetch access token: %w", err)
		}
		token.SetAuthHeader(req)
		return nil
	}

	if c.creds.APIKey != "" {
		req.Header.Set("x-goog-api-key", c.creds.APIKey)
		return nil
	}

	return fmt.Errorf("no credentials configured")
}
