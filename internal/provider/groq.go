package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/planflow/planflow/internal/errors"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// GroqClient implements the Client interface against Groq's OpenAI-compatible
// chat-completions API.
type GroqClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Groq API request/response structures (OpenAI-compatible wire format)
type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
	Error   *apiError    `json:"error,omitempty"`
}

type chatChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// Option configures a GroqClient
type Option func(*GroqClient)

// WithBaseURL overrides the API base URL (used by tests and self-hosted
// gateways)
func WithBaseURL(url string) Option {
	return func(c *GroqClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *GroqClient) {
		c.client = client
	}
}

// NewGroqClient creates a new client for the Groq chat-completions API
func NewGroqClient(apiKey string, opts ...Option) *GroqClient {
	c := &GroqClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Generate implements Client.Generate
func (c *GroqClient) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	startTime := time.Now()

	apiReq := chatCompletionRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONObject {
		apiReq.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	reqBody, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.NewProviderAPIError(req.Model, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode == http.StatusTooManyRequests {
		return nil, errors.NewProviderRateLimitError(req.Model, httpResp.Header.Get("Retry-After"))
	}

	if httpResp.StatusCode != http.StatusOK {
		var errResp chatCompletionResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return nil, errors.NewProviderAPIError(req.Model, fmt.Errorf("api error: %s", errResp.Error.Message))
		}
		return nil, errors.NewProviderAPIError(req.Model, fmt.Errorf("http error %d: %s", httpResp.StatusCode, string(respBody)))
	}

	var apiResp chatCompletionResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, errors.Wrap(errors.ErrCodeProviderAPI, "unmarshal response", err)
	}

	if len(apiResp.Choices) == 0 {
		return nil, errors.New(errors.ErrCodeProviderEmpty, fmt.Sprintf("model %s returned no choices", req.Model))
	}

	return &GenerateResponse{
		Content:      apiResp.Choices[0].Message.Content,
		Model:        apiResp.Model,
		TokensUsed:   apiResp.Usage.TotalTokens,
		Latency:      time.Since(startTime),
		FinishReason: apiResp.Choices[0].FinishReason,
	}, nil
}
