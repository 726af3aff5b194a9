package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planflow/planflow/internal/errors"
)

func TestGroqClient_Generate_Success(t *testing.T) {
	var captured chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		resp := chatCompletionResponse{
			Model: "llama-3.3-70b-versatile",
			Choices: []chatChoice{
				{Message: Message{Role: "assistant", Content: `{"projectName":"Test"}`}, FinishReason: "stop"},
			},
			Usage: chatUsage{TotalTokens: 42},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := NewGroqClient("test-key", WithBaseURL(server.URL))

	resp, err := client.Generate(context.Background(), &GenerateRequest{
		Model:       "llama-3.3-70b-versatile",
		Messages:    []Message{{Role: "system", Content: "plan"}, {Role: "user", Content: "build an app"}},
		Temperature: 0.3,
		JSONObject:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"projectName":"Test"}`, resp.Content)
	assert.Equal(t, 42, resp.TokensUsed)
	assert.Equal(t, "stop", resp.FinishReason)

	// The wire request must carry the model, temperature, and JSON hint
	assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
	assert.InDelta(t, 0.3, captured.Temperature, 1e-9)
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
}

func TestGroqClient_Generate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "20")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGroqClient("test-key", WithBaseURL(server.URL))

	_, err := client.Generate(context.Background(), &GenerateRequest{Model: "llama-3.3-70b-versatile"})
	require.Error(t, err)

	var pfErr *errors.PlanFlowError
	require.ErrorAs(t, err, &pfErr)
	assert.Equal(t, errors.ErrCodeProviderRateLimit, pfErr.Code)
}

func TestGroqClient_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"model not found","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	client := NewGroqClient("test-key", WithBaseURL(server.URL))

	_, err := client.Generate(context.Background(), &GenerateRequest{Model: "bogus-model"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestGroqClient_Generate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model":"llama-3.3-70b-versatile","choices":[]}`))
	}))
	defer server.Close()

	client := NewGroqClient("test-key", WithBaseURL(server.URL))

	_, err := client.Generate(context.Background(), &GenerateRequest{Model: "llama-3.3-70b-versatile"})
	require.Error(t, err)

	var pfErr *errors.PlanFlowError
	require.ErrorAs(t, err, &pfErr)
	assert.Equal(t, errors.ErrCodeProviderEmpty, pfErr.Code)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bare object",
			content: `{"a":1}`,
			want:    `{"a":1}`,
		},
		{
			name:    "markdown fenced",
			content: "Here is the plan:\n```json\n{\"a\":1}\n```\n",
			want:    `{"a":1}`,
		},
		{
			name:    "fenced without language tag",
			content: "```\n{\"a\":1}\n```",
			want:    `{"a":1}`,
		},
		{
			name:    "object embedded in prose",
			content: `Sure! {"a":{"b":2}} Hope that helps.`,
			want:    `{"a":{"b":2}}`,
		},
		{
			name:    "no object",
			content: "I cannot help with that.",
			want:    "",
		},
		{
			name:    "unbalanced braces",
			content: `{"a":1`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.content); got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
