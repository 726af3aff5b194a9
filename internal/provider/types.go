package provider

import "time"

// Message represents a single message in a conversation
type Message struct {
	// Role is who sent the message: "user", "assistant", or "system"
	Role string `json:"role"`

	// Content is the message text
	Content string `json:"content"`
}

// GenerateRequest contains all parameters for generating a response
type GenerateRequest struct {
	// Model is the model identifier to generate with
	Model string `json:"model"`

	// Messages is the ordered conversation, system prompt first
	Messages []Message `json:"messages"`

	// Temperature controls randomness (0.0 = deterministic)
	Temperature float64 `json:"temperature,omitempty"`

	// MaxTokens limits the maximum response length.
	// Set to 0 to use the service default.
	MaxTokens int `json:"max_tokens,omitempty"`

	// JSONObject requests a JSON-object-shaped completion via the service's
	// response-format hint. The hint does not guarantee parseable output.
	JSONObject bool `json:"-"`
}

// GenerateResponse contains the model's response
type GenerateResponse struct {
	// Content is the generated text
	Content string `json:"content"`

	// Model is the model that actually generated the response
	Model string `json:"model"`

	// TokensUsed is the total tokens consumed (input + output)
	TokensUsed int `json:"tokens_used"`

	// Latency is how long the generation took
	Latency time.Duration `json:"latency"`

	// FinishReason explains why generation stopped
	FinishReason string `json:"finish_reason"`
}
