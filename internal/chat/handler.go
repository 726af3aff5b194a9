// Package chat implements the conversational turn handler that guides a user
// toward a complete project description.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/planflow/planflow/internal/conversation"
	"github.com/planflow/planflow/internal/gate"
	"github.com/planflow/planflow/internal/log"
	"github.com/planflow/planflow/internal/provider"
)

const (
	// DefaultModel handles chat turns. Chat uses a single model, not the
	// plan chain: a degraded reply costs one turn, not a whole plan.
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultTemperature keeps replies conversational.
	DefaultTemperature = 0.7

	// fallbackReply is returned verbatim whenever the model cannot be
	// reached or its output cannot be parsed.
	fallbackReply = "I'm here to help you plan your project! Could you tell me what you'd like to build?"
)

// Result is one chat turn's outcome. Progress is a whole percentage in
// [0, 100]; IsSufficient is true only when the conversation holds enough
// detail to generate a plan.
type Result struct {
	AssistantReply string `json:"assistantReply"`
	Progress       int    `json:"progress"`
	IsSufficient   bool   `json:"isSufficient"`
}

// FallbackResult is the static reply used when the model is unavailable.
func FallbackResult() Result {
	return Result{AssistantReply: fallbackReply, Progress: 0, IsSufficient: false}
}

// Handler runs chat turns against a single model.
type Handler struct {
	client      provider.Client
	model       string
	temperature float64
	logger      *log.Logger
	now         func() time.Time
}

// NewHandler builds a Handler. Empty model, zero temperature, nil logger, and
// nil now all take defaults.
func NewHandler(client provider.Client, model string, temperature float64, logger *log.Logger, now func() time.Time) *Handler {
	if model == "" {
		model = DefaultModel
	}
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	if logger == nil {
		logger = log.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Handler{client: client, model: model, temperature: temperature, logger: logger, now: now}
}

// Handle produces the assistant's next turn. It never returns an error: any
// provider or parse failure degrades to FallbackResult so the conversation
// stays alive.
func (h *Handler) Handle(ctx context.Context, history conversation.History) Result {
	resp, err := h.client.Generate(ctx, &provider.GenerateRequest{
		Model:       h.model,
		Messages:    buildChatMessages(history, h.now()),
		Temperature: h.temperature,
		JSONObject:  true,
	})
	if err != nil {
		h.logger.WithError(err).WarnContext(ctx, "chat model call failed, using static reply")
		return FallbackResult()
	}

	result, err := parseResult(resp.Content)
	if err != nil {
		h.logger.WithError(err).WarnContext(ctx, "chat response unparseable, using static reply",
			"model", resp.Model)
		return FallbackResult()
	}

	return normalize(result, history)
}

func parseResult(content string) (Result, error) {
	var result Result
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		extracted := provider.ExtractJSON(content)
		if err := json.Unmarshal([]byte(extracted), &result); err != nil {
			return Result{}, fmt.Errorf("decoding chat result: %w", err)
		}
	}
	if result.AssistantReply == "" {
		return Result{}, fmt.Errorf("chat result has no assistantReply")
	}
	return result, nil
}

// normalize enforces the progress contract regardless of what the model
// claimed: progress stays in [0, 100], sufficiency requires full progress,
// and a bare greeting is never treated as project input.
func normalize(result Result, history conversation.History) Result {
	if result.Progress < 0 {
		result.Progress = 0
	}
	if result.Progress > 100 {
		result.Progress = 100
	}
	if result.Progress != 100 {
		result.IsSufficient = false
	}
	if gate.IsNoise(history.LatestUserText()) {
		result.Progress = 0
		result.IsSufficient = false
	}
	return result
}

func buildChatMessages(history conversation.History, now time.Time) []provider.Message {
	messages := make([]provider.Message, 0, history.Len()+1)
	messages = append(messages, provider.Message{
		Role:    string(conversation.RoleSystem),
		Content: buildSystemPrompt(now),
	})
	for _, turn := range history.Messages {
		messages = append(messages, provider.Message{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}
	return messages
}
