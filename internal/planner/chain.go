package planner

import (
	"context"
	"time"

	"github.com/planflow/planflow/internal/conversation"
	"github.com/planflow/planflow/internal/log"
	"github.com/planflow/planflow/internal/plan"
	"github.com/planflow/planflow/internal/provider"
)

// DefaultAttemptTimeout bounds each model call in the chain.
const DefaultAttemptTimeout = 30 * time.Second

// Attempt names one model in the fallback chain together with its sampling
// temperature.
type Attempt struct {
	Model       string
	Temperature float64
}

// AttemptResult records the outcome of a single chain attempt. Err is nil for
// the attempt that produced the plan.
type AttemptResult struct {
	Model string
	Err   error
}

// DefaultAttempts is the model chain used when no configuration overrides it.
// Order matters: strongest model first, cheapest last.
func DefaultAttempts() []Attempt {
	return []Attempt{
		{Model: "llama-3.3-70b-versatile", Temperature: 0.3},
		{Model: "llama-3.1-8b-instant", Temperature: 0.2},
		{Model: "gemma2-9b-it", Temperature: 0.2},
	}
}

// Chain tries an ordered list of models until one returns a valid plan.
type Chain struct {
	client   provider.Client
	attempts []Attempt
	timeout  time.Duration
	logger   *log.Logger
}

// NewChain builds a chain over the given client. A nil or empty attempts
// slice falls back to DefaultAttempts, a zero timeout to
// DefaultAttemptTimeout.
func NewChain(client provider.Client, attempts []Attempt, timeout time.Duration, logger *log.Logger) *Chain {
	if len(attempts) == 0 {
		attempts = DefaultAttempts()
	}
	if timeout <= 0 {
		timeout = DefaultAttemptTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Chain{client: client, attempts: attempts, timeout: timeout, logger: logger}
}

// Generate walks the chain in order. The first model whose response decodes
// and validates wins; later models are never called. A nil plan means every
// attempt failed, and the returned results hold one entry per attempt made.
func (c *Chain) Generate(ctx context.Context, history conversation.History, now time.Time) (*plan.ProjectPlan, []AttemptResult) {
	messages := buildPlanMessages(history, now)
	results := make([]AttemptResult, 0, len(c.attempts))

	for _, attempt := range c.attempts {
		p, err := c.tryModel(ctx, attempt, messages)
		if err == nil {
			results = append(results, AttemptResult{Model: attempt.Model})
			return p, results
		}
		results = append(results, AttemptResult{Model: attempt.Model, Err: err})
		c.logger.WithError(err).Warn("plan attempt failed, trying next model",
			"model", attempt.Model)

		if ctx.Err() != nil {
			break
		}
	}
	return nil, results
}

func (c *Chain) tryModel(ctx context.Context, attempt Attempt, messages []provider.Message) (*plan.ProjectPlan, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Generate(attemptCtx, &provider.GenerateRequest{
		Model:       attempt.Model,
		Messages:    messages,
		Temperature: attempt.Temperature,
		JSONObject:  true,
	})
	if err != nil {
		return nil, err
	}

	// Decode errors already carry a PLAN-* code.
	return plan.Decode(resp.Content)
}

func buildPlanMessages(history conversation.History, now time.Time) []provider.Message {
	messages := make([]provider.Message, 0, history.Len()+1)
	messages = append(messages, provider.Message{
		Role:    string(conversation.RoleSystem),
		Content: buildPlanSystemPrompt(now),
	})
	for _, turn := range history.Messages {
		messages = append(messages, provider.Message{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}
	return messages
}
