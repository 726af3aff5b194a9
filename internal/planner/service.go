package planner

import (
	"context"
	"time"

	"github.com/planflow/planflow/internal/conversation"
	"github.com/planflow/planflow/internal/fallback"
	"github.com/planflow/planflow/internal/gate"
	"github.com/planflow/planflow/internal/log"
	"github.com/planflow/planflow/internal/plan"
)

// Planner is the plan-generation pipeline: input gate, model chain, and the
// deterministic fallback builder when every model fails.
type Planner struct {
	gate   gate.Gate
	chain  *Chain
	logger *log.Logger
	now    func() time.Time
}

// New wires a Planner. now may be nil, in which case time.Now is used.
func New(g gate.Gate, chain *Chain, logger *log.Logger, now func() time.Time) *Planner {
	if logger == nil {
		logger = log.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Planner{gate: g, chain: chain, logger: logger, now: now}
}

// GeneratePlan produces a plan for the conversation. The only error it can
// return is an input-gate rejection; once the gate passes, the caller always
// gets a plan, from a model if possible and from the fallback builder
// otherwise.
func (p *Planner) GeneratePlan(ctx context.Context, history conversation.History) (*plan.ProjectPlan, error) {
	if err := p.gate.Check(history); err != nil {
		return nil, err
	}

	now := p.now()
	if result, attempts := p.chain.Generate(ctx, history, now); result != nil {
		p.logger.InfoContext(ctx, "plan generated by model",
			"model", attempts[len(attempts)-1].Model,
			"attempts", len(attempts))
		return result, nil
	}

	text := history.LatestUserText()
	if text == "" {
		text = fallback.DefaultProjectText
	}
	p.logger.WarnContext(ctx, "all models failed, using fallback plan builder")
	return fallback.Build(text, now), nil
}
