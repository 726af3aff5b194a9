package plan

import (
	"encoding/json"

	"github.com/planflow/planflow/internal/errors"
	"github.com/planflow/planflow/internal/provider"
)

// modelRefusal is the error object a model returns when its prompt-level
// validation decides the conversation holds no plannable project.
type modelRefusal struct {
	Error string `json:"error"`
}

// Decode parses a model completion into a validated ProjectPlan. It tolerates
// markdown-fenced JSON, detects prompt-level refusals, and runs the full
// shape validation. Every failure is a recoverable attempt failure for the
// fallback chain.
func Decode(content string) (*ProjectPlan, error) {
	raw := content
	var p ProjectPlan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		raw = provider.ExtractJSON(content)
		if raw == "" {
			return nil, errors.Wrap(errors.ErrCodePlanUnparseable, "completion contains no JSON object", err)
		}
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, errors.Wrap(errors.ErrCodePlanUnparseable, "completion is not valid JSON", err)
		}
	}

	var refusal modelRefusal
	if err := json.Unmarshal([]byte(raw), &refusal); err == nil && refusal.Error != "" {
		return nil, errors.New(errors.ErrCodePlanRefused, refusal.Error)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}
