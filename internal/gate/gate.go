// Package gate implements the rule-based input gate that rejects
// conversational input too sparse or meaningless to plan from, before any
// external generation call is spent on it. The gate is heuristic, not
// exhaustive: false accepts are expected and tolerated.
package gate

import (
	"strings"

	"github.com/planflow/planflow/internal/conversation"
	"github.com/planflow/planflow/internal/errors"
)

// Gate decides whether a conversation is worth a generation attempt.
// Implementations return nil to accept, or a user-facing PlanFlowError to
// reject. The interface exists so a model-assisted strategy can be swapped in
// at configuration time without touching callers.
type Gate interface {
	Check(history conversation.History) error
}

// noiseTokens are greetings and keyboard noise rejected on exact match.
var noiseTokens = map[string]struct{}{
	"hi":          {},
	"hello":       {},
	"hey":         {},
	"yo":          {},
	"sup":         {},
	"how are you": {},
	"test":        {},
	"testing":     {},
	"123":         {},
	"abc":         {},
	"asdf":        {},
	"qwerty":      {},
}

// intentKeywords rescue short single-word input that still signals a project.
var intentKeywords = []string{
	"build", "create", "develop", "make", "design",
	"app", "website", "platform", "system", "project",
	"plan", "launch", "organize", "campaign", "portfolio", "event",
}

const (
	minTextLength       = 5
	minSingleWordLength = 15
)

// RuleGate is the rule-based Gate implementation. Rules are applied in order
// and the first match wins.
type RuleGate struct{}

// NewRuleGate creates the rule-based input gate.
func NewRuleGate() *RuleGate {
	return &RuleGate{}
}

// Check applies the gating rules to the latest user-authored turn. An empty
// history (no user turn at all) is rejected, never raised on.
func (g *RuleGate) Check(history conversation.History) error {
	text := strings.ToLower(strings.TrimSpace(history.LatestUserText()))

	if len(text) < minTextLength {
		return errors.NewInputTooVagueError()
	}

	if IsNoise(text) {
		return errors.NewInputTooVagueError()
	}

	if !strings.ContainsAny(text, " \t\n") && len(text) < minSingleWordLength && !containsIntent(text) {
		return errors.NewInputTooVagueError()
	}

	return nil
}

// IsNoise reports whether the trimmed, lower-cased text exactly matches a
// known greeting/noise token. Exported for the chat handler's local greeting
// guard.
func IsNoise(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	_, ok := noiseTokens[normalized]
	return ok
}

func containsIntent(text string) bool {
	for _, kw := range intentKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
