package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestPlanFlowError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PlanFlowError
		contains []string
	}{
		{
			name:     "code and message",
			err:      New(ErrCodePlanInvalid, "plan is broken"),
			contains: []string{"[PLAN-002]", "plan is broken"},
		},
		{
			name:     "with cause",
			err:      Wrap(ErrCodeProviderAPI, "request failed", stderrors.New("connection refused")),
			contains: []string{"[PROVIDER-003]", "request failed", "connection refused"},
		},
		{
			name:     "with suggestions",
			err:      New(ErrCodeGateTooVague, "too vague").WithSuggestion("Try: 'Build an app'"),
			contains: []string{"Suggestions:", "Try: 'Build an app'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want it to contain %q", msg, want)
				}
			}
		})
	}
}

func TestPlanFlowError_Unwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeRenderPDF, "render failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var pfErr *PlanFlowError
	if !stderrors.As(error(err), &pfErr) {
		t.Error("errors.As should extract *PlanFlowError")
	}
}

func TestPlanFlowError_IsCategory(t *testing.T) {
	err := NewInputTooVagueError()

	if !err.IsCategory("GATE") {
		t.Error("gate rejection should be in the GATE category")
	}
	if err.IsCategory("PROVIDER") {
		t.Error("gate rejection should not be in the PROVIDER category")
	}
}

func TestNewInputTooVagueError_CarriesExamples(t *testing.T) {
	err := NewInputTooVagueError()

	if len(err.Suggestions) != 2 {
		t.Fatalf("expected 2 example prompts, got %d", len(err.Suggestions))
	}
	for _, s := range err.Suggestions {
		if !strings.HasPrefix(s, "Try: ") {
			t.Errorf("suggestion %q should be a concrete example prompt", s)
		}
	}
}
