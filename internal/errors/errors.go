package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// As re-exports the standard library helper so callers need only one errors
// import.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Is re-exports the standard library helper.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Input gate errors (GATE-001 to GATE-099)
	ErrCodeGateEmptyInput ErrorCode = "GATE-001"
	ErrCodeGateTooVague   ErrorCode = "GATE-002"

	// Provider errors (PROVIDER-001 to PROVIDER-099)
	ErrCodeProviderConfig    ErrorCode = "PROVIDER-001"
	ErrCodeProviderAuth      ErrorCode = "PROVIDER-002"
	ErrCodeProviderAPI       ErrorCode = "PROVIDER-003"
	ErrCodeProviderRateLimit ErrorCode = "PROVIDER-004"
	ErrCodeProviderTimeout   ErrorCode = "PROVIDER-005"
	ErrCodeProviderEmpty     ErrorCode = "PROVIDER-006"

	// Plan errors (PLAN-001 to PLAN-099)
	ErrCodePlanUnparseable ErrorCode = "PLAN-001"
	ErrCodePlanInvalid     ErrorCode = "PLAN-002"
	ErrCodePlanRefused     ErrorCode = "PLAN-003"
	ErrCodePlanExhausted   ErrorCode = "PLAN-004"

	// Chat errors (CHAT-001 to CHAT-099)
	ErrCodeChatUnparseable ErrorCode = "CHAT-001"

	// Report rendering errors (RENDER-001 to RENDER-099)
	ErrCodeRenderTemplate ErrorCode = "RENDER-001"
	ErrCodeRenderPDF      ErrorCode = "RENDER-002"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigNotFound ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG-002"
)

// PlanFlowError represents an enhanced error with code, suggestions, and cause
type PlanFlowError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *PlanFlowError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PlanFlowError) Unwrap() error {
	return e.Cause
}

// New creates a new PlanFlowError
func New(code ErrorCode, message string) *PlanFlowError {
	return &PlanFlowError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PlanFlowError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PlanFlowError {
	return &PlanFlowError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PlanFlowError) WithSuggestion(suggestion string) *PlanFlowError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PlanFlowError) WithSuggestions(suggestions ...string) *PlanFlowError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// IsCategory reports whether the error code belongs to the given category
// prefix (e.g. "GATE", "PROVIDER")
func (e *PlanFlowError) IsCategory(prefix string) bool {
	return strings.HasPrefix(string(e.Code), prefix+"-")
}

// Common error constructors for frequently used errors

// NewInputTooVagueError creates the user-facing input gate rejection.
// The suggestions carry the two concrete example prompts shown to the user.
func NewInputTooVagueError() *PlanFlowError {
	return New(ErrCodeGateTooVague, "I need a little more detail to plan from. Please describe the project you want to build.").
		WithSuggestion("Try: 'Build a fitness tracking app in 2 months'").
		WithSuggestion("Try: 'Create an online store for handmade jewelry with a team of 3'")
}

// NewProviderAPIError creates a generation service API error
func NewProviderAPIError(model string, cause error) *PlanFlowError {
	return Wrap(ErrCodeProviderAPI, fmt.Sprintf("generation request failed for model: %s", model), cause).
		WithSuggestion("Check if the generation service is reachable").
		WithSuggestion("Verify PLANFLOW_API_KEY is set and valid")
}

// NewProviderRateLimitError creates a rate limit error
func NewProviderRateLimitError(model string, retryAfter string) *PlanFlowError {
	msg := fmt.Sprintf("rate limit exceeded for model: %s", model)
	if retryAfter != "" {
		msg += fmt.Sprintf(" (retry after: %s)", retryAfter)
	}

	return New(ErrCodeProviderRateLimit, msg).
		WithSuggestion("The fallback chain will try the next model automatically")
}

// NewPlanInvalidError creates a plan shape-validation error naming the field path
func NewPlanInvalidError(fieldPath string, detail string) *PlanFlowError {
	return New(ErrCodePlanInvalid, fmt.Sprintf("invalid plan: %s: %s", fieldPath, detail))
}

// NewRenderError creates a terminal PDF rendering error
func NewRenderError(cause error) *PlanFlowError {
	return Wrap(ErrCodeRenderPDF, "failed to render the PDF report", cause).
		WithSuggestion("Check that the plan validates before rendering")
}
