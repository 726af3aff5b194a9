// Package conversation defines the chat history types shared by the chat and
// planning pipelines.
package conversation

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Turn is a single message in a conversation. Turns are immutable once
// received.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// History is an ordered conversation, oldest turn first. It is received per
// request and discarded after producing a result.
type History struct {
	Messages []Turn `json:"messages"`
}

// Len returns the number of turns in the history.
func (h History) Len() int {
	return len(h.Messages)
}

// LatestUserText returns the content of the most recent user-authored turn,
// or the empty string if the history contains none.
func (h History) LatestUserText() string {
	for i := len(h.Messages) - 1; i >= 0; i-- {
		if h.Messages[i].Role == RoleUser {
			return h.Messages[i].Content
		}
	}
	return ""
}

// IsValidRole reports whether the role is one of the accepted values.
func IsValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}
