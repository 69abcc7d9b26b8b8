package model

// Chat turn roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatTurn is one message in the session-scoped advice conversation.
// The transcript is append-only and never persisted.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
