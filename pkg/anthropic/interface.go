package anthropic

import "context"

// IAnthropic defines the interface for the Messages API client.
// Implementations are safe for concurrent use.
type IAnthropic interface {
	// CreateMessage sends a message creation request to the Messages API
	CreateMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error)

	// Model returns the model being used
	Model() string
}

var _ IAnthropic = (*Client)(nil)
