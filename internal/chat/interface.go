package chat

import (
	"context"

	"plant-care-assistant/internal/model"
)

// UseCase defines the business logic interface for the advice chat domain.
type UseCase interface {
	// Send appends the user's question to the transcript, asks the external
	// assistant and appends its answer. At most one call is outstanding at a
	// time; a submission while busy is rejected.
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)

	// Transcript returns the ordered session transcript.
	Transcript(ctx context.Context) []model.ChatTurn

	// Busy reports whether a chat call is outstanding.
	Busy(ctx context.Context) bool
}
