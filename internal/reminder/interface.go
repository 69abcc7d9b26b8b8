package reminder

import (
	"context"

	"plant-care-assistant/internal/model"
)

// UseCase defines the business logic interface for the reminder domain.
type UseCase interface {
	// Add validates and appends a reminder, persisting the updated
	// collection. All three fields are required.
	Add(ctx context.Context, sc model.Scope, input AddInput) (AddOutput, error)

	// Delete removes the reminder with the given id. Unknown ids are a no-op.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// List returns the reminders in insertion order.
	List(ctx context.Context) []model.Reminder

	// ClearAll removes every reminder and deletes the persisted snapshot.
	ClearAll(ctx context.Context) error

	// Load restores the persisted reminder snapshot. Absence of a snapshot
	// is not an error.
	Load(ctx context.Context) error
}
