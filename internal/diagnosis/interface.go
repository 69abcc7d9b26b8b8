package diagnosis

import (
	"context"

	"plant-care-assistant/internal/model"
)

// UseCase defines the business logic interface for the diagnosis domain.
type UseCase interface {
	// Analyze submits a plant image to the external classifier, resolves the
	// result against the condition taxonomy and commits a history entry.
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)

	// Current returns the committed diagnosis of the session, if any.
	Current(ctx context.Context) *model.ConditionProfile

	// Reset clears the current diagnosis (a new image was selected).
	Reset(ctx context.Context)

	// History returns past diagnoses, most recent first.
	History(ctx context.Context) []model.HistoryEntry

	// ClearHistory empties the history and deletes the persisted snapshot.
	ClearHistory(ctx context.Context) error

	// LoadHistory restores the persisted history snapshot. Absence of a
	// snapshot is not an error.
	LoadHistory(ctx context.Context) error
}
