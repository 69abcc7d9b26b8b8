package repository

import (
	"context"

	"plant-care-assistant/internal/model"
)

// HistoryRepository persists the diagnosis history snapshot.
type HistoryRepository interface {
	// Load reads the persisted snapshot. A missing snapshot returns (nil, nil).
	Load(ctx context.Context) ([]model.HistoryEntry, error)

	// Save replaces the persisted snapshot with the given sequence.
	Save(ctx context.Context, entries []model.HistoryEntry) error

	// Clear deletes the persisted snapshot key entirely.
	Clear(ctx context.Context) error
}
