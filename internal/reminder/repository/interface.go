package repository

import (
	"context"

	"plant-care-assistant/internal/model"
)

// Repository persists the full reminder collection as one snapshot.
type Repository interface {
	Load(ctx context.Context) ([]model.Reminder, error)
	Save(ctx context.Context, reminders []model.Reminder) error
	Clear(ctx context.Context) error
}
