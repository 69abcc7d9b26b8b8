// Package kv implements the reminder repository on the key-value store.
package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"plant-care-assistant/internal/model"
	"plant-care-assistant/pkg/kvstore"
	pkgLog "plant-care-assistant/pkg/log"
)

// RemindersKey is the store key holding the serialized reminder snapshot.
const RemindersKey = "watering-reminders"

type implRepository struct {
	l     pkgLog.Logger
	store kvstore.Store
}

// New creates a reminder repository backed by the given store.
func New(l pkgLog.Logger, store kvstore.Store) *implRepository {
	return &implRepository{l: l, store: store}
}

// Load reads and deserializes the persisted snapshot. A missing key yields
// an empty collection without error.
func (r *implRepository) Load(ctx context.Context) ([]model.Reminder, error) {
	raw, found, err := r.store.Get(ctx, RemindersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read reminder snapshot: %w", err)
	}
	if !found {
		return nil, nil
	}

	var reminders []model.Reminder
	if err := json.Unmarshal([]byte(raw), &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode reminder snapshot: %w", err)
	}
	return reminders, nil
}

// Save serializes the collection and replaces the stored snapshot.
func (r *implRepository) Save(ctx context.Context, reminders []model.Reminder) error {
	raw, err := json.Marshal(reminders)
	if err != nil {
		return fmt.Errorf("failed to encode reminder snapshot: %w", err)
	}
	if err := r.store.Set(ctx, RemindersKey, string(raw)); err != nil {
		return fmt.Errorf("failed to write reminder snapshot: %w", err)
	}
	return nil
}

// Clear deletes the snapshot key entirely rather than storing an empty list.
func (r *implRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, RemindersKey); err != nil {
		return fmt.Errorf("failed to delete reminder snapshot: %w", err)
	}
	return nil
}
