// Package kv implements the history repository on the key-value store.
package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"plant-care-assistant/internal/model"
	"plant-care-assistant/pkg/kvstore"
	pkgLog "plant-care-assistant/pkg/log"
)

// HistoryKey is the store key holding the serialized history snapshot.
const HistoryKey = "diagnosis-history"

type implRepository struct {
	l     pkgLog.Logger
	store kvstore.Store
}

// New creates a history repository backed by the given store.
func New(l pkgLog.Logger, store kvstore.Store) *implRepository {
	return &implRepository{l: l, store: store}
}

// Load reads and deserializes the persisted snapshot. A missing key yields
// an empty history without error.
func (r *implRepository) Load(ctx context.Context) ([]model.HistoryEntry, error) {
	raw, found, err := r.store.Get(ctx, HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read history snapshot: %w", err)
	}
	if !found {
		return nil, nil
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode history snapshot: %w", err)
	}
	return entries, nil
}

// Save serializes the sequence and replaces the stored snapshot.
func (r *implRepository) Save(ctx context.Context, entries []model.HistoryEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode history snapshot: %w", err)
	}
	if err := r.store.Set(ctx, HistoryKey, string(raw)); err != nil {
		return fmt.Errorf("failed to write history snapshot: %w", err)
	}
	return nil
}

// Clear deletes the snapshot key entirely rather than storing an empty list.
func (r *implRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, HistoryKey); err != nil {
		return fmt.Errorf("failed to delete history snapshot: %w", err)
	}
	return nil
}
