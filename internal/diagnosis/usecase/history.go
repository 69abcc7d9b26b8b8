package usecase

import (
	"context"
	"time"

	"plant-care-assistant/internal/model"
)

// appendHistory prepends a new entry, truncates to the retention bound and
// persists the snapshot write-through. A persistence failure is logged and
// non-fatal: the in-memory sequence stays authoritative for the session.
func (uc *implUseCase) appendHistory(ctx context.Context, profile model.ConditionProfile, imageRef string) model.HistoryEntry {
	uc.historyMu.Lock()
	defer uc.historyMu.Unlock()

	now := time.Now()
	entry := model.HistoryEntry{
		ID:             uc.nextEntryID(now),
		Timestamp:      now,
		Condition:      profile,
		ImageReference: imageRef,
	}

	updated := make([]model.HistoryEntry, 0, len(uc.entries)+1)
	updated = append(updated, entry)
	updated = append(updated, uc.entries...)
	if len(updated) > maxHistoryEntries {
		updated = updated[:maxHistoryEntries]
	}
	uc.entries = updated

	if err := uc.repo.Save(ctx, uc.entries); err != nil {
		uc.l.Errorf(ctx, "appendHistory: failed to persist snapshot (non-fatal): %v", err)
	}

	return entry
}

// History returns a copy of the in-memory sequence, most recent first.
func (uc *implUseCase) History(ctx context.Context) []model.HistoryEntry {
	uc.historyMu.Lock()
	defer uc.historyMu.Unlock()

	out := make([]model.HistoryEntry, len(uc.entries))
	copy(out, uc.entries)
	return out
}

// ClearHistory empties the sequence and deletes the persisted key.
func (uc *implUseCase) ClearHistory(ctx context.Context) error {
	uc.historyMu.Lock()
	defer uc.historyMu.Unlock()

	uc.entries = nil
	if err := uc.repo.Clear(ctx); err != nil {
		uc.l.Errorf(ctx, "ClearHistory: failed to delete snapshot (non-fatal): %v", err)
	}
	return nil
}

// LoadHistory restores the persisted snapshot. Absence or an unreadable
// snapshot both start the session with an empty history.
func (uc *implUseCase) LoadHistory(ctx context.Context) error {
	entries, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "LoadHistory: treating unreadable snapshot as empty: %v", err)
		entries = nil
	}
	if len(entries) > maxHistoryEntries {
		entries = entries[:maxHistoryEntries]
	}

	uc.historyMu.Lock()
	defer uc.historyMu.Unlock()

	uc.entries = entries
	for _, e := range entries {
		if e.ID > uc.lastID {
			uc.lastID = e.ID
		}
	}
	return nil
}
