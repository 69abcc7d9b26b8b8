package model

import "time"

// HistoryEntry is one committed past diagnosis. Entries are immutable after
// creation and only the 20 most recent are retained.
type HistoryEntry struct {
	ID             int64            `json:"id"` // derived from commit time, strictly increasing
	Timestamp      time.Time        `json:"timestamp"`
	Condition      ConditionProfile `json:"diagnosis"`
	ImageReference string           `json:"image_url"` // opaque reference for display
}
