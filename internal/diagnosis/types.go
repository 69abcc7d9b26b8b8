package diagnosis

import "plant-care-assistant/internal/model"

// AnalyzeInput is the input for a plant image analysis.
type AnalyzeInput struct {
	ImageData      []byte // raw image bytes
	MediaType      string // e.g. "image/jpeg"
	ImageReference string // opaque reference stored with the history entry
}

// AnalyzeOutput is the result of a committed analysis.
type AnalyzeOutput struct {
	Profile    model.ConditionProfile
	Entry      model.HistoryEntry
	ExactMatch bool // false when the fallback tag was substituted
	Cached     bool // true when served from the classification cache
}
