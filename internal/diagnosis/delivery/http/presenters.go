package http

import (
	"plant-care-assistant/internal/diagnosis"
	"plant-care-assistant/internal/model"
	"plant-care-assistant/pkg/response"
)

// --- Request DTOs ---

type analyzeReq struct {
	imageData []byte
	mediaType string
	fileName  string
}

func (r analyzeReq) toInput() diagnosis.AnalyzeInput {
	return diagnosis.AnalyzeInput{
		ImageData:      r.imageData,
		MediaType:      r.mediaType,
		ImageReference: r.fileName,
	}
}

// --- Response DTOs ---

type analyzeResp struct {
	Diagnosis  model.ConditionProfile `json:"diagnosis"`
	EntryID    int64                  `json:"entry_id"`
	ExactMatch bool                   `json:"exact_match"`
	Cached     bool                   `json:"cached"`
}

func newAnalyzeResp(out diagnosis.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Diagnosis:  out.Profile,
		EntryID:    out.Entry.ID,
		ExactMatch: out.ExactMatch,
		Cached:     out.Cached,
	}
}

type historyItem struct {
	ID             int64                  `json:"id"`
	Timestamp      response.DateTime      `json:"timestamp"`
	Condition      model.ConditionProfile `json:"diagnosis"`
	ImageReference string                 `json:"image_url"`
}

type historyResp struct {
	Entries []historyItem `json:"entries"`
	Count   int           `json:"count"`
}

func newHistoryResp(entries []model.HistoryEntry) historyResp {
	items := make([]historyItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, historyItem{
			ID:             e.ID,
			Timestamp:      response.DateTime(e.Timestamp),
			Condition:      e.Condition,
			ImageReference: e.ImageReference,
		})
	}
	return historyResp{Entries: items, Count: len(items)}
}
