package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"plant-care-assistant/internal/diagnosis"
	"plant-care-assistant/internal/model"
	"plant-care-assistant/internal/taxonomy"
	"plant-care-assistant/pkg/anthropic"
)

// Analyze runs one image through the classifier and commits the result.
// Analyses are serialized per session: a second call while one is in flight
// is rejected with ErrAnalysisInFlight.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input diagnosis.AnalyzeInput) (diagnosis.AnalyzeOutput, error) {
	if len(input.ImageData) == 0 {
		return diagnosis.AnalyzeOutput{}, diagnosis.ErrNoImage
	}

	uc.analyzeMu.Lock()
	if uc.inFlight {
		uc.analyzeMu.Unlock()
		return diagnosis.AnalyzeOutput{}, diagnosis.ErrAnalysisInFlight
	}
	uc.inFlight = true
	uc.analyzeMu.Unlock()

	defer func() {
		uc.analyzeMu.Lock()
		uc.inFlight = false
		uc.analyzeMu.Unlock()
	}()

	uc.l.Infof(ctx, "Analyze: user=%s image_bytes=%d media_type=%s", sc.UserID, len(input.ImageData), input.MediaType)

	tag, exact, cached, err := uc.classify(ctx, input)
	if err != nil {
		// Transport failure: no diagnosis, no history entry.
		uc.setCurrent(nil)
		return diagnosis.AnalyzeOutput{}, fmt.Errorf("classification failed: %w", err)
	}

	if !exact {
		// Fallback policy telemetry: the user still gets a result, but an
		// unrecognized classification is worth noticing.
		uc.l.Warnf(ctx, "Analyze: unrecognized classification, falling back to %q", taxonomy.FallbackTag)
	}

	profile := taxonomy.ProfileFor(tag)
	uc.setCurrent(&profile)

	entry := uc.appendHistory(ctx, profile, input.ImageReference)

	uc.l.Infof(ctx, "Analyze: committed tag=%s exact=%v cached=%v entry_id=%d", tag, exact, cached, entry.ID)

	return diagnosis.AnalyzeOutput{
		Profile:    profile,
		Entry:      entry,
		ExactMatch: exact,
		Cached:     cached,
	}, nil
}

// classify resolves the condition tag for an image, via the cache or the
// external classifier.
func (uc *implUseCase) classify(ctx context.Context, input diagnosis.AnalyzeInput) (tag model.ConditionTag, exact, cached bool, err error) {
	key := imageDigest(input.ImageData)
	if hit, ok := uc.cache.Get(key); ok {
		return hit, true, true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	mediaType := input.MediaType
	if mediaType == "" {
		mediaType = "image/jpeg"
	}

	req := anthropic.MessageRequest{
		MaxTokens: uc.maxTokens,
		Messages: []anthropic.Message{
			anthropic.ImageTextMessage(
				mediaType,
				base64.StdEncoding.EncodeToString(input.ImageData),
				anthropic.PlantAnalysisPrompt,
			),
		},
	}

	resp, err := uc.llm.CreateMessage(ctx, req)
	if err != nil {
		return "", false, false, err
	}

	// A response without any text block is a malformed reply and fails the
	// workflow. Empty or unrecognized text coerces to the fallback tag.
	text, ok := resp.FirstTextBlock()
	if !ok {
		return "", false, false, diagnosis.ErrEmptyResponse
	}

	tag, exact = taxonomy.Resolve(text)
	if exact {
		uc.cache.Add(key, tag)
	}
	return tag, exact, false, nil
}

// Current returns the committed diagnosis of the session, if any.
func (uc *implUseCase) Current(ctx context.Context) *model.ConditionProfile {
	uc.analyzeMu.Lock()
	defer uc.analyzeMu.Unlock()

	if uc.current == nil {
		return nil
	}
	p := *uc.current
	return &p
}

// Reset clears the current diagnosis; called when a new image is selected.
func (uc *implUseCase) Reset(ctx context.Context) {
	uc.setCurrent(nil)
}

func (uc *implUseCase) setCurrent(p *model.ConditionProfile) {
	uc.analyzeMu.Lock()
	uc.current = p
	uc.analyzeMu.Unlock()
}

// nextEntryID derives an id from the commit time, bumped on collision so ids
// stay strictly increasing. Caller holds historyMu.
func (uc *implUseCase) nextEntryID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= uc.lastID {
		id = uc.lastID + 1
	}
	uc.lastID = id
	return id
}

func imageDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
