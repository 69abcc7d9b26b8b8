package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"plant-care-assistant/internal/diagnosis/repository"
	"plant-care-assistant/internal/model"
	"plant-care-assistant/pkg/anthropic"
	pkgLog "plant-care-assistant/pkg/log"
)

const (
	// maxHistoryEntries bounds the retained diagnosis history.
	maxHistoryEntries = 20

	// classification cache: re-analyzing the same photo skips the remote call.
	cacheSize = 128
	cacheTTL  = 15 * time.Minute
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       anthropic.IAnthropic
	repo      repository.HistoryRepository
	maxTokens int
	timeout   time.Duration

	// analysis workflow state: one in-flight analysis per session
	analyzeMu sync.Mutex
	inFlight  bool
	current   *model.ConditionProfile

	// history: in-memory sequence is authoritative, persisted write-through
	historyMu sync.Mutex
	entries   []model.HistoryEntry
	lastID    int64

	cache *expirable.LRU[string, model.ConditionTag]
}

// New creates a new diagnosis UseCase instance.
func New(
	l pkgLog.Logger,
	llm anthropic.IAnthropic,
	repo repository.HistoryRepository,
	maxTokens int,
	timeout time.Duration,
) *implUseCase {
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	if timeout <= 0 {
		timeout = anthropic.DefaultTimeout
	}
	return &implUseCase{
		l:         l,
		llm:       llm,
		repo:      repo,
		maxTokens: maxTokens,
		timeout:   timeout,
		cache:     expirable.NewLRU[string, model.ConditionTag](cacheSize, nil, cacheTTL),
	}
}
