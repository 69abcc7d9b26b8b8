package usecase

import (
	"sync"
	"time"

	"plant-care-assistant/internal/model"
	"plant-care-assistant/pkg/anthropic"
	pkgLog "plant-care-assistant/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       anthropic.IAnthropic
	maxTokens int
	timeout   time.Duration

	mu         sync.Mutex
	busy       bool
	transcript []model.ChatTurn
}

// New creates a new chat UseCase instance. The transcript is session-scoped
// and never persisted.
func New(l pkgLog.Logger, llm anthropic.IAnthropic, maxTokens int, timeout time.Duration) *implUseCase {
	if maxTokens <= 0 {
		maxTokens = 500
	}
	if timeout <= 0 {
		timeout = anthropic.DefaultTimeout
	}
	return &implUseCase{
		l:         l,
		llm:       llm,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}
