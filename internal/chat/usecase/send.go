package usecase

import (
	"context"
	"fmt"
	"strings"

	"plant-care-assistant/internal/chat"
	"plant-care-assistant/internal/model"
	"plant-care-assistant/pkg/anthropic"
)

// Send processes one question/answer turn. The user turn is appended before
// dispatch; the assistant turn only on success, so a failed call leaves the
// question visible and unanswered.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.SendOutput, error) {
	question := strings.TrimSpace(input.Message)
	if question == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	userTurn := model.ChatTurn{Role: model.ChatRoleUser, Content: question}

	uc.mu.Lock()
	if uc.busy {
		uc.mu.Unlock()
		return chat.SendOutput{}, chat.ErrChatBusy
	}
	uc.busy = true
	uc.transcript = append(uc.transcript, userTurn)
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		uc.busy = false
		uc.mu.Unlock()
	}()

	uc.l.Infof(ctx, "Send: user=%s question_length=%d", sc.UserID, len(question))

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	resp, err := uc.llm.CreateMessage(ctx, anthropic.MessageRequest{
		MaxTokens: uc.maxTokens,
		System:    anthropic.GardeningSystemPrompt,
		Messages:  []anthropic.Message{anthropic.TextMessage(model.ChatRoleUser, question)},
	})
	if err != nil {
		// The question stays in the transcript, unanswered; no automatic retry.
		return chat.SendOutput{}, fmt.Errorf("chat request failed: %w", err)
	}

	// The answer text is opaque and appended as returned, even when empty.
	// Only a reply without any text block fails the turn.
	answer, ok := resp.FirstTextBlock()
	if !ok {
		return chat.SendOutput{}, chat.ErrEmptyAnswer
	}

	assistantTurn := model.ChatTurn{Role: model.ChatRoleAssistant, Content: answer}

	uc.mu.Lock()
	uc.transcript = append(uc.transcript, assistantTurn)
	uc.mu.Unlock()

	return chat.SendOutput{Question: userTurn, Answer: assistantTurn}, nil
}

// Transcript returns a copy of the ordered session transcript.
func (uc *implUseCase) Transcript(ctx context.Context) []model.ChatTurn {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]model.ChatTurn, len(uc.transcript))
	copy(out, uc.transcript)
	return out
}

// Busy reports whether a chat call is outstanding.
func (uc *implUseCase) Busy(ctx context.Context) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.busy
}
