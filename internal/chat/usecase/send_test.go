package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"plant-care-assistant/internal/chat"
	"plant-care-assistant/internal/chat/usecase"
	"plant-care-assistant/internal/model"
	"plant-care-assistant/pkg/anthropic"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func assistantStub(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req anthropic.MessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.System == "" {
			t.Error("expected a system prompt framing the assistant")
		}

		question := req.Messages[0].Content[0].Text
		switch {
		case strings.Contains(question, "error_llm_500"):
			w.WriteHeader(http.StatusInternalServerError)
			return
		case strings.Contains(question, "wordless_reply"):
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":"msg_01","role":"assistant","content":[{"type":"text","text":""}]}`))
			return
		case strings.Contains(question, "no_text_block"):
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":"msg_01","role":"assistant","content":[]}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"msg_01","role":"assistant","content":[{"type":"text","text":"Water deeply once a week"}]}`))
	}))
}

func newUseCase(apiURL string) chat.UseCase {
	client := anthropic.NewClient("test-key")
	client.SetAPIURL(apiURL)
	return usecase.New(&mockLogger{}, client, 500, 10*time.Second)
}

func TestSendAppendsOrderedTurns(t *testing.T) {
	ts := assistantStub(t)
	defer ts.Close()

	uc := newUseCase(ts.URL)
	ctx := context.Background()

	out, err := uc.Send(ctx, model.Scope{UserID: "u1"}, chat.SendInput{Message: "How often should I water tomatoes?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Answer.Content != "Water deeply once a week" {
		t.Errorf("answer = %q, want the stub text verbatim", out.Answer.Content)
	}

	turns := uc.Transcript(ctx)
	if len(turns) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(turns))
	}
	if turns[0].Role != model.ChatRoleUser || turns[0].Content != "How often should I water tomatoes?" {
		t.Errorf("first turn = %+v, want the user question", turns[0])
	}
	if turns[1].Role != model.ChatRoleAssistant || turns[1].Content != "Water deeply once a week" {
		t.Errorf("second turn = %+v, want the assistant answer", turns[1])
	}
}

func TestSendRejectsEmptyInput(t *testing.T) {
	ts := assistantStub(t)
	defer ts.Close()

	uc := newUseCase(ts.URL)
	ctx := context.Background()

	for _, input := range []string{"", "   ", "\n\t"} {
		if _, err := uc.Send(ctx, model.Scope{}, chat.SendInput{Message: input}); err != chat.ErrEmptyMessage {
			t.Errorf("Send(%q) err = %v, want ErrEmptyMessage", input, err)
		}
	}
	if got := uc.Transcript(ctx); len(got) != 0 {
		t.Errorf("empty submissions must not touch the transcript, got %d turns", len(got))
	}
}

func TestSendAppendsEmptyAnswerVerbatim(t *testing.T) {
	ts := assistantStub(t)
	defer ts.Close()

	uc := newUseCase(ts.URL)
	ctx := context.Background()

	out, err := uc.Send(ctx, model.Scope{UserID: "u1"}, chat.SendInput{Message: "wordless_reply please"})
	if err != nil {
		t.Fatalf("an empty answer text must still complete the turn: %v", err)
	}
	if out.Answer.Content != "" {
		t.Errorf("answer = %q, want the empty text verbatim", out.Answer.Content)
	}

	turns := uc.Transcript(ctx)
	if len(turns) != 2 || turns[1].Role != model.ChatRoleAssistant {
		t.Fatalf("transcript = %+v, want user turn plus empty assistant turn", turns)
	}
}

func TestSendMissingTextBlockFails(t *testing.T) {
	ts := assistantStub(t)
	defer ts.Close()

	uc := newUseCase(ts.URL)
	ctx := context.Background()

	if _, err := uc.Send(ctx, model.Scope{UserID: "u1"}, chat.SendInput{Message: "no_text_block please"}); err != chat.ErrEmptyAnswer {
		t.Fatalf("err = %v, want ErrEmptyAnswer", err)
	}
	turns := uc.Transcript(ctx)
	if len(turns) != 1 || turns[0].Role != model.ChatRoleUser {
		t.Fatalf("transcript = %+v, want only the unanswered user turn", turns)
	}
}

func TestSendFailureLeavesQuestionUnanswered(t *testing.T) {
	ts := assistantStub(t)
	defer ts.Close()

	uc := newUseCase(ts.URL)
	ctx := context.Background()

	_, err := uc.Send(ctx, model.Scope{UserID: "u1"}, chat.SendInput{Message: "error_llm_500 please"})
	if err == nil {
		t.Fatal("expected transport error")
	}

	turns := uc.Transcript(ctx)
	if len(turns) != 1 || turns[0].Role != model.ChatRoleUser {
		t.Fatalf("transcript = %+v, want only the unanswered user turn", turns)
	}
	if uc.Busy(ctx) {
		t.Error("busy flag must clear after a failed call")
	}

	// The user may resubmit afterwards.
	if _, err := uc.Send(ctx, model.Scope{UserID: "u1"}, chat.SendInput{Message: "second try"}); err != nil {
		t.Fatalf("resubmission failed: %v", err)
	}
	if got := uc.Transcript(ctx); len(got) != 3 {
		t.Errorf("transcript length after resubmit = %d, want 3", len(got))
	}
}

func TestSendRejectedWhileBusy(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"msg_01","role":"assistant","content":[{"type":"text","text":"ok"}]}`))
	}))
	defer ts.Close()

	uc := newUseCase(ts.URL)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	done := make(chan error, 1)
	go func() {
		_, err := uc.Send(ctx, sc, chat.SendInput{Message: "slow question"})
		done <- err
	}()

	<-started
	if !uc.Busy(ctx) {
		t.Error("expected busy while a call is outstanding")
	}

	before := len(uc.Transcript(ctx))
	if _, err := uc.Send(ctx, sc, chat.SendInput{Message: "impatient second question"}); err != chat.ErrChatBusy {
		t.Errorf("concurrent send err = %v, want ErrChatBusy", err)
	}
	if after := len(uc.Transcript(ctx)); after != before {
		t.Errorf("rejected submission changed transcript: %d -> %d", before, after)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first send failed: %v", err)
	}
	if got := uc.Transcript(ctx); len(got) != 2 {
		t.Errorf("final transcript length = %d, want 2", len(got))
	}
}
