package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"plant-care-assistant/internal/model"
	"plant-care-assistant/internal/reminder"
	"plant-care-assistant/internal/reminder/repository/kv"
	"plant-care-assistant/internal/reminder/usecase"
	"plant-care-assistant/pkg/gcalendar"
	"plant-care-assistant/pkg/kvstore"
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

type calendarStub struct {
	calls   int
	fail    bool
	deleted []string
}

func (c *calendarStub) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	c.calls++
	if c.fail {
		return nil, errors.New("calendar unavailable")
	}
	id := fmt.Sprintf("evt-%d", c.calls)
	return &gcalendar.Event{ID: id, HtmlLink: "https://calendar.google.com/event?eid=" + id, Summary: req.Summary}, nil
}

func (c *calendarStub) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if c.fail {
		return errors.New("calendar unavailable")
	}
	c.deleted = append(c.deleted, eventID)
	return nil
}

func newUseCase(store kvstore.Store, cal usecase.CalendarClient) reminder.UseCase {
	repo := kv.New(&mockLogger{}, store)
	return usecase.New(&mockLogger{}, repo, cal, usecase.CalendarConfig{Timezone: "UTC"})
}

func TestAddAndList(t *testing.T) {
	uc := newUseCase(kvstore.NewMemory(), nil)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	out, err := uc.Add(ctx, sc, reminder.AddInput{PlantName: "Monstera", Task: "Water", Time: "09:00"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if out.Reminder.ID == "" {
		t.Error("expected a generated id")
	}
	if out.CalendarSynced {
		t.Error("no calendar configured, sync must report false")
	}

	if _, err := uc.Add(ctx, sc, reminder.AddInput{PlantName: "Basil", Task: "Mist", Time: "18:30"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := uc.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(got))
	}
	if got[0].PlantName != "Monstera" || got[1].PlantName != "Basil" {
		t.Errorf("insertion order not preserved: %+v", got)
	}
}

func TestAddRejectsEmptyFields(t *testing.T) {
	uc := newUseCase(kvstore.NewMemory(), nil)
	ctx := context.Background()

	inputs := []reminder.AddInput{
		{PlantName: "", Task: "Water", Time: "09:00"},
		{PlantName: "Monstera", Task: "   ", Time: "09:00"},
		{PlantName: "Monstera", Task: "Water", Time: ""},
	}
	for _, input := range inputs {
		if _, err := uc.Add(ctx, model.Scope{}, input); err != reminder.ErrEmptyField {
			t.Errorf("Add(%+v) err = %v, want ErrEmptyField", input, err)
		}
	}
	if got := uc.List(ctx); len(got) != 0 {
		t.Errorf("rejected adds must not be stored, got %d", len(got))
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	uc := newUseCase(kvstore.NewMemory(), nil)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	first, _ := uc.Add(ctx, sc, reminder.AddInput{PlantName: "Monstera", Task: "Water", Time: "09:00"})
	second, _ := uc.Add(ctx, sc, reminder.AddInput{PlantName: "Basil", Task: "Mist", Time: "18:30"})

	if err := uc.Delete(ctx, sc, first.Reminder.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got := uc.List(ctx)
	if len(got) != 1 || got[0].ID != second.Reminder.ID {
		t.Fatalf("expected only the second reminder to survive, got %+v", got)
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	uc := newUseCase(kvstore.NewMemory(), nil)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	uc.Add(ctx, sc, reminder.AddInput{PlantName: "Monstera", Task: "Water", Time: "09:00"})

	if err := uc.Delete(ctx, sc, "no-such-id"); err != nil {
		t.Fatalf("Delete of unknown id must not fail: %v", err)
	}
	if got := uc.List(ctx); len(got) != 1 {
		t.Errorf("unknown-id delete changed the collection: %d reminders", len(got))
	}
}

func TestRemindersSurviveRestart(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	uc := newUseCase(store, nil)
	added, err := uc.Add(ctx, sc, reminder.AddInput{PlantName: "Monstera", Task: "Water", Time: "09:00"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	restarted := newUseCase(store, nil)
	if err := restarted.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := restarted.List(ctx)
	if len(got) != 1 || got[0].ID != added.Reminder.ID {
		t.Fatalf("expected persisted reminder after restart, got %+v", got)
	}
}

func TestClearAllDeletesSnapshot(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()

	uc := newUseCase(store, nil)
	uc.Add(ctx, model.Scope{}, reminder.AddInput{PlantName: "Monstera", Task: "Water", Time: "09:00"})

	if err := uc.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if got := uc.List(ctx); len(got) != 0 {
		t.Errorf("expected empty collection, got %d", len(got))
	}

	restarted := newUseCase(store, nil)
	if err := restarted.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := restarted.List(ctx); len(got) != 0 {
		t.Errorf("snapshot survived ClearAll: %d reminders", len(got))
	}
}

func TestCalendarSyncAttachesLink(t *testing.T) {
	cal := &calendarStub{}
	uc := newUseCase(kvstore.NewMemory(), cal)
	ctx := context.Background()

	out, err := uc.Add(ctx, model.Scope{}, reminder.AddInput{PlantName: "Monstera", Task: "Water", Time: "09:00"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !out.CalendarSynced {
		t.Error("expected sync to succeed")
	}
	if out.Reminder.CalendarLink == "" {
		t.Error("expected the event link on the reminder")
	}
	if cal.calls != 1 {
		t.Errorf("calendar calls = %d, want 1", cal.calls)
	}
}

func TestDeleteRemovesCalendarEvent(t *testing.T) {
	cal := &calendarStub{}
	uc := newUseCase(kvstore.NewMemory(), cal)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	first, err := uc.Add(ctx, sc, reminder.AddInput{PlantName: "Monstera", Task: "Water", Time: "09:00"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := uc.Add(ctx, sc, reminder.AddInput{PlantName: "Basil", Task: "Mist", Time: "18:30"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.Reminder.CalendarEventID == "" {
		t.Fatal("expected the synced event id on the reminder")
	}

	if err := uc.Delete(ctx, sc, first.Reminder.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(cal.deleted) != 1 || cal.deleted[0] != first.Reminder.CalendarEventID {
		t.Errorf("deleted events = %v, want exactly [%s]", cal.deleted, first.Reminder.CalendarEventID)
	}
	if got := uc.List(ctx); len(got) != 1 || got[0].ID != second.Reminder.ID {
		t.Fatalf("expected only the second reminder to survive, got %+v", got)
	}
}

func TestDeleteToleratesCalendarFailure(t *testing.T) {
	cal := &calendarStub{}
	uc := newUseCase(kvstore.NewMemory(), cal)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	added, err := uc.Add(ctx, sc, reminder.AddInput{PlantName: "Monstera", Task: "Water", Time: "09:00"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	cal.fail = true
	if err := uc.Delete(ctx, sc, added.Reminder.ID); err != nil {
		t.Fatalf("a calendar failure must not fail Delete: %v", err)
	}
	if got := uc.List(ctx); len(got) != 0 {
		t.Errorf("reminder must be removed despite calendar failure, got %d", len(got))
	}
}

func TestCalendarFailureKeepsReminder(t *testing.T) {
	cal := &calendarStub{fail: true}
	uc := newUseCase(kvstore.NewMemory(), cal)
	ctx := context.Background()

	out, err := uc.Add(ctx, model.Scope{}, reminder.AddInput{PlantName: "Monstera", Task: "Water", Time: "09:00"})
	if err != nil {
		t.Fatalf("calendar failure must not fail Add: %v", err)
	}
	if out.CalendarSynced {
		t.Error("failed sync must report false")
	}
	if got := uc.List(ctx); len(got) != 1 {
		t.Errorf("reminder must be stored despite calendar failure, got %d", len(got))
	}
}
