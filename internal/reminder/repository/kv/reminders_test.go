package kv_test

import (
	"context"
	"testing"
	"time"

	"plant-care-assistant/internal/model"
	"plant-care-assistant/internal/reminder/repository/kv"
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

func sample(id string) model.Reminder {
	return model.Reminder{
		ID:        id,
		PlantName: "Monstera",
		Task:      "Water",
		Time:      "09:00",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestLoadAbsentSnapshot(t *testing.T) {
	repo := kv.New(&mockLogger{}, kvstore.NewMemory())

	reminders, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reminders) != 0 {
		t.Errorf("expected no reminders, got %d", len(reminders))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := kvstore.NewMemory()
	repo := kv.New(&mockLogger{}, store)
	ctx := context.Background()

	saved := []model.Reminder{sample("a"), sample("b")}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(loaded))
	}
	if loaded[0].ID != "a" || loaded[1].ID != "b" {
		t.Errorf("order not preserved: got ids [%s, %s]", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].PlantName != "Monstera" || loaded[0].Time != "09:00" {
		t.Errorf("reminder fields not preserved: %+v", loaded[0])
	}
}

func TestClearDeletesKey(t *testing.T) {
	store := kvstore.NewMemory()
	repo := kv.New(&mockLogger{}, store)
	ctx := context.Background()

	if err := repo.Save(ctx, []model.Reminder{sample("a")}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if _, found, _ := store.Get(ctx, kv.RemindersKey); found {
		t.Error("expected snapshot key to be deleted, but it is still present")
	}
}

func TestLoadCorruptSnapshot(t *testing.T) {
	store := kvstore.NewMemory()
	repo := kv.New(&mockLogger{}, store)
	ctx := context.Background()

	if err := store.Set(ctx, kv.RemindersKey, "[broken"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := repo.Load(ctx); err == nil {
		t.Error("expected decode error for corrupt snapshot")
	}
}
