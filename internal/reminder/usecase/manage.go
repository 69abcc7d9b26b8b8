package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"plant-care-assistant/internal/model"
	"plant-care-assistant/internal/reminder"
	"plant-care-assistant/pkg/gcalendar"
)

const calendarSyncTimeout = 10 * time.Second

// Add validates and stores a new reminder, then best-effort creates a daily
// recurring calendar event for it. Calendar failures never fail the Add.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input reminder.AddInput) (reminder.AddOutput, error) {
	plantName := strings.TrimSpace(input.PlantName)
	task := strings.TrimSpace(input.Task)
	timeOfDay := strings.TrimSpace(input.Time)
	if plantName == "" || task == "" || timeOfDay == "" {
		return reminder.AddOutput{}, reminder.ErrEmptyField
	}

	rem := model.Reminder{
		ID:        uuid.NewString(),
		PlantName: plantName,
		Task:      task,
		Time:      timeOfDay,
		CreatedAt: time.Now().UTC(),
	}

	synced := uc.syncCalendar(ctx, &rem)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.reminders = append(uc.reminders, rem)
	uc.persistLocked(ctx)

	uc.l.Infof(ctx, "Add: user=%s reminder=%s plant=%q task=%q", sc.UserID, rem.ID, plantName, task)
	return reminder.AddOutput{Reminder: rem, CalendarSynced: synced}, nil
}

// Delete removes the reminder with the given id and best-effort removes its
// synced calendar event. An unknown id is a no-op.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	uc.mu.Lock()

	var removed *model.Reminder
	kept := uc.reminders[:0]
	for _, r := range uc.reminders {
		if r.ID == id && removed == nil {
			rem := r
			removed = &rem
			continue
		}
		kept = append(kept, r)
	}
	if removed == nil {
		uc.mu.Unlock()
		return nil
	}

	uc.reminders = kept
	uc.persistLocked(ctx)
	uc.mu.Unlock()

	uc.l.Infof(ctx, "Delete: user=%s reminder=%s", sc.UserID, id)

	uc.removeCalendarEvent(ctx, removed)
	return nil
}

// List returns a copy of the reminders in insertion order.
func (uc *implUseCase) List(ctx context.Context) []model.Reminder {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]model.Reminder, len(uc.reminders))
	copy(out, uc.reminders)
	return out
}

// ClearAll removes every reminder and deletes the persisted snapshot.
func (uc *implUseCase) ClearAll(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.reminders = nil
	if err := uc.repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear reminders: %w", err)
	}
	return nil
}

// Load restores the persisted snapshot. An unreadable snapshot starts the
// session empty rather than failing startup.
func (uc *implUseCase) Load(ctx context.Context) error {
	reminders, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "Load: starting with empty reminders: %v", err)
		reminders = nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.reminders = reminders
	return nil
}

// persistLocked writes the current collection through to the repository.
// Persistence failures are logged and do not roll back the in-memory state.
func (uc *implUseCase) persistLocked(ctx context.Context) {
	snapshot := make([]model.Reminder, len(uc.reminders))
	copy(snapshot, uc.reminders)
	if err := uc.repo.Save(ctx, snapshot); err != nil {
		uc.l.Errorf(ctx, "persist reminders: %v", err)
	}
}

// syncCalendar creates a daily recurring event for the reminder and stores
// the event link on it. Returns false when sync is disabled or fails.
func (uc *implUseCase) syncCalendar(ctx context.Context, rem *model.Reminder) bool {
	if uc.calendar == nil {
		return false
	}

	start, err := nextOccurrence(rem.Time, uc.calCfg.Timezone, time.Now())
	if err != nil {
		uc.l.Warnf(ctx, "syncCalendar: invalid reminder time %q: %v", rem.Time, err)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, calendarSyncTimeout)
	defer cancel()

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calCfg.CalendarID,
		Summary:     fmt.Sprintf("%s: %s", rem.PlantName, rem.Task),
		Description: fmt.Sprintf("Plant care reminder for %s.", rem.PlantName),
		StartTime:   start,
		EndTime:     start.Add(15 * time.Minute),
		Timezone:    uc.calCfg.Timezone,
		DailyRepeat: true,
	})
	if err != nil {
		uc.l.Warnf(ctx, "syncCalendar: event creation failed, reminder kept locally: %v", err)
		return false
	}

	rem.CalendarLink = event.HtmlLink
	rem.CalendarEventID = event.ID
	return true
}

// removeCalendarEvent deletes the calendar event synced for a reminder.
// Failures are logged; the reminder is already gone either way.
func (uc *implUseCase) removeCalendarEvent(ctx context.Context, rem *model.Reminder) {
	if uc.calendar == nil || rem.CalendarEventID == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, calendarSyncTimeout)
	defer cancel()

	if err := uc.calendar.DeleteEvent(ctx, uc.calCfg.CalendarID, rem.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "removeCalendarEvent: %v", err)
	}
}

// nextOccurrence resolves an "HH:MM" time-of-day to its next occurrence in
// the given timezone, today if still ahead, otherwise tomorrow.
func nextOccurrence(timeOfDay, timezone string, now time.Time) (time.Time, error) {
	loc := time.Local
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
		loc = l
	}

	parsed, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected HH:MM: %w", err)
	}

	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next, nil
}
