package usecase

import (
	"context"
	"sync"

	"plant-care-assistant/internal/model"
	"plant-care-assistant/internal/reminder"
	"plant-care-assistant/internal/reminder/repository"
	"plant-care-assistant/pkg/gcalendar"
	pkgLog "plant-care-assistant/pkg/log"
)

// CalendarClient is the slice of the calendar API the use case needs.
// A nil client disables calendar sync entirely.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CalendarConfig carries the target calendar for reminder sync.
type CalendarConfig struct {
	CalendarID string
	Timezone   string
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar CalendarClient
	calCfg   CalendarConfig

	mu        sync.Mutex
	reminders []model.Reminder
}

// New creates the reminder use case. calendar may be nil.
func New(l pkgLog.Logger, repo repository.Repository, calendar CalendarClient, calCfg CalendarConfig) reminder.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		calCfg:   calCfg,
	}
}
