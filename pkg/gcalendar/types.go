package gcalendar

import "time"

// CreateEventRequest describes a calendar event to create.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string
	DailyRepeat bool // recurring daily event (care reminders)
}

// Event is the created calendar event.
type Event struct {
	ID       string
	HtmlLink string
	Summary  string
}
