package model

import "time"

// Reminder is a user-defined recurring care task with a time-of-day.
type Reminder struct {
	ID           string    `json:"id"`
	PlantName    string    `json:"plant_name"`
	Task         string    `json:"task"`
	Time         string    `json:"time"` // time-of-day, "HH:MM"
	CreatedAt    time.Time `json:"created"`
	CalendarLink string    `json:"calendar_link,omitempty"` // optional Google Calendar deep link
	// CalendarEventID references the synced calendar event so it can be
	// removed when the reminder is deleted.
	CalendarEventID string `json:"calendar_event_id,omitempty"`
}
