package reminder

import "plant-care-assistant/internal/model"

type AddInput struct {
	PlantName string
	Task      string
	Time      string
}

type AddOutput struct {
	Reminder model.Reminder
	// CalendarSynced reports whether a calendar event was created for the
	// reminder. False when no calendar client is configured or the sync
	// attempt failed.
	CalendarSynced bool
}
