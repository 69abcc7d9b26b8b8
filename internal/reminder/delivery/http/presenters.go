package http

import (
	"plant-care-assistant/internal/model"
	"plant-care-assistant/internal/reminder"
	"plant-care-assistant/pkg/response"
)

// --- Request DTOs ---

type addReq struct {
	PlantName string `json:"plant_name" binding:"required"`
	Task      string `json:"task" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

func (r addReq) toInput() reminder.AddInput {
	return reminder.AddInput{
		PlantName: r.PlantName,
		Task:      r.Task,
		Time:      r.Time,
	}
}

// --- Response DTOs ---

type reminderItem struct {
	ID           string            `json:"id"`
	PlantName    string            `json:"plant_name"`
	Task         string            `json:"task"`
	Time         string            `json:"time"`
	CreatedAt    response.DateTime `json:"created"`
	CalendarLink string            `json:"calendar_link,omitempty"`
}

func newReminderItem(r model.Reminder) reminderItem {
	return reminderItem{
		ID:           r.ID,
		PlantName:    r.PlantName,
		Task:         r.Task,
		Time:         r.Time,
		CreatedAt:    response.DateTime(r.CreatedAt),
		CalendarLink: r.CalendarLink,
	}
}

type addResp struct {
	Reminder       reminderItem `json:"reminder"`
	CalendarSynced bool         `json:"calendar_synced"`
}

func newAddResp(out reminder.AddOutput) addResp {
	return addResp{
		Reminder:       newReminderItem(out.Reminder),
		CalendarSynced: out.CalendarSynced,
	}
}

type listResp struct {
	Reminders []reminderItem `json:"reminders"`
	Count     int            `json:"count"`
}

func newListResp(reminders []model.Reminder) listResp {
	items := make([]reminderItem, 0, len(reminders))
	for _, r := range reminders {
		items = append(items, newReminderItem(r))
	}
	return listResp{Reminders: items, Count: len(items)}
}
