package telegram

import (
	"fmt"
	"strings"

	"plant-care-assistant/internal/library"
	"plant-care-assistant/internal/model"
)

const helpText = `🌱 *Plant Care Assistant*

Send me a photo of your plant and I will diagnose its condition.
Ask me any gardening question in plain text.

Commands:
/library - browse plant care reference (e.g. /library tomato)
/history - your recent diagnoses
/reminders - your care reminders
/help - this message`

func formatDiagnosis(p model.ConditionProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s *%s*\n\n%s\n\n*Recommendations:*\n", p.Icon, p.Title, p.Message)
	for _, rec := range p.Recommendations {
		fmt.Fprintf(&b, "• %s\n", rec)
	}
	return b.String()
}

func formatHistory(entries []model.HistoryEntry) string {
	if len(entries) == 0 {
		return "No diagnoses yet. Send me a plant photo to get started."
	}

	var b strings.Builder
	b.WriteString("*Recent diagnoses:*\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s — %s\n", e.Condition.Icon, e.Condition.Title, e.Timestamp.Format("Jan 2 15:04"))
	}
	return b.String()
}

func formatReminders(reminders []model.Reminder) string {
	if len(reminders) == 0 {
		return "No reminders set."
	}

	var b strings.Builder
	b.WriteString("*Your care reminders:*\n\n")
	for _, r := range reminders {
		fmt.Fprintf(&b, "⏰ %s — %s at %s\n", r.PlantName, r.Task, r.Time)
	}
	return b.String()
}

func formatLibrary(query string) string {
	plants := library.Search(query)
	if len(plants) == 0 {
		return fmt.Sprintf("No plants matching %q in the library.", query)
	}

	// A single match gets the full card, otherwise a compact list.
	if len(plants) == 1 {
		p := plants[0]
		return fmt.Sprintf("%s *%s* (%s)\n\n☀️ Light: %s\n💧 Water: %s\n💡 %s",
			p.Icon, p.Name, p.Season, p.Light, p.Water, p.Tips)
	}

	var b strings.Builder
	b.WriteString("*Plant library:*\n\n")
	for _, p := range plants {
		fmt.Fprintf(&b, "%s %s — %s\n", p.Icon, p.Name, p.Season)
	}
	b.WriteString("\nUse /library <name> for details.")
	return b.String()
}
