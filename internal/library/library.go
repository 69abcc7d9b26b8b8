// Package library holds the static plant-care reference data.
package library

import (
	"strings"

	"plant-care-assistant/internal/model"
)

var plants = []model.PlantCare{
	{Name: "Tomato", Icon: "🍅", Light: "Full sun (6-8 hours)", Water: "1-2 inches per week", Tips: "Support with stakes, prune suckers", Season: "Warm season"},
	{Name: "Lettuce", Icon: "🥬", Light: "Partial shade", Water: "Keep soil moist", Tips: "Harvest outer leaves first", Season: "Cool season"},
	{Name: "Pepper", Icon: "🌶️", Light: "Full sun", Water: "Deep water weekly", Tips: "Mulch to retain moisture", Season: "Warm season"},
	{Name: "Carrot", Icon: "🥕", Light: "Full sun", Water: "Regular, consistent", Tips: "Thin seedlings early", Season: "Cool season"},
	{Name: "Basil", Icon: "🌿", Light: "Full sun", Water: "Keep moist, not wet", Tips: "Pinch flowers to promote growth", Season: "Warm season"},
	{Name: "Cucumber", Icon: "🥒", Light: "Full sun", Water: "Consistent, deep watering", Tips: "Trellis for better growth", Season: "Warm season"},
	{Name: "Cabbage", Icon: "🥬", Light: "Full sun to partial shade", Water: "1.5 inches per week", Tips: "Fertilize every 2 weeks", Season: "Cool season"},
	{Name: "Onion", Icon: "🧅", Light: "Full sun", Water: "Regular, reduce at maturity", Tips: "Pull back soil as bulbs grow", Season: "Cool season"},
	{Name: "Potato", Icon: "🥔", Light: "Full sun", Water: "1-2 inches per week", Tips: "Hill soil around plants", Season: "Cool season"},
	{Name: "Spinach", Icon: "🥬", Light: "Full sun to partial shade", Water: "Keep consistently moist", Tips: "Harvest before bolting", Season: "Cool season"},
	{Name: "Beans", Icon: "🫘", Light: "Full sun", Water: "Regular, increase at flowering", Tips: "Support pole varieties", Season: "Warm season"},
	{Name: "Corn", Icon: "🌽", Light: "Full sun", Water: "Deep watering 1-2x weekly", Tips: "Plant in blocks for pollination", Season: "Warm season"},
	{Name: "Eggplant", Icon: "🍆", Light: "Full sun", Water: "Deep weekly watering", Tips: "Support heavy fruits", Season: "Warm season"},
	{Name: "Squash", Icon: "🥒", Light: "Full sun", Water: "Deep watering weekly", Tips: "Hand pollinate if needed", Season: "Warm season"},
	{Name: "Pumpkin", Icon: "🎃", Light: "Full sun", Water: "Deep watering weekly", Tips: "Space plants 3-5 feet apart", Season: "Warm season"},
	{Name: "Radish", Icon: "🥬", Light: "Full sun to partial shade", Water: "Keep soil moist", Tips: "Fast growing, harvest early", Season: "Cool season"},
	{Name: "Garlic", Icon: "🧄", Light: "Full sun", Water: "Moderate, stop before harvest", Tips: "Plant cloves in fall", Season: "Cool season"},
	{Name: "Broccoli", Icon: "🥦", Light: "Full sun", Water: "1-1.5 inches per week", Tips: "Side shoots after main harvest", Season: "Cool season"},
	{Name: "Kale", Icon: "🥬", Light: "Full sun to partial shade", Water: "Keep consistently moist", Tips: "Sweeter after frost", Season: "Cool season"},
	{Name: "Peas", Icon: "🫛", Light: "Full sun", Water: "Regular during pod formation", Tips: "Support with trellis", Season: "Cool season"},
	{Name: "Beets", Icon: "🥬", Light: "Full sun", Water: "Regular, consistent", Tips: "Thin seedlings to 3-4 inches", Season: "Cool season"},
	{Name: "Sweet Potato", Icon: "🍠", Light: "Full sun", Water: "Regular, deep watering", Tips: "Long growing season (100+ days)", Season: "Warm season"},
	{Name: "Cauliflower", Icon: "🥬", Light: "Full sun", Water: "1-1.5 inches per week", Tips: "Tie leaves over head to blanch", Season: "Cool season"},
	{Name: "Zucchini", Icon: "🥒", Light: "Full sun", Water: "Deep watering 2x weekly", Tips: "Harvest young for best flavor", Season: "Warm season"},
}

// Plants returns a copy of the full reference list.
func Plants() []model.PlantCare {
	out := make([]model.PlantCare, len(plants))
	copy(out, plants)
	return out
}

// Find looks up a plant by name, case-insensitively.
func Find(name string) (model.PlantCare, bool) {
	name = strings.TrimSpace(name)
	for _, p := range plants {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return model.PlantCare{}, false
}

// Search returns the plants whose name contains the query, case-insensitively.
// An empty query returns the full list.
func Search(query string) []model.PlantCare {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Plants()
	}

	var out []model.PlantCare
	for _, p := range plants {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}
