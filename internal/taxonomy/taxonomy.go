// Package taxonomy holds the fixed plant-health classification table and the
// normalization rule that maps free-form classifier output onto it.
package taxonomy

import (
	"strings"

	"plant-care-assistant/internal/model"
)

// FallbackTag is substituted when the classifier returns text that matches no
// known tag. The workflow never surfaces "unrecognized classification".
const FallbackTag = model.ConditionFungal

// Tags lists all valid condition tags.
var Tags = []model.ConditionTag{
	model.ConditionHealthy,
	model.ConditionFungal,
	model.ConditionPest,
	model.ConditionDeficiency,
	model.ConditionOverwatering,
}

var profiles = map[model.ConditionTag]model.ConditionProfile{
	model.ConditionHealthy: {
		Tag:     model.ConditionHealthy,
		Title:   "Healthy Plant",
		Message: "Your plant looks healthy and vibrant!",
		Recommendations: []string{
			"Continue current watering schedule",
			"Ensure adequate sunlight (6-8 hours daily)",
			"Monitor for any changes in leaf color",
			"Apply balanced fertilizer monthly",
		},
		Icon:    "check-circle",
		Color:   "text-green-600",
		BgColor: "bg-green-50",
	},
	model.ConditionFungal: {
		Tag:     model.ConditionFungal,
		Title:   "Fungal Infection Detected",
		Message: "Your plant shows signs of fungal disease.",
		Recommendations: []string{
			"Remove affected leaves immediately",
			"Apply organic fungicide (neem oil solution)",
			"Reduce watering frequency - avoid wet leaves",
			"Improve air circulation around plant",
			"Avoid overhead watering",
		},
		Icon:    "alert-circle",
		Color:   "text-orange-600",
		BgColor: "bg-orange-50",
	},
	model.ConditionPest: {
		Tag:     model.ConditionPest,
		Title:   "Pest Infestation",
		Message: "Pests detected on your plant.",
		Recommendations: []string{
			"Spray with insecticidal soap or neem oil",
			"Remove visible pests manually",
			"Isolate plant from other plants",
			"Check undersides of leaves daily",
			"Consider beneficial insects (ladybugs)",
		},
		Icon:    "bug",
		Color:   "text-red-600",
		BgColor: "bg-red-50",
	},
	model.ConditionDeficiency: {
		Tag:     model.ConditionDeficiency,
		Title:   "Nutrient Deficiency",
		Message: "Your plant may lack essential nutrients.",
		Recommendations: []string{
			"Apply balanced NPK fertilizer (10-10-10)",
			"Add compost to improve soil quality",
			"Check soil pH (most plants prefer 6.0-7.0)",
			"Consider foliar feeding for quick results",
			"Ensure proper drainage",
		},
		Icon:    "droplets",
		Color:   "text-yellow-600",
		BgColor: "bg-yellow-50",
	},
	model.ConditionOverwatering: {
		Tag:     model.ConditionOverwatering,
		Title:   "Overwatering",
		Message: "Your plant shows signs of too much water.",
		Recommendations: []string{
			"Allow soil to dry between waterings",
			"Improve drainage in pot/soil",
			"Remove any standing water",
			"Check roots for rot",
			"Reduce watering frequency by 50%",
		},
		Icon:    "droplets",
		Color:   "text-blue-600",
		BgColor: "bg-blue-50",
	},
}

// ProfileFor returns the profile for a tag. Total over the five tags; an
// unknown tag maps to the fallback profile so callers never see a zero value.
func ProfileFor(tag model.ConditionTag) model.ConditionProfile {
	if p, ok := profiles[tag]; ok {
		return p
	}
	return profiles[FallbackTag]
}

// Resolve normalizes classifier output (trim, lowercase) and maps it to a
// condition tag. exact reports whether the text matched a known tag; anything
// unrecognized resolves to FallbackTag.
func Resolve(text string) (tag model.ConditionTag, exact bool) {
	normalized := model.ConditionTag(strings.ToLower(strings.TrimSpace(text)))
	if _, ok := profiles[normalized]; ok {
		return normalized, true
	}
	return FallbackTag, false
}
