package model

// ConditionTag is one of the five fixed plant-health classification labels.
type ConditionTag string

const (
	ConditionHealthy      ConditionTag = "healthy"
	ConditionFungal       ConditionTag = "fungal"
	ConditionPest         ConditionTag = "pest"
	ConditionDeficiency   ConditionTag = "deficiency"
	ConditionOverwatering ConditionTag = "overwatering"
)

// ConditionProfile is the static display/recommendation bundle for a tag.
// Icon, Color and BgColor are opaque display hints for clients.
type ConditionProfile struct {
	Tag             ConditionTag `json:"tag"`
	Title           string       `json:"title"`
	Message         string       `json:"message"`
	Recommendations []string     `json:"recommendations"`
	Icon            string       `json:"icon"`
	Color           string       `json:"color"`
	BgColor         string       `json:"bg_color"`
}
