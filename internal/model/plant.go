package model

// PlantCare is one static reference entry of the plant library.
type PlantCare struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Light  string `json:"light"`
	Water  string `json:"water"`
	Tips   string `json:"tips"`
	Season string `json:"season"`
}
