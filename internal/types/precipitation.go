package types

type Precipitation struct {
	Inches float64 `json:"inches"`
	Mm     float64 `json:"mm"`
}
