package types

type Pressure struct {
	Millibars float64 `json:"millibars"`
	Inches    float64 `json:"inches"`
}
