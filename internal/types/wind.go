package types

type Wind struct {
	SpeedInMph        float64 `json:"speedInMph"`
	SpeedInKph        float64 `json:"speedInKph"`
	GustsInMph        float64 `json:"gustsInMph"`
	GustsInKph        float64 `json:"gustsInKph"`
	DirectionDegrees  int     `json:"directionDegrees"`
	DirectionCardinal string  `json:"directionCardinal"`
}
