package types

type Temperature struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}

func NewTemperature(celsius, fahrenheit float64) Temperature {
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: fahrenheit,
	}
}
