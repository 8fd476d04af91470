package weather

import (
	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
)

// Weather is one decoded current-conditions report. It is never modified
// after mapping; a new fetch replaces it as a whole.
type Weather struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

// Location is the place the provider resolved the coordinate to.
type Location struct {
	Name           string       `json:"name"`
	Region         string       `json:"region"`
	Country        string       `json:"country"`
	Coordinates    types.Coords `json:"coordinates"`
	TimezoneID     string       `json:"timezoneId"`
	LocaltimeEpoch int64        `json:"localtimeEpoch"`
	Localtime      string       `json:"localtime"`
}

type Current struct {
	LastUpdatedEpoch int64               `json:"lastUpdatedEpoch"`
	LastUpdated      string              `json:"lastUpdated"`
	Temperature      types.Temperature   `json:"temperature"`
	FeelsLike        types.Temperature   `json:"feelsLike"`
	IsDay            bool                `json:"isDay"`
	Condition        types.Condition     `json:"condition"`
	Wind             types.Wind          `json:"wind"`
	Pressure         types.Pressure      `json:"pressure"`
	Precipitation    types.Precipitation `json:"precipitation"`
	Humidity         int                 `json:"humidity"`   // percent
	CloudCover       int                 `json:"cloudCover"` // percent
	Visibility       types.Visibility    `json:"visibility"`
	UVIndex          float64             `json:"uvIndex"`
}
