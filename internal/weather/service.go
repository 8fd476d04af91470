package weather

import (
	"fmt"
	"log/slog"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/config"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/providers/weatherapi"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
)

type CurrentProvider interface {
	// GetCurrent fetches current conditions for the coordinate
	GetCurrent(coords types.Coords) (*weatherapi.CurrentAPIResponse, error)
}

type Service interface {
	FetchWeather(coords *types.Coords) (*Weather, error)
}

type weatherService struct {
	currentProvider CurrentProvider
	logger          *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	client := weatherapi.NewClient(cfg.WeatherAPI.BaseURL, cfg.WeatherAPI.APIKey, logger)
	return NewWeatherServiceWithProvider(client, logger)
}

func NewWeatherServiceWithProvider(currentProvider CurrentProvider, logger *slog.Logger) Service {
	return &weatherService{
		currentProvider: currentProvider,
		logger:          logger.With("component", "weather-service"),
	}
}

// FetchWeather performs one request for the coordinate. A nil coordinate
// fails with ErrLocationUnavailable without touching the network.
func (s *weatherService) FetchWeather(coords *types.Coords) (*Weather, error) {
	if coords == nil {
		return nil, ErrLocationUnavailable
	}

	apiResponse, err := s.currentProvider.GetCurrent(*coords)
	if err != nil {
		s.logger.Error("failed to get current weather from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	w := mapCurrentAPIResponseToWeather(apiResponse)
	s.logger.Debug("fetched current weather",
		"location", w.Location.Name,
		"temperature_c", w.Current.Temperature.Celsius,
		"condition", w.Current.Condition.Text,
	)
	return w, nil
}

// mapCurrentAPIResponseToWeather expects a validated response; every
// pointer is non-nil.
func mapCurrentAPIResponseToWeather(resp *weatherapi.CurrentAPIResponse) *Weather {
	loc := resp.Location
	cur := resp.Current

	return &Weather{
		Location: Location{
			Name:           *loc.Name,
			Region:         *loc.Region,
			Country:        *loc.Country,
			Coordinates:    types.NewCoords(*loc.Lat, *loc.Lon),
			TimezoneID:     *loc.TzId,
			LocaltimeEpoch: *loc.LocaltimeEpoch,
			Localtime:      *loc.Localtime,
		},
		Current: Current{
			LastUpdatedEpoch: *cur.LastUpdatedEpoch,
			LastUpdated:      *cur.LastUpdated,
			Temperature:      types.NewTemperature(*cur.TempC, *cur.TempF),
			FeelsLike:        types.NewTemperature(*cur.FeelslikeC, *cur.FeelslikeF),
			IsDay:            *cur.IsDay == 1,
			Condition: types.Condition{
				Text: *cur.Condition.Text,
				Icon: *cur.Condition.Icon,
				Code: *cur.Condition.Code,
			},
			Wind: types.Wind{
				SpeedInMph:        *cur.WindMph,
				SpeedInKph:        *cur.WindKph,
				GustsInMph:        *cur.GustMph,
				GustsInKph:        *cur.GustKph,
				DirectionDegrees:  *cur.WindDegree,
				DirectionCardinal: *cur.WindDir,
			},
			Pressure: types.Pressure{
				Millibars: *cur.PressureMb,
				Inches:    *cur.PressureIn,
			},
			Precipitation: types.Precipitation{
				Inches: *cur.PrecipIn,
				Mm:     *cur.PrecipMm,
			},
			Humidity:   *cur.Humidity,
			CloudCover: *cur.Cloud,
			Visibility: types.Visibility{
				Kilometers: *cur.VisKm,
				Miles:      *cur.VisMiles,
			},
			UVIndex: *cur.Uv,
		},
	}
}
