package views

import (
	"log/slog"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/dispatch"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/location"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/timezone"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
)

// LocationState is what the location screen shows.
type LocationState struct {
	Authorization location.AuthorizationState `json:"authorization" swaggertype:"string" example:"authorizedWhenInUse"`
	Coordinates   *types.Coords               `json:"coordinates"`
	Timezone      string                      `json:"timezone,omitempty" example:"Asia/Kolkata"`
}

type LocationView struct {
	queue     *dispatch.Queue
	location  LocationSource
	timezones timezone.Service
	logger    *slog.Logger
}

// NewLocationView creates the view. timezones may be nil, in which case no
// timezone is shown.
func NewLocationView(queue *dispatch.Queue, source LocationSource, timezones timezone.Service, logger *slog.Logger) *LocationView {
	return &LocationView{
		queue:     queue,
		location:  source,
		timezones: timezones,
		logger:    logger.With("component", "location-view"),
	}
}

// GetLocation asks for permission or a fresh coordinate.
func (v *LocationView) GetLocation() {
	v.location.CheckAuthorization()
}

// State must not be called on the main loop.
func (v *LocationView) State() LocationState {
	var s LocationState
	v.queue.Sync(func() {
		s.Authorization = v.location.Authorization()
		s.Coordinates = v.location.LastKnownLocation()
	})

	// The lookup is done off the loop
	if s.Coordinates != nil && v.timezones != nil {
		tz, err := v.timezones.GetTimezone(*s.Coordinates)
		if err != nil {
			v.logger.Debug("no timezone for location", "latitude", s.Coordinates.Latitude, "longitude", s.Coordinates.Longitude, "error", err)
		}
		s.Timezone = tz
	}
	return s
}
