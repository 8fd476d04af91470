package views

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/dispatch"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/weather"
)

// WeatherState is what the weather screen shows.
type WeatherState struct {
	Weather      *weather.Weather `json:"weather"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
	FetchID      string           `json:"fetchId,omitempty"` // fetch whose result was applied last
	InFlight     int              `json:"inFlight"`
}

type WeatherView struct {
	queue    *dispatch.Queue
	location LocationSource
	service  weather.Service
	updates  *dispatch.Broadcaster[WeatherState]
	logger   *slog.Logger

	state WeatherState
}

func NewWeatherView(queue *dispatch.Queue, source LocationSource, service weather.Service, logger *slog.Logger) *WeatherView {
	return &WeatherView{
		queue:    queue,
		location: source,
		service:  service,
		updates:  dispatch.NewBroadcaster[WeatherState](),
		logger:   logger.With("component", "weather-view"),
	}
}

// Fetch starts a weather request for the last known coordinate and returns
// its ID. Without a coordinate the error message is set, nothing is fetched
// and weather.ErrLocationUnavailable is returned. Overlapping fetches are not
// merged: whichever completes last is shown. Fetch must not be called on the
// main loop.
func (v *WeatherView) Fetch() (string, error) {
	var (
		id  string
		err error
	)
	if stopErr := v.queue.Sync(func() {
		id, err = v.startFetch()
	}); stopErr != nil {
		return "", stopErr
	}
	return id, err
}

func (v *WeatherView) startFetch() (string, error) {
	coords := v.location.LastKnownLocation()
	if coords == nil {
		v.logger.Info("weather requested without a location")
		v.state.ErrorMessage = weather.Message(weather.ErrLocationUnavailable)
		v.publish()
		return "", weather.ErrLocationUnavailable
	}

	id := uuid.NewString()
	v.state.InFlight++
	v.publish()
	v.logger.Debug("fetching weather",
		"fetch_id", id,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	go func() {
		w, err := v.service.FetchWeather(coords)
		v.queue.Do(func() {
			v.apply(id, w, err)
		})
	}()

	return id, nil
}

// apply runs on the main loop. A failure keeps the weather already shown.
func (v *WeatherView) apply(id string, w *weather.Weather, err error) {
	v.state.InFlight--
	v.state.FetchID = id

	if err != nil {
		v.state.ErrorMessage = weather.Message(err)
		v.logger.Warn("weather fetch failed", "fetch_id", id, "error", err)
	} else {
		v.state.Weather = w
		v.state.ErrorMessage = ""
		v.logger.Info("weather updated",
			"fetch_id", id,
			"location", w.Location.Name,
			"temperature_c", w.Current.Temperature.Celsius,
		)
	}
	v.publish()
}

// State returns a snapshot of the view, or the zero state once the main loop
// has stopped. Weather values are never mutated, so the pointer may be shared.
func (v *WeatherView) State() WeatherState {
	var s WeatherState
	v.queue.Sync(func() {
		s = v.state
	})
	return s
}

// Subscribe streams the state after every change.
func (v *WeatherView) Subscribe() (<-chan WeatherState, func()) {
	return v.updates.Subscribe()
}

func (v *WeatherView) publish() {
	if dropped := v.updates.Publish(v.state); dropped > 0 {
		v.logger.Debug("subscribers missed weather state", "dropped", dropped)
	}
}
