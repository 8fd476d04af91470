package weather

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/providers/weatherapi"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
)

// Mock provider for testing

type mockCurrentProvider struct {
	resp   *weatherapi.CurrentAPIResponse
	err    error
	calls  int
	coords []types.Coords
}

func (m *mockCurrentProvider) GetCurrent(coords types.Coords) (*weatherapi.CurrentAPIResponse, error) {
	m.calls++
	m.coords = append(m.coords, coords)
	return m.resp, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadSample(t *testing.T) *weatherapi.CurrentAPIResponse {
	t.Helper()
	data, err := os.ReadFile("../providers/weatherapi/testdata/current.json")
	if err != nil {
		t.Fatalf("Failed to read sample: %v", err)
	}
	var resp weatherapi.CurrentAPIResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("Failed to unmarshal sample: %v", err)
	}
	return &resp
}

func TestFetchWeather_NilCoordinate(t *testing.T) {
	provider := &mockCurrentProvider{}
	svc := NewWeatherServiceWithProvider(provider, testLogger())

	w, err := svc.FetchWeather(nil)
	if w != nil {
		t.Errorf("FetchWeather(nil) = %+v, want nil", w)
	}
	if !errors.Is(err, ErrLocationUnavailable) {
		t.Errorf("FetchWeather(nil) error = %v, want %v", err, ErrLocationUnavailable)
	}
	if provider.calls != 0 {
		t.Errorf("provider calls = %d, want 0", provider.calls)
	}
}

func TestFetchWeather_MapsResponse(t *testing.T) {
	provider := &mockCurrentProvider{resp: loadSample(t)}
	svc := NewWeatherServiceWithProvider(provider, testLogger())
	coords := types.NewCoords(12.34, 56.78)

	got, err := svc.FetchWeather(&coords)
	if err != nil {
		t.Fatalf("FetchWeather() unexpected error = %v", err)
	}

	want := &Weather{
		Location: Location{
			Name:           "Bengaluru",
			Region:         "Karnataka",
			Country:        "India",
			Coordinates:    types.NewCoords(12.34, 56.78),
			TimezoneID:     "Asia/Kolkata",
			LocaltimeEpoch: 1760779800,
			Localtime:      "2025-10-18 14:50",
		},
		Current: Current{
			LastUpdatedEpoch: 1760779500,
			LastUpdated:      "2025-10-18 14:45",
			Temperature:      types.NewTemperature(21.5, 70.7),
			FeelsLike:        types.NewTemperature(21.5, 70.7),
			IsDay:            true,
			Condition: types.Condition{
				Text: "Clear",
				Icon: "//cdn.weatherapi.com/weather/64x64/day/113.png",
				Code: 1000,
			},
			Wind: types.Wind{
				SpeedInMph:        6.9,
				SpeedInKph:        11.2,
				GustsInMph:        8.1,
				GustsInKph:        13.0,
				DirectionDegrees:  270,
				DirectionCardinal: "W",
			},
			Pressure:      types.Pressure{Millibars: 1012, Inches: 29.88},
			Precipitation: types.Precipitation{Inches: 0, Mm: 0},
			Humidity:      64,
			CloudCover:    0,
			Visibility:    types.Visibility{Kilometers: 10, Miles: 6},
			UVIndex:       5,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FetchWeather() mismatch (-want +got):\n%s", diff)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1", provider.calls)
	}
	if provider.coords[0] != coords {
		t.Errorf("provider coords = %v, want %v", provider.coords[0], coords)
	}
}

func TestFetchWeather_ProviderError(t *testing.T) {
	cause := &weatherapi.Error{Kind: weatherapi.ErrDecode, Err: errors.New("unexpected end of JSON input")}
	svc := NewWeatherServiceWithProvider(&mockCurrentProvider{err: cause}, testLogger())
	coords := types.NewCoords(12.34, 56.78)

	w, err := svc.FetchWeather(&coords)
	if w != nil {
		t.Errorf("FetchWeather() = %+v, want nil", w)
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("FetchWeather() error = %v, want %v", err, ErrDecode)
	}
}

func TestFetchWeather_NetworkErrorDoesNotLogAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := NewWeatherServiceWithProvider(weatherapi.NewClient(baseURL, "SECRETKEY123", logger), logger)
	coords := types.NewCoords(12.34, 56.78)

	_, err := svc.FetchWeather(&coords)
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("FetchWeather() error = %v, want %v", err, ErrNetwork)
	}

	if !strings.Contains(logs.String(), "failed to get current weather") {
		t.Fatalf("expected the failure to be logged, got:\n%s", logs.String())
	}
	if strings.Contains(logs.String(), "SECRETKEY123") {
		t.Errorf("log output leaks the API key:\n%s", logs.String())
	}
	if strings.Contains(err.Error(), "SECRETKEY123") {
		t.Errorf("FetchWeather() error = %q leaks the API key", err.Error())
	}
	if msg := Message(err); !strings.HasPrefix(msg, "Network error: ") || strings.Contains(msg, "SECRETKEY123") {
		t.Errorf("Message() = %q", msg)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"location unavailable", ErrLocationUnavailable, "Location not available"},
		{"invalid url", &weatherapi.Error{Kind: ErrInvalidURL, Err: errors.New("missing host")}, "Invalid URL"},
		{"no data", &weatherapi.Error{Kind: ErrNoData}, "No data received"},
		{
			name: "network",
			err:  &weatherapi.Error{Kind: ErrNetwork, Err: errors.New("connection refused")},
			want: "Network error: connection refused",
		},
		{
			name: "decode wrapped by service",
			err:  fmt.Errorf("failed to get current weather: %w", &weatherapi.Error{Kind: ErrDecode, Err: errors.New("missing required fields: current.temp_c")}),
			want: "Decoding error: missing required fields: current.temp_c",
		},
		{"unknown", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
