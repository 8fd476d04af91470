package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/config"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/location"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/views"
)

// startApp runs the whole app, main loop included, until the returned
// cancel is called.
func startApp(t *testing.T, platform *location.SimulatedPlatform) (*App, context.CancelFunc, <-chan error) {
	t.Helper()
	cfg := &config.Config{Server: config.ServerConfig{GinMode: "test"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := newApp(cfg, logger, platform, &stubWeatherService{}, stubTimezones{})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx, "127.0.0.1:0")
	}()
	return app, cancel, done
}

func TestRun_ChecksLocationOnStartup(t *testing.T) {
	position := types.NewCoords(12.9716, 77.5946)
	app, _, _ := startApp(t, location.NewSimulatedPlatform(location.AuthorizationNotDetermined, location.AuthorizationWhenInUse, &position))

	var state views.LocationState
	eventually(t, "a coordinate without an explicit check", func() bool {
		state = app.locationView.State()
		return state.Coordinates != nil
	})
	if *state.Coordinates != position {
		t.Errorf("coordinates = %v, want %v", *state.Coordinates, position)
	}
}

func TestRun_ShutdownDoesNotStrandViewReads(t *testing.T) {
	position := types.NewCoords(12.9716, 77.5946)
	app, cancel, done := startApp(t, location.NewSimulatedPlatform(location.AuthorizationWhenInUse, location.AuthorizationWhenInUse, &position))

	eventually(t, "the server to come up", func() bool {
		return app.locationView.State().Coordinates != nil
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(shutdownTimeout):
		t.Fatal("Run() did not return after cancel")
	}

	// The loop is gone now; readers must still return
	read := make(chan struct{})
	go func() {
		app.weatherView.State()
		app.locationView.State()
		_, _ = app.weatherView.Fetch()
		close(read)
	}()
	select {
	case <-read:
	case <-time.After(2 * time.Second):
		t.Fatal("view reads blocked after shutdown")
	}
}
