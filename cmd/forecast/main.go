package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/config"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/dispatch"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/location"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/timezone"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/views"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/weather"
)

var (
	ErrLocationDenied  = errors.New("location access not authorized")
	ErrLocationTimeout = errors.New("timed out waiting for location")
)

func main() {
	v := viper.New()
	fs := pflag.NewFlagSet("forecast", pflag.ExitOnError)
	wait := fs.Duration("wait", 10*time.Second, "how long to wait for a location and for the weather")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-format", "text", "log format: text, json")
	fs.String("authorization", "notDetermined", "initial location authorization")
	fs.String("prompt-response", "authorizedWhenInUse", "answer given at the location permission prompt")
	fs.Float64("lat", 0, "device latitude in decimal degrees")
	fs.Float64("lon", 0, "device longitude in decimal degrees")
	_ = fs.Parse(os.Args[1:])

	bindFlags(v, fs)

	cfg, err := config.LoadWith(v)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cfg.NewLoggerTo(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tzSvc, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone lookup disabled", "error", err)
	}

	if err := run(ctx, cfg, weather.NewWeatherService(cfg, logger), tzSvc, *wait, os.Stdout, logger); err != nil {
		log.Fatal(err)
	}
}

// bindFlags maps command line flags onto config keys. Giving either
// coordinate means the device has a position fix.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	_ = v.BindPFlag("log.level", fs.Lookup("log-level"))
	_ = v.BindPFlag("log.format", fs.Lookup("log-format"))
	_ = v.BindPFlag("location.authorization", fs.Lookup("authorization"))
	_ = v.BindPFlag("location.promptresponse", fs.Lookup("prompt-response"))
	_ = v.BindPFlag("location.latitude", fs.Lookup("lat"))
	_ = v.BindPFlag("location.longitude", fs.Lookup("lon"))

	if fs.Changed("lat") || fs.Changed("lon") {
		v.Set("location.available", true)
	}
}

// run gets a location, fetches the weather for it once and prints the result.
func run(ctx context.Context, cfg *config.Config, svc weather.Service, tzSvc timezone.Service, wait time.Duration, out io.Writer, logger *slog.Logger) error {
	platform, err := location.NewSimulatedPlatformFromConfig(cfg.Location)
	if err != nil {
		return err
	}

	// The loop lives until run returns; wait only bounds the two waits below
	loopCtx, stopLoop := context.WithCancel(ctx)
	defer stopLoop()
	queue := dispatch.NewQueue()
	go queue.Run(loopCtx)

	waitCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	provider := location.NewProvider(platform, queue, logger)
	events, unsubscribe := provider.Subscribe()
	defer unsubscribe()

	locationView := views.NewLocationView(queue, provider, tzSvc, logger)
	weatherView := views.NewWeatherView(queue, provider, svc, logger)
	updates, unsubscribeWeather := weatherView.Subscribe()
	defer unsubscribeWeather()

	locationView.GetLocation()
	if err := awaitLocation(waitCtx, provider, events); err != nil {
		return err
	}

	id, err := weatherView.Fetch()
	if err != nil {
		return errors.New(weather.Message(err))
	}

	state, err := awaitFetch(waitCtx, updates, id)
	if err != nil {
		return err
	}
	if state.Weather == nil {
		return errors.New(state.ErrorMessage)
	}

	printReport(out, locationView.State(), state)
	if state.ErrorMessage != "" {
		return errors.New(state.ErrorMessage)
	}
	return nil
}

func awaitLocation(ctx context.Context, provider *location.Provider, events <-chan location.Event) error {
	// Settled without a prompt: nothing more will arrive
	if state, _ := provider.Snapshot(); state.Terminal() {
		return fmt.Errorf("%w: %s", ErrLocationDenied, state)
	}

	for {
		select {
		case <-ctx.Done():
			return ErrLocationTimeout
		case e := <-events:
			switch e.Kind {
			case location.EventLocationUpdated:
				return nil
			case location.EventLocationFailed:
				return fmt.Errorf("location request failed: %w", e.Err)
			case location.EventAuthorizationChanged:
				if e.Authorization.Terminal() {
					return fmt.Errorf("%w: %s", ErrLocationDenied, e.Authorization)
				}
			}
		}
	}
}

func awaitFetch(ctx context.Context, updates <-chan views.WeatherState, id string) (views.WeatherState, error) {
	for {
		select {
		case <-ctx.Done():
			return views.WeatherState{}, errors.New("timed out waiting for weather")
		case s := <-updates:
			if s.FetchID == id {
				return s, nil
			}
		}
	}
}

func printReport(out io.Writer, loc views.LocationState, state views.WeatherState) {
	w := state.Weather
	place := w.Location.Name
	if w.Location.Region != "" {
		place += ", " + w.Location.Region
	}
	if w.Location.Country != "" {
		place += ", " + w.Location.Country
	}
	if loc.Timezone != "" {
		place += " (" + loc.Timezone + ")"
	}

	fmt.Fprintln(out, place)
	if loc.Coordinates != nil {
		fmt.Fprintf(out, "Location:    %s\n", loc.Coordinates)
	}
	fmt.Fprintf(out, "Temperature: %.1f°C / %.1f°F\n", w.Current.Temperature.Celsius, w.Current.Temperature.Fahrenheit)
	fmt.Fprintf(out, "Condition:   %s\n", w.Current.Condition.Text)
}
