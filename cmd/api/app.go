package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/config"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/dispatch"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/location"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/timezone"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/views"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/weather"

	_ "github.com/shreyaprsd/Internship-WeatherApp/docs" // Ensure docs are imported
)

const shutdownTimeout = 5 * time.Second

// App encapsulates application dependencies
type App struct {
	router       *gin.Engine
	logger       *slog.Logger
	cfg          *config.Config
	queue        *dispatch.Queue
	platform     *location.SimulatedPlatform
	provider     *location.Provider
	locationView *views.LocationView
	weatherView  *views.WeatherView
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	platform, err := location.NewSimulatedPlatformFromConfig(cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create location platform: %w", err)
	}

	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	return newApp(cfg, logger, platform, weather.NewWeatherService(cfg, logger), tzSvc), nil
}

func newApp(
	cfg *config.Config,
	logger *slog.Logger,
	platform *location.SimulatedPlatform,
	weatherSvc weather.Service,
	tzSvc timezone.Service,
) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())

	queue := dispatch.NewQueue()
	provider := location.NewProvider(platform, queue, logger)

	app := &App{
		router:       router,
		logger:       logger,
		cfg:          cfg,
		queue:        queue,
		platform:     platform,
		provider:     provider,
		locationView: views.NewLocationView(queue, provider, tzSvc, logger),
		weatherView:  views.NewWeatherView(queue, provider, weatherSvc, logger),
	}

	app.registerRoutes()

	return app
}

// Run starts the main loop and serves HTTP until ctx is cancelled. The loop
// outlives the server so in-flight requests can still read view state while
// the server drains.
func (app *App) Run(ctx context.Context, addr string) error {
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()
	go app.queue.Run(loopCtx)

	// Same as opening the weather screen: ask for permission or a location
	app.locationView.GetLocation()

	srv := &http.Server{
		Addr:    addr,
		Handler: app.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
