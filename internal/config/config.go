package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "FORECAST"

var ErrMissingAPIKey = errors.New("weatherapi.apiKey is required (set FORECAST_WEATHERAPI_APIKEY or config.yaml)")

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	WeatherAPI WeatherAPIConfig
	Location   LocationConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// WeatherAPIConfig holds the weatherapi.com endpoint and credential
type WeatherAPIConfig struct {
	BaseURL string
	APIKey  string
}

// LocationConfig describes the simulated platform location service.
type LocationConfig struct {
	Authorization  string // initial authorization state
	PromptResponse string // state the user picks when prompted
	Available      bool   // whether the platform has a position fix
	Latitude       float64
	Longitude      float64
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith reads configuration into v. Callers may bind flags on v first.
func LoadWith(v *viper.Viper) (*Config, error) {
	// A missing .env is fine, the key may come from the environment or config file
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.forecast")

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("weatherapi.baseurl", "https://api.weatherapi.com/v1")
	// Registered so AutomaticEnv picks up FORECAST_WEATHERAPI_APIKEY on Unmarshal
	v.SetDefault("weatherapi.apikey", "")
	v.SetDefault("location.authorization", "notDetermined")
	v.SetDefault("location.promptresponse", "authorizedWhenInUse")
	v.SetDefault("location.available", false)
	v.SetDefault("location.latitude", 0.0)
	v.SetDefault("location.longitude", 0.0)
}

// Validate reports configuration the application cannot start with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.WeatherAPI.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.WeatherAPI.BaseURL == "" {
		return errors.New("weatherapi.baseURL must not be empty")
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo is NewLogger writing to w
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
