package weather

import (
	"errors"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/providers/weatherapi"
)

var ErrLocationUnavailable = errors.New("location not available")

// Provider failures, re-exported so callers only match against this package.
var (
	ErrInvalidURL = weatherapi.ErrInvalidURL
	ErrNetwork    = weatherapi.ErrNetwork
	ErrNoData     = weatherapi.ErrNoData
	ErrDecode     = weatherapi.ErrDecode
)

// Message renders err as the short text shown next to the weather.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var cause string
	var apiErr *weatherapi.Error
	if errors.As(err, &apiErr) {
		cause = apiErr.Cause()
	}

	switch {
	case errors.Is(err, ErrLocationUnavailable):
		return "Location not available"
	case errors.Is(err, ErrInvalidURL):
		return "Invalid URL"
	case errors.Is(err, ErrNoData):
		return "No data received"
	case errors.Is(err, ErrNetwork):
		return "Network error: " + cause
	case errors.Is(err, ErrDecode):
		return "Decoding error: " + cause
	default:
		return err.Error()
	}
}
