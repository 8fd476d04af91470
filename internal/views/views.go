// Package views holds the observable state behind the weather and location
// screens. State is written only on the main loop; the exported methods may
// be called from any other goroutine.
package views

import (
	"github.com/shreyaprsd/Internship-WeatherApp/internal/location"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
)

// LocationSource is the part of location.Provider the views use. Both
// readers are only called on the main loop.
type LocationSource interface {
	CheckAuthorization()
	LastKnownLocation() *types.Coords
	Authorization() location.AuthorizationState
}

var _ LocationSource = (*location.Provider)(nil)
