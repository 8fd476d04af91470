package location

import "github.com/shreyaprsd/Internship-WeatherApp/internal/types"

// Platform is the device location service. Requests return immediately;
// outcomes are reported later, on any goroutine, through the Delegate.
type Platform interface {
	AuthorizationStatus() AuthorizationState
	// RequestWhenInUseAuthorization shows the permission prompt if the user
	// has not decided yet.
	RequestWhenInUseAuthorization()
	// RequestLocation asks for a single position update.
	RequestLocation()
	SetDelegate(d Delegate)
}

// Delegate receives the platform's callbacks.
type Delegate interface {
	AuthorizationChanged(state AuthorizationState)
	LocationUpdated(coords types.Coords)
	LocationFailed(err error)
}
