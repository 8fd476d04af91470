package location

import (
	"log/slog"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/dispatch"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
)

// EventKind identifies what changed in a provider Event.
type EventKind int

const (
	EventAuthorizationChanged EventKind = iota + 1
	EventLocationUpdated
	EventLocationFailed
)

func (k EventKind) String() string {
	switch k {
	case EventAuthorizationChanged:
		return "authorizationChanged"
	case EventLocationUpdated:
		return "locationUpdated"
	case EventLocationFailed:
		return "locationFailed"
	default:
		return "unknown"
	}
}

// Event is published to subscribers after the provider applied a platform
// callback.
type Event struct {
	Kind          EventKind
	Authorization AuthorizationState
	Coords        *types.Coords
	Err           error
}

// Provider tracks location authorization and the last known coordinate.
// Its state is only written on the main loop.
type Provider struct {
	platform Platform
	queue    *dispatch.Queue
	events   *dispatch.Broadcaster[Event]
	logger   *slog.Logger

	authorization AuthorizationState
	lastKnown     *types.Coords
}

// NewProvider creates a provider and registers it as the platform's delegate.
func NewProvider(platform Platform, queue *dispatch.Queue, logger *slog.Logger) *Provider {
	p := &Provider{
		platform:      platform,
		queue:         queue,
		events:        dispatch.NewBroadcaster[Event](),
		logger:        logger.With("component", "location-provider"),
		authorization: platform.AuthorizationStatus(),
	}
	platform.SetDelegate(p)
	return p
}

// CheckAuthorization asks for permission when undecided and requests a
// location when already authorized. Denied or restricted access produces
// nothing.
func (p *Provider) CheckAuthorization() {
	p.queue.Do(func() {
		status := p.platform.AuthorizationStatus()
		p.authorization = status

		switch {
		case status == AuthorizationNotDetermined:
			p.logger.Debug("requesting location permission")
			p.platform.RequestWhenInUseAuthorization()
		case status.Authorized():
			p.logger.Debug("requesting location", "authorization", status)
			p.platform.RequestLocation()
		case status.Terminal():
			p.logger.Info("location access unavailable", "authorization", status)
		default:
			p.logger.Warn("unhandled authorization state", "authorization", status)
		}
	})
}

// LastKnownLocation returns the most recent coordinate, or nil. It must be
// called on the main loop.
func (p *Provider) LastKnownLocation() *types.Coords {
	if p.lastKnown == nil {
		return nil
	}
	c := *p.lastKnown
	return &c
}

// Authorization returns the last observed authorization state. It must be
// called on the main loop.
func (p *Provider) Authorization() AuthorizationState {
	return p.authorization
}

// Snapshot reads the authorization state and coordinate from any goroutine
// other than the main loop.
func (p *Provider) Snapshot() (AuthorizationState, *types.Coords) {
	var (
		state  AuthorizationState
		coords *types.Coords
	)
	p.queue.Sync(func() {
		state = p.Authorization()
		coords = p.LastKnownLocation()
	})
	return state, coords
}

// Subscribe streams provider events. The returned function unsubscribes.
func (p *Provider) Subscribe() (<-chan Event, func()) {
	return p.events.Subscribe()
}

// AuthorizationChanged implements Delegate.
func (p *Provider) AuthorizationChanged(state AuthorizationState) {
	p.queue.Do(func() {
		p.logger.Info("location authorization changed", "from", p.authorization, "to", state)
		p.authorization = state
		p.publish(Event{Kind: EventAuthorizationChanged, Authorization: state})

		if state.Authorized() {
			p.platform.RequestLocation()
		}
	})
}

// LocationUpdated implements Delegate.
func (p *Provider) LocationUpdated(coords types.Coords) {
	p.queue.Do(func() {
		if err := coords.Validate(); err != nil {
			p.logger.Warn("ignoring invalid location update", "error", err)
			return
		}

		p.logger.Debug("location updated",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
		)
		p.lastKnown = &coords
		c := coords
		p.publish(Event{Kind: EventLocationUpdated, Authorization: p.authorization, Coords: &c})
	})
}

// LocationFailed implements Delegate.
func (p *Provider) LocationFailed(err error) {
	p.queue.Do(func() {
		p.logger.Error("location request failed", "error", err)
		p.publish(Event{Kind: EventLocationFailed, Authorization: p.authorization, Err: err})
	})
}

func (p *Provider) publish(e Event) {
	if dropped := p.events.Publish(e); dropped > 0 {
		p.logger.Debug("subscribers missed location event", "event", e.Kind, "dropped", dropped)
	}
}

var _ Delegate = (*Provider)(nil)
