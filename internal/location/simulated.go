package location

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/config"
	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
)

var ErrNoPositionFix = errors.New("no position fix available")

// SimulatedPlatform stands in for a device location service. It holds a
// configured authorization, the answer given at the permission prompt and
// an optional position, and calls its delegate from its own goroutines.
type SimulatedPlatform struct {
	mu             sync.Mutex
	delegate       Delegate
	status         AuthorizationState
	promptResponse AuthorizationState
	position       *types.Coords
	wg             sync.WaitGroup
}

// NewSimulatedPlatform creates a platform in the given state. A nil position
// means the device has no fix and location requests fail.
func NewSimulatedPlatform(status, promptResponse AuthorizationState, position *types.Coords) *SimulatedPlatform {
	return &SimulatedPlatform{
		status:         status,
		promptResponse: promptResponse,
		position:       position,
	}
}

// NewSimulatedPlatformFromConfig builds a platform from the location section
// of the configuration.
func NewSimulatedPlatformFromConfig(cfg config.LocationConfig) (*SimulatedPlatform, error) {
	status, err := ParseAuthorizationState(cfg.Authorization)
	if err != nil {
		return nil, fmt.Errorf("invalid location.authorization: %w", err)
	}
	prompt, err := ParseAuthorizationState(cfg.PromptResponse)
	if err != nil {
		return nil, fmt.Errorf("invalid location.promptResponse: %w", err)
	}
	if prompt == AuthorizationNotDetermined {
		return nil, errors.New("invalid location.promptResponse: the prompt must resolve to a decision")
	}

	var position *types.Coords
	if cfg.Available {
		c := types.NewCoords(cfg.Latitude, cfg.Longitude)
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid location coordinate: %w", err)
		}
		position = &c
	}

	return NewSimulatedPlatform(status, prompt, position), nil
}

func (s *SimulatedPlatform) SetDelegate(d Delegate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delegate = d
}

func (s *SimulatedPlatform) AuthorizationStatus() AuthorizationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// RequestWhenInUseAuthorization resolves an undecided state to the
// configured prompt response. Decided states are left alone, as the system
// only prompts once.
func (s *SimulatedPlatform) RequestWhenInUseAuthorization() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != AuthorizationNotDetermined {
		return
	}
	s.status = s.promptResponse
	s.notify(func(d Delegate) { d.AuthorizationChanged(s.promptResponse) })
}

// RequestLocation reports the current position once, or a failure when the
// platform is unauthorized or has no fix.
func (s *SimulatedPlatform) RequestLocation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.status.Authorized() {
		err := fmt.Errorf("location request while %s", s.status)
		s.notify(func(d Delegate) { d.LocationFailed(err) })
		return
	}
	if s.position == nil {
		s.notify(func(d Delegate) { d.LocationFailed(ErrNoPositionFix) })
		return
	}
	c := *s.position
	s.notify(func(d Delegate) { d.LocationUpdated(c) })
}

// SetAuthorization changes the permission as if the user edited it in the
// system settings, and notifies the delegate.
func (s *SimulatedPlatform) SetAuthorization(state AuthorizationState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == state {
		return
	}
	s.status = state
	s.notify(func(d Delegate) { d.AuthorizationChanged(state) })
}

// MoveTo sets the position reported by subsequent location requests.
func (s *SimulatedPlatform) MoveTo(c types.Coords) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = &c
	return nil
}

// Wait blocks until all pending delegate callbacks have been delivered.
func (s *SimulatedPlatform) Wait() {
	s.wg.Wait()
}

// notify calls fn with the delegate on a new goroutine. Callers hold s.mu.
func (s *SimulatedPlatform) notify(fn func(Delegate)) {
	d := s.delegate
	if d == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(d)
	}()
}

var _ Platform = (*SimulatedPlatform)(nil)
