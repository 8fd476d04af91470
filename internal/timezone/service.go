package timezone

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
)

var ErrUnknownTimezone = errors.New("no timezone for coordinate")

// Service resolves the IANA timezone of a coordinate offline
type Service interface {
	GetTimezone(coords types.Coords) (string, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide timezone service. tzf keeps its
// polygon data in memory, so the finder is built once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns names like "America/Denver" or "Asia/Tokyo".
func (s *service) GetTimezone(coords types.Coords) (string, error) {
	if err := coords.Validate(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// tzf takes longitude first
	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownTimezone, coords)
	}
	return name, nil
}
