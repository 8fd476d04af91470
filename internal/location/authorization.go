package location

import (
	"fmt"
	"strings"
)

// AuthorizationState is the platform-reported permission level for
// location access.
type AuthorizationState int

const (
	AuthorizationOther AuthorizationState = iota
	AuthorizationNotDetermined
	AuthorizationRestricted
	AuthorizationDenied
	AuthorizationWhenInUse
	AuthorizationAlways
)

var authorizationNames = map[AuthorizationState]string{
	AuthorizationOther:         "other",
	AuthorizationNotDetermined: "notDetermined",
	AuthorizationRestricted:    "restricted",
	AuthorizationDenied:        "denied",
	AuthorizationWhenInUse:     "authorizedWhenInUse",
	AuthorizationAlways:        "authorizedAlways",
}

func (s AuthorizationState) String() string {
	if name, ok := authorizationNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(s))
}

// Authorized reports whether a location may be requested.
func (s AuthorizationState) Authorized() bool {
	return s == AuthorizationWhenInUse || s == AuthorizationAlways
}

// Terminal reports whether no location can be obtained without the user
// changing the permission outside the application.
func (s AuthorizationState) Terminal() bool {
	return s == AuthorizationDenied || s == AuthorizationRestricted
}

// MarshalText renders the state by name so it reads naturally in JSON and logs.
func (s AuthorizationState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *AuthorizationState) UnmarshalText(text []byte) error {
	state, err := ParseAuthorizationState(string(text))
	if err != nil {
		return err
	}
	*s = state
	return nil
}

// ParseAuthorizationState converts a name such as "authorizedWhenInUse" to
// its state. Matching ignores case, spaces, dashes and underscores.
func ParseAuthorizationState(s string) (AuthorizationState, error) {
	normalized := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(s))
	for state, name := range authorizationNames {
		if strings.ToLower(name) == normalized {
			return state, nil
		}
	}
	return AuthorizationOther, fmt.Errorf("unknown authorization state %q", s)
}
