package weatherapi

import "errors"

var (
	ErrInvalidURL = errors.New("invalid url")
	ErrNetwork    = errors.New("network error")
	ErrNoData     = errors.New("no data received")
	ErrDecode     = errors.New("decoding error")
)

// Error is a failed current-conditions request. Kind is one of the package
// sentinels and Err, when set, is the underlying cause.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Cause is the text of the innermost error, e.g. "connection refused".
func (e *Error) Cause() string {
	if e.Err == nil {
		return ""
	}
	cause := e.Err
	if e.Kind == ErrNetwork {
		for inner := errors.Unwrap(cause); inner != nil; inner = errors.Unwrap(cause) {
			cause = inner
		}
	}
	return cause.Error()
}
