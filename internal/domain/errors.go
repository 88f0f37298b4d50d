package domain

import "errors"

var (
	// The settings carry no key id.
	ErrKeyIDUnset = errors.New("API key ID is not configured")
	// The key id does not resolve to a stored key.
	ErrKeyNotFound = errors.New("API key not found")
)

type ErrorKind int

const (
	KindService ErrorKind = iota
	KindConfiguration
	KindUpstream
	KindEmptyResult
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindUpstream:
		return "upstream"
	case KindEmptyResult:
		return "empty_result"
	case KindTransport:
		return "transport"
	default:
		return "service"
	}
}

// FetchError is the single failure value of a location search.
// StatusCode is set for upstream errors; Body holds the upstream response
// body when one was received.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Body       string
	Message    string
	Err        error
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf reports the kind of a FetchError anywhere in err's chain.
// Errors of any other type are reported as KindService.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindService
}
