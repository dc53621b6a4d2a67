package genability

import (
	"errors"
	"fmt"
)

// ErrTransport matches every *TransportError with errors.Is.
var ErrTransport = errors.New("genability transport failure")

// errNotEnvelope is the decode failure for a well-formed JSON body without a
// status, e.g. null or {}.
var errNotEnvelope = errors.New("reply is not a Genability envelope")

// TransportError is a failure to get a decodable reply: the request could not
// be sent, the server answered with a non-2xx status or the body was not a
// valid envelope. Problems the API reports inside a valid envelope are not
// transport errors, see types.Response.Err.
type TransportError struct {
	Op         string // "build", "send", "status", "read" or "decode"
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 && e.Err == nil {
		return fmt.Sprintf("%s %s: got status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Method, e.URL, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
