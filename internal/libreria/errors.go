package libreria

import "fmt"

// genericFailure is shown when a failure carries no usable message.
const genericFailure = "Ocurrió un error inesperado"

// DomainError is a failure reported by the backend itself: the request was
// delivered and the API answered with status=false (or an HTTP error body
// carrying a status_Message).
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// TransportError covers everything that kept a well-formed answer from
// arriving: connection failures, timeouts, unparseable bodies.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TransportError) Unwrap() error { return e.Err }

func transportErr(msg string, err error) *TransportError {
	if msg == "" {
		msg = genericFailure
	}
	return &TransportError{Message: msg, Err: err}
}
