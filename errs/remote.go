package errs

import "fmt"

// RemoteError is the single failure shape of the collection stores. Message is
// meant for humans and is what resource hooks surface as their error string.
type RemoteError struct {
	Collection string
	Operation  string
	Status     int // HTTP status when the transport has one, zero otherwise
	Message    string
	Cause      error
}

func NewRemoteError(collection, operation string, cause error) *RemoteError {
	msg := "remote store request failed"
	if cause != nil {
		msg = cause.Error()
	}
	return &RemoteError{
		Collection: collection,
		Operation:  operation,
		Message:    msg,
		Cause:      cause,
	}
}

func (e *RemoteError) Error() string {
	if e.Collection == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s: %s", e.Operation, e.Collection, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}
