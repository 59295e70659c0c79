package oerror

import "fmt"

// Error is the error type returned by locomotion packages for configuration and
// recording failures.
type Error struct {
	Err string
}

// New formats an Error from the format string and arguments passed.
func New(format string, args ...any) *Error {
	if len(args) == 0 {
		return &Error{Err: format}
	}
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
