package track

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDecode          = errors.New("no valid track")
	ErrNoSentinel      = errors.New("sentinel not found")
	ErrParity          = errors.New("parity error")
	ErrLRC             = errors.New("lrc error")
)

// DecodeError is returned when every hypothesis has failed.
type DecodeError struct {
	Attempts []error
}

func (e *DecodeError) Error() string {
	msgs := make([]string, len(e.Attempts))
	for i, err := range e.Attempts {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%v: %s", ErrDecode, strings.Join(msgs, "; "))
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func (e *DecodeError) Unwrap() []error {
	return e.Attempts
}
