package readers

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched by every parse failure returned from this package.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError reports a file whose content could not be decoded
// into transcript text.
type MalformedInputError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := fmt.Sprintf("malformed input %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

func malformed(path, reason string, err error) error {
	return &MalformedInputError{Path: path, Reason: reason, Err: err}
}
