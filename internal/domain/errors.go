package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidText reports file content that does not decode to valid UTF-8.
var ErrInvalidText = errors.New("file is not valid text")

// MissingArgumentError is returned when a required configuration value is absent.
type MissingArgumentError struct {
	Field string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument: %s", e.Field)
}

// IOError wraps a failure to read the target file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read file: %v", e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
