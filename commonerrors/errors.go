// Package commonerrors defines the error vocabulary of this module so that callers can
// classify failures with [errors.Is] rather than by matching message strings.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUndefined   = errors.New("undefined")
	ErrInvalid     = errors.New("invalid")
	ErrUnsupported = errors.New("unsupported")
	ErrOutOfRange  = errors.New("out of range")
	ErrMarshalling = errors.New("unserialisable")
)

// New returns an error which wraps the error type and has the description as message.
func New(errType error, description string) error {
	return fmt.Errorf("%w: %v", errType, description)
}

// Newf returns an error which wraps the error type and has a formatted message.
func Newf(errType error, format string, args ...any) error {
	return fmt.Errorf("%w: %v", errType, fmt.Sprintf(format, args...))
}

// Any determines whether the target error corresponds to any of the errors provided.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error corresponds to none of the errors provided.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the target error matches any of the descriptions
// provided. The comparison is case insensitive and matches on substrings.
func CorrespondTo(target error, descriptions ...string) bool {
	if target == nil {
		return false
	}
	message := strings.ToLower(target.Error())
	for _, d := range descriptions {
		if strings.Contains(message, strings.ToLower(d)) {
			return true
		}
	}
	return false
}
